package app

import (
	"acceluni_backend/docs"
	"acceluni_backend/internal/config"
	"acceluni_backend/internal/middleware"
	"acceluni_backend/internal/model"

	"acceluni_backend/pkg/monitoring"
	"acceluni_backend/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg, repos.session))
	{
		// 生成类接口调用 LLM，按用户单独限流
		generate := security.RateLimiter(cfg.RateLimit.GenerationMaxRequests, cfg.RateLimit.Window(), security.ByUser)

		a.registerLearnerRoutes(authGroup, c, generate)
		a.registerWizardRoutes(authGroup, c, generate)
	}

	// 3. 管理员相关接口
	a.registerAdminRoutes(router, c, repos, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerLearnerRoutes(rg *gin.RouterGroup, c *controllers, generate gin.HandlerFunc) {
	rg.POST("/logout", c.auth.Logout)
	rg.GET("/profile", c.auth.GetProfile)
	rg.GET("/home-content", c.home.GetHomeContent)

	// 订阅与试用
	rg.GET("/subscription", c.subscription.GetStatus)
	rg.POST("/trial/start", c.subscription.StartTrial)

	// 学位
	rg.GET("/degrees", c.degree.ListDegrees)
	rg.POST("/degrees", c.degree.CreateDegree)
	rg.GET("/degrees/:id", c.degree.GetDegree)
	rg.DELETE("/degrees/:id", c.degree.DeleteDegree)
	rg.POST("/degrees/:id/generate-courses", generate, c.degree.GenerateCourses)
	rg.POST("/degrees/:id/icon", c.degree.UploadIcon)

	// 课程
	rg.GET("/courses", c.course.ListCourses)
	rg.POST("/courses", c.course.CreateCourse)
	rg.GET("/courses/:id", c.course.GetCourse)
	rg.PUT("/courses/:id", c.course.UpdateCourse)
	rg.DELETE("/courses/:id", c.course.DeleteCourse)
	rg.POST("/courses/:id/generate-lessons", generate, c.course.GenerateLessons)
	rg.POST("/courses/:id/icon", c.course.UploadIcon)

	// 课时与测验
	rg.GET("/lessons/:id", c.lesson.GetLesson)
	rg.POST("/lessons/:id/generate-content", generate, c.lesson.GenerateContent)
	rg.POST("/lessons/:id/generate-test", generate, c.lesson.GenerateTest)
	rg.POST("/lessons/:id/complete", c.lesson.CompleteLesson)
	rg.POST("/tests/:id/submit", c.test.SubmitTest)
}

func (a *App) registerWizardRoutes(rg *gin.RouterGroup, c *controllers, generate gin.HandlerFunc) {
	wizard := rg.Group("/wizard")
	{
		wizard.GET("", c.wizard.GetWizard)
		wizard.PUT("", c.wizard.UpdateWizard)
		wizard.DELETE("", c.wizard.ClearWizard)
		wizard.POST("/next", c.wizard.Next)
		wizard.POST("/back", c.wizard.Back)
		wizard.POST("/jump", c.wizard.Jump)
		wizard.POST("/submit", generate, c.wizard.Submit)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg, repos.session), middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/subscriptions", c.subscription.Grant)
	}
}
