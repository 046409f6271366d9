package app

import (
	"acceluni_backend/internal/config"
	"acceluni_backend/internal/controller"
	"acceluni_backend/internal/repository"
	"acceluni_backend/internal/service"
	"acceluni_backend/internal/util"
	"acceluni_backend/pkg/configwatcher"
	"acceluni_backend/pkg/database"
	"acceluni_backend/pkg/logger"
	"acceluni_backend/pkg/monitoring"
	"acceluni_backend/pkg/security"
	"acceluni_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)

	scheduler      *cron.Cron
	tracerProvider *sdktrace.TracerProvider
	cancel         context.CancelFunc
}

type repositories struct {
	user         *repository.UserRepository
	degree       *repository.DegreeRepository
	course       *repository.CourseRepository
	lesson       *repository.LessonRepository
	test         *repository.TestRepository
	progress     *repository.ProgressRepository
	subscription *repository.SubscriptionRepository
	draft        *repository.DraftRepository
	session      *repository.SessionRepository
}

type services struct {
	auth         *service.AuthService
	storage      *service.StorageService
	ai           *service.AIService
	generation   *service.GenerationService
	subscription *service.SubscriptionService
	assessment   *service.AssessmentService
	degree       *service.DegreeService
	course       *service.CourseService
	lesson       *service.LessonService
	home         *service.HomeService
	wizard       *service.WizardService
}

type controllers struct {
	auth         *controller.AuthController
	degree       *controller.DegreeController
	course       *controller.CourseController
	lesson       *controller.LessonController
	test         *controller.TestController
	home         *controller.HomeController
	wizard       *controller.WizardController
	subscription *controller.SubscriptionController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		degree:       repository.NewDegreeRepository(db),
		course:       repository.NewCourseRepository(db),
		lesson:       repository.NewLessonRepository(db),
		test:         repository.NewTestRepository(db),
		progress:     repository.NewProgressRepository(db),
		subscription: repository.NewSubscriptionRepository(db),
		draft:        repository.NewDraftRepository(rdb),
		session:      repository.NewSessionRepository(rdb),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, repos.session, cfg)
	s.ai = service.NewAIService(cfg.AI)
	s.generation = service.NewGenerationService(
		s.ai,
		repos.degree,
		repos.course,
		repos.lesson,
		repos.test,
		cfg.Generation,
	)
	s.subscription = service.NewSubscriptionService(repos.subscription, cfg.Subscription)
	s.assessment = service.NewAssessmentService(repos.test, repos.lesson, repos.progress)
	s.degree = service.NewDegreeService(repos.degree, s.subscription)
	s.course = service.NewCourseService(repos.course, repos.degree)
	s.lesson = service.NewLessonService(repos.lesson, repos.test, repos.progress, s.assessment)
	s.home = service.NewHomeService(repos.degree, repos.course, repos.progress)
	s.wizard = service.NewWizardService(repos.draft, s.degree, s.course, s.generation)

	// AI 与生成参数支持热更新
	a.RegisterConfigCallback(func(newCfg *config.Config) {
		s.ai.UpdateConfig(newCfg.AI)
		s.generation.UpdateConfig(newCfg.Generation)
	})

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		degree:       controller.NewDegreeController(s.degree, s.generation, s.storage),
		course:       controller.NewCourseController(s.course, s.generation, s.storage),
		lesson:       controller.NewLessonController(s.lesson, s.generation),
		test:         controller.NewTestController(s.assessment),
		home:         controller.NewHomeController(s.home),
		wizard:       controller.NewWizardController(s.wizard),
		subscription: controller.NewSubscriptionController(s.subscription),
		health:       controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window(), security.ByClientIP))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(ctx context.Context, s *services) {
	scheduler, err := s.subscription.StartScheduler(ctx)
	if err != nil {
		logger.Log.Error("Failed to start subscription scheduler", zap.Error(err))
	} else {
		a.scheduler = scheduler
	}

	err = configwatcher.WatchConfig(ctx, "configs", func(newCfg *config.Config) {
		for _, cb := range a.configCallbacks {
			cb(newCfg)
		}
	})
	if err != nil {
		logger.Log.Warn("Config hot reload disabled", zap.Error(err))
	}
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	// release 模式默认不迁移，可通过 --migrate 强制
	migrate := cfg.Server.Mode != "release" || cfg.ForceMigrate
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}
	if cfg.MigrateOnly {
		return app
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	app.Redis = rdb

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
		router.Static("/api/uploads", cfg.Storage.LocalPath)
	}

	ctx, cancel := context.WithCancel(context.Background())
	app.cancel = cancel
	app.startBackgroundTasks(ctx, services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// 停止定时任务与配置监听
	if a.cancel != nil {
		a.cancel()
	}
	if a.scheduler != nil {
		<-a.scheduler.Stop().Done()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	// 等待后台生成批次写完，超时后取消剩余批次
	if a.services != nil {
		drainCtx, drainCancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := a.services.generation.Shutdown(drainCtx); err != nil {
			logger.Log.Warn("Background generation cancelled at shutdown", zap.Error(err))
		}
		drainCancel()
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}

	log.Println("Server exiting")
}
