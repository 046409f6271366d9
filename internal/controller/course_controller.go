package controller

import (
	"acceluni_backend/internal/service"
	"acceluni_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService     *service.CourseService
	GenerationService *service.GenerationService
	StorageService    *service.StorageService
}

func NewCourseController(courseService *service.CourseService, generationService *service.GenerationService, storageService *service.StorageService) *CourseController {
	return &CourseController{
		CourseService:     courseService,
		GenerationService: generationService,
		StorageService:    storageService,
	}
}

// ListCourses godoc
// @Summary 课程列表
// @Tags 课程
// @Produce json
// @Security ApiKeyAuth
// @Param standalone query bool false "只返回独立课程"
// @Success 200 {object} object
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	courses, err := c.CourseService.List(ctx.Request.Context(), userID, ctx.Query("standalone") == "true")
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"courses": courses})
}

// CreateCourse godoc
// @Summary 创建课程
// @Tags 课程
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CourseInput true "课程信息"
// @Success 201 {object} object
// @Failure 400 {object} util.ErrorBody
// @Router /api/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req service.CourseInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	course, err := c.CourseService.Create(ctx.Request.Context(), userID, req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"course": course})
}

// GetCourse godoc
// @Summary 课程详情
// @Tags 课程
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "课程ID"
// @Success 200 {object} service.CourseView
// @Failure 404 {object} util.ErrorBody
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	course, err := c.CourseService.Get(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// UpdateCourse godoc
// @Summary 更新课程
// @Tags 课程
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "课程ID"
// @Param body body service.CourseUpdate true "课程信息"
// @Success 200 {object} object
// @Failure 404 {object} util.ErrorBody
// @Router /api/courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req service.CourseUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	course, err := c.CourseService.Update(ctx.Request.Context(), userID, ctx.Param("id"), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"course": course})
}

// DeleteCourse godoc
// @Summary 删除课程
// @Tags 课程
// @Security ApiKeyAuth
// @Param id path string true "课程ID"
// @Success 200 {object} object
// @Failure 404 {object} util.ErrorBody
// @Router /api/courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	if err := c.CourseService.Delete(ctx.Request.Context(), userID, ctx.Param("id")); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "course deleted"})
}

// GenerateLessons godoc
// @Summary AI 批量生成课时
// @Tags 课程
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "课程ID"
// @Param body body GenerateRequest false "生成数量，默认 6"
// @Success 201 {object} object
// @Failure 400 {object} util.ErrorBody
// @Failure 404 {object} util.ErrorBody
// @Router /api/courses/{id}/generate-lessons [post]
func (c *CourseController) GenerateLessons(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req GenerateRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}
	res, err := c.GenerationService.GenerateLessons(ctx.Request.Context(), userID, ctx.Param("id"), req.Count)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{
		"lessons":       res.Lessons,
		"generated":     res.Created,
		"totalExpected": res.Expected,
		"failed":        res.Failed,
	})
}

// UploadIcon godoc
// @Summary 上传课程图标
// @Tags 课程
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "课程ID"
// @Param file formData file true "图片"
// @Success 200 {object} object
// @Failure 400 {object} util.ErrorBody
// @Failure 404 {object} util.ErrorBody
// @Router /api/courses/{id}/icon [post]
func (c *CourseController) UploadIcon(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id := ctx.Param("id")
	if _, err := c.CourseService.Get(ctx.Request.Context(), userID, id); err != nil {
		util.RespondError(ctx, err)
		return
	}
	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	url, err := c.StorageService.UploadIcon(ctx.Request.Context(), "courses", id, header)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	course, err := c.CourseService.SetIcon(ctx.Request.Context(), userID, id, url)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"course": course, "icon": url})
}
