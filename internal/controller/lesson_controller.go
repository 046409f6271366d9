package controller

import (
	"acceluni_backend/internal/service"
	"acceluni_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	LessonService     *service.LessonService
	GenerationService *service.GenerationService
}

func NewLessonController(lessonService *service.LessonService, generationService *service.GenerationService) *LessonController {
	return &LessonController{LessonService: lessonService, GenerationService: generationService}
}

// GetLesson godoc
// @Summary 课时详情（含测试与进度）
// @Tags 课时
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "课时ID"
// @Success 200 {object} service.LessonDetail
// @Failure 404 {object} util.ErrorBody
// @Router /api/lessons/{id} [get]
func (c *LessonController) GetLesson(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	detail, err := c.LessonService.GetLesson(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

// GenerateContent godoc
// @Summary 生成课时内容和测试
// @Tags 课时
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "课时ID"
// @Success 200 {object} object
// @Failure 404 {object} util.ErrorBody
// @Router /api/lessons/{id}/generate-content [post]
func (c *LessonController) GenerateContent(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	lesson, test, err := c.GenerationService.GenerateLessonContent(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"lesson": lesson, "test": test})
}

// GenerateTest godoc
// @Summary 仅生成测试
// @Tags 课时
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "课时ID"
// @Success 200 {object} service.TestGeneration
// @Failure 404 {object} util.ErrorBody
// @Router /api/lessons/{id}/generate-test [post]
func (c *LessonController) GenerateTest(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	res, err := c.GenerationService.GenerateTest(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, res)
}

// CompleteLesson godoc
// @Summary 标记课时完成
// @Tags 课时
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "课时ID"
// @Success 200 {object} object
// @Failure 404 {object} util.ErrorBody
// @Router /api/lessons/{id}/complete [post]
func (c *LessonController) CompleteLesson(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	lesson, err := c.LessonService.CompleteLesson(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"lesson": lesson})
}
