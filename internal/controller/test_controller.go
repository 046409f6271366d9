package controller

import (
	"acceluni_backend/internal/model"
	"acceluni_backend/internal/service"
	"acceluni_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TestController struct {
	AssessmentService *service.AssessmentService
}

func NewTestController(assessmentService *service.AssessmentService) *TestController {
	return &TestController{AssessmentService: assessmentService}
}

// SubmitTest godoc
// @Summary 提交测试答案并评分
// @Description 70 分及以上视为通过，通过后课时标记为完成
// @Tags 测试
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "测试ID"
// @Param body body model.TestSubmission true "答案"
// @Success 200 {object} object
// @Failure 400 {object} util.ErrorBody
// @Failure 404 {object} util.ErrorBody
// @Router /api/tests/{id}/submit [post]
func (c *TestController) SubmitTest(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req model.TestSubmission
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	result, err := c.AssessmentService.SubmitTest(ctx.Request.Context(), userID, ctx.Param("id"), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"result": result})
}
