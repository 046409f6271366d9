package controller

import (
	"acceluni_backend/internal/service"
	"acceluni_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type WizardController struct {
	WizardService *service.WizardService
}

func NewWizardController(wizardService *service.WizardService) *WizardController {
	return &WizardController{WizardService: wizardService}
}

type JumpRequest struct {
	Step int `json:"step" binding:"required,min=1,max=4"`
}

// GetWizard godoc
// @Summary 获取创建向导草稿
// @Tags 创建向导
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} service.WizardState
// @Router /api/wizard [get]
func (c *WizardController) GetWizard(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	state, err := c.WizardService.State(ctx.Request.Context(), userID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// UpdateWizard godoc
// @Summary 更新向导字段
// @Tags 创建向导
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.WizardPatch true "字段"
// @Success 200 {object} service.WizardState
// @Failure 400 {object} util.ErrorBody
// @Router /api/wizard [put]
func (c *WizardController) UpdateWizard(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req service.WizardPatch
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	state, err := c.WizardService.Update(ctx.Request.Context(), userID, req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// ClearWizard godoc
// @Summary 清除向导草稿
// @Tags 创建向导
// @Security ApiKeyAuth
// @Success 200 {object} object
// @Router /api/wizard [delete]
func (c *WizardController) ClearWizard(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	if err := c.WizardService.Clear(ctx.Request.Context(), userID); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "draft cleared"})
}

// Next godoc
// @Summary 向导下一步
// @Tags 创建向导
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} service.WizardState
// @Router /api/wizard/next [post]
func (c *WizardController) Next(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	state, err := c.WizardService.Next(ctx.Request.Context(), userID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// Back godoc
// @Summary 向导上一步
// @Tags 创建向导
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} service.WizardState
// @Router /api/wizard/back [post]
func (c *WizardController) Back(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	state, err := c.WizardService.Back(ctx.Request.Context(), userID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// Jump godoc
// @Summary 跳转到指定步骤
// @Tags 创建向导
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body JumpRequest true "目标步骤"
// @Success 200 {object} service.WizardState
// @Failure 400 {object} util.ErrorBody
// @Router /api/wizard/jump [post]
func (c *WizardController) Jump(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req JumpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	state, err := c.WizardService.JumpTo(ctx.Request.Context(), userID, req.Step)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// Submit godoc
// @Summary 提交向导，创建课程或学位
// @Tags 创建向导
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} service.SubmitResult
// @Failure 400 {object} util.ErrorBody
// @Failure 403 {object} util.ErrorBody "需要订阅"
// @Router /api/wizard/submit [post]
func (c *WizardController) Submit(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	res, err := c.WizardService.Submit(ctx.Request.Context(), userID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, res)
}
