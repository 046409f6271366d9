package controller

import (
	"acceluni_backend/internal/service"
	"acceluni_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubscriptionController struct {
	SubscriptionService *service.SubscriptionService
}

func NewSubscriptionController(subscriptionService *service.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{SubscriptionService: subscriptionService}
}

type GrantSubscriptionRequest struct {
	UserID uint   `json:"userId" binding:"required"`
	Plan   string `json:"plan" binding:"required"`
	Months int    `json:"months" binding:"min=0"`
}

// GetStatus godoc
// @Summary 订阅与试用状态
// @Tags 订阅
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} service.AccessStatus
// @Router /api/subscription [get]
func (c *SubscriptionController) GetStatus(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	status, err := c.SubscriptionService.Status(ctx.Request.Context(), userID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, status)
}

// StartTrial godoc
// @Summary 开始试用
// @Tags 订阅
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} object
// @Failure 400 {object} util.ErrorBody "试用已使用"
// @Router /api/trial/start [post]
func (c *SubscriptionController) StartTrial(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	trial, err := c.SubscriptionService.StartTrial(ctx.Request.Context(), userID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"trial": trial})
}

// Grant godoc
// @Summary 管理员开通订阅
// @Tags 订阅
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body GrantSubscriptionRequest true "订阅信息"
// @Success 201 {object} object
// @Failure 400 {object} util.ErrorBody
// @Failure 403 {object} util.ErrorBody
// @Router /api/admin/subscriptions [post]
func (c *SubscriptionController) Grant(ctx *gin.Context) {
	var req GrantSubscriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	sub, err := c.SubscriptionService.GrantSubscription(ctx.Request.Context(), req.UserID, req.Plan, req.Months)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"subscription": sub})
}
