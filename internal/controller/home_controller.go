package controller

import (
	"acceluni_backend/internal/service"
	"acceluni_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HomeController struct {
	HomeService *service.HomeService
}

func NewHomeController(homeService *service.HomeService) *HomeController {
	return &HomeController{HomeService: homeService}
}

// GetHomeContent godoc
// @Summary 首页学习概览
// @Tags 首页
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} service.HomeContent
// @Failure 401 {object} util.ErrorBody
// @Router /api/home-content [get]
func (c *HomeController) GetHomeContent(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	content, err := c.HomeService.GetHomeContent(ctx.Request.Context(), userID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, content)
}
