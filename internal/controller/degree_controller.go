package controller

import (
	"acceluni_backend/internal/service"
	"acceluni_backend/internal/util"
	"fmt"

	"github.com/gin-gonic/gin"
)

type DegreeController struct {
	DegreeService     *service.DegreeService
	GenerationService *service.GenerationService
	StorageService    *service.StorageService
}

func NewDegreeController(degreeService *service.DegreeService, generationService *service.GenerationService, storageService *service.StorageService) *DegreeController {
	return &DegreeController{
		DegreeService:     degreeService,
		GenerationService: generationService,
		StorageService:    storageService,
	}
}

type CreateDegreeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type GenerateRequest struct {
	Count int `json:"count"`
}

// ListDegrees godoc
// @Summary 学位列表（含进度）
// @Tags 学位
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} object
// @Failure 401 {object} util.ErrorBody
// @Router /api/degrees [get]
func (c *DegreeController) ListDegrees(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	degrees, err := c.DegreeService.List(ctx.Request.Context(), userID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"degrees": degrees})
}

// CreateDegree godoc
// @Summary 创建学位
// @Description 需要有效订阅或试用
// @Tags 学位
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateDegreeRequest true "学位信息"
// @Success 201 {object} object
// @Failure 400 {object} util.ErrorBody
// @Failure 403 {object} util.ErrorBody "需要订阅"
// @Router /api/degrees [post]
func (c *DegreeController) CreateDegree(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req CreateDegreeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	degree, err := c.DegreeService.Create(ctx.Request.Context(), userID, req.Name, req.Description)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"degree": degree})
}

// GetDegree godoc
// @Summary 学位详情
// @Tags 学位
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "学位ID"
// @Success 200 {object} service.DegreeView
// @Failure 404 {object} util.ErrorBody
// @Router /api/degrees/{id} [get]
func (c *DegreeController) GetDegree(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	degree, err := c.DegreeService.Get(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, degree)
}

// DeleteDegree godoc
// @Summary 删除学位
// @Tags 学位
// @Security ApiKeyAuth
// @Param id path string true "学位ID"
// @Success 200 {object} object
// @Failure 404 {object} util.ErrorBody
// @Router /api/degrees/{id} [delete]
func (c *DegreeController) DeleteDegree(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	if err := c.DegreeService.Delete(ctx.Request.Context(), userID, ctx.Param("id")); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "degree deleted"})
}

// GenerateCourses godoc
// @Summary AI 批量生成学位课程
// @Tags 学位
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "学位ID"
// @Param body body GenerateRequest false "生成数量，默认 8"
// @Success 200 {object} object
// @Failure 400 {object} util.ErrorBody
// @Failure 404 {object} util.ErrorBody
// @Router /api/degrees/{id}/generate-courses [post]
func (c *DegreeController) GenerateCourses(ctx *gin.Context) {
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
	res, err := c.GenerationService.GenerateCourses(ctx.Request.Context(), userID, ctx.Param("id"), req.Count)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"generated": res.Created,
		"courses":   res.Courses,
		"failed":    res.Failed,
		"message":   fmt.Sprintf("generated %d of %d courses", res.Created, res.Expected),
	})
}

// UploadIcon godoc
// @Summary 上传学位图标
// @Tags 学位
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "学位ID"
// @Param file formData file true "图片"
// @Success 200 {object} object
// @Failure 400 {object} util.ErrorBody
// @Failure 404 {object} util.ErrorBody
// @Router /api/degrees/{id}/icon [post]
func (c *DegreeController) UploadIcon(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id := ctx.Param("id")
	if _, err := c.DegreeService.Get(ctx.Request.Context(), userID, id); err != nil {
		util.RespondError(ctx, err)
		return
	}
	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	url, err := c.StorageService.UploadIcon(ctx.Request.Context(), "degrees", id, header)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	degree, err := c.DegreeService.SetIcon(ctx.Request.Context(), userID, id, url)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"degree": degree, "icon": url})
}
