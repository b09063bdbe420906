package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edufund/scholarhub/internal/app/models/dto"
	"github.com/edufund/scholarhub/internal/app/services"
	"github.com/edufund/scholarhub/internal/middleware"
)

// FeaturedController handles the public featured students list and its
// admin curation
type FeaturedController struct {
	featuredService services.FeaturedService
}

// NewFeaturedController creates a new FeaturedController
func NewFeaturedController(featuredService services.FeaturedService) *FeaturedController {
	return &FeaturedController{featuredService: featuredService}
}

// List godoc
// @Summary List featured students
// @Description Get the public featured students list, merged from spotlight-enabled scholarship applications and featured spotlight profiles, ordered by display order with unordered entries last
// @Tags featured-students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.FeaturedStudentResponse}
// @Router /featured-students [get]
func (c *FeaturedController) List(ctx *gin.Context) {
	students, err := c.featuredService.ListFeatured(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students))
}

// Toggle godoc
// @Summary Feature or unfeature a student (admin)
// @Description Mark one record as featured or unfeatured. Featuring stamps the featured time; unfeaturing clears it.
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.ToggleFeaturedRequest true "Toggle data"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/featured-students/toggle [patch]
func (c *FeaturedController) Toggle(ctx *gin.Context) {
	adminID, ok := getUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.ToggleFeaturedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	if err := c.featuredService.Toggle(ctx, adminID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "featured flag updated"}))
}

// Reorder godoc
// @Summary Reorder the featured list (admin)
// @Description Rewrite the display order of the featured list. Updates run concurrently and are not atomic; on failure some orders may already be applied.
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.ReorderFeaturedRequest true "New ordering"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/featured-students/reorder [patch]
func (c *FeaturedController) Reorder(ctx *gin.Context) {
	adminID, ok := getUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.ReorderFeaturedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	if err := c.featuredService.Reorder(ctx, adminID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "featured order updated"}))
}
