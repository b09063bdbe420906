package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edufund/scholarhub/internal/app/models/dto"
	"github.com/edufund/scholarhub/internal/app/services"
	"github.com/edufund/scholarhub/internal/middleware"
	"github.com/edufund/scholarhub/internal/pkg/helpers"
)

// HelpInterestController handles help interest operations
type HelpInterestController struct {
	helpInterestService services.HelpInterestService
}

// NewHelpInterestController creates a new HelpInterestController
func NewHelpInterestController(helpInterestService services.HelpInterestService) *HelpInterestController {
	return &HelpInterestController{helpInterestService: helpInterestService}
}

// Create godoc
// @Summary Offer help
// @Description Record an offer of help, optionally tied to a featured student. Public endpoint.
// @Tags help-interests
// @Accept json
// @Produce json
// @Param request body dto.CreateHelpInterestRequest true "Help interest data"
// @Success 201 {object} dto.APIResponse{data=models.HelpInterest}
// @Failure 400 {object} dto.ErrorResponse
// @Router /help-interests [post]
func (c *HelpInterestController) Create(ctx *gin.Context) {
	var req dto.CreateHelpInterestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	interest, err := c.helpInterestService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(interest))
}

// AdminList godoc
// @Summary List help interests (admin)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Filter by status"
// @Param helpType query string false "Filter by help type"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/help-interests [get]
func (c *HelpInterestController) AdminList(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx, helpers.DefaultPageSize)
	filter := &dto.HelpInterestFilterRequest{
		Status:   optionalQuery(ctx, "status"),
		HelpType: optionalQuery(ctx, "helpType"),
		Page:     page,
		PageSize: size,
	}

	resp, err := c.helpInterestService.List(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// AdminGet godoc
// @Summary Get a help interest (admin)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Help interest ID"
// @Success 200 {object} dto.APIResponse{data=models.HelpInterest}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/help-interests/{id} [get]
func (c *HelpInterestController) AdminGet(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid help interest ID")))
		return
	}

	interest, err := c.helpInterestService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(interest))
}

// AdminReview godoc
// @Summary Update a help interest (admin)
// @Description Update the lead status. The first transition away from "new" stamps follow-up metadata.
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Help interest ID"
// @Param request body dto.AdminReviewHelpInterestRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.HelpInterest}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/help-interests/{id} [patch]
func (c *HelpInterestController) AdminReview(ctx *gin.Context) {
	adminID, ok := getUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid help interest ID")))
		return
	}

	var req dto.AdminReviewHelpInterestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	interest, err := c.helpInterestService.AdminReview(ctx, adminID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(interest))
}
