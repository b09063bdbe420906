package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edufund/scholarhub/internal/app/models/dto"
	"github.com/edufund/scholarhub/internal/app/services"
	"github.com/edufund/scholarhub/internal/middleware"
	"github.com/edufund/scholarhub/internal/pkg/helpers"
)

// DonationController handles donation operations
type DonationController struct {
	donationService services.DonationService
}

// NewDonationController creates a new DonationController
func NewDonationController(donationService services.DonationService) *DonationController {
	return &DonationController{donationService: donationService}
}

// Create godoc
// @Summary Pledge a donation
// @Description Record a donation pledge. Public endpoint; no payment is processed, an admin confirms receipt out-of-band.
// @Tags donations
// @Accept json
// @Produce json
// @Param request body dto.CreateDonationRequest true "Donation data"
// @Success 201 {object} dto.APIResponse{data=dto.CreateDonationResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /donations [post]
func (c *DonationController) Create(ctx *gin.Context) {
	var req dto.CreateDonationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	resp, err := c.donationService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// AdminList godoc
// @Summary List donations (admin)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Filter by status"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/donations [get]
func (c *DonationController) AdminList(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx, helpers.DefaultPageSize)
	filter := &dto.DonationFilterRequest{
		Status:   optionalQuery(ctx, "status"),
		Page:     page,
		PageSize: size,
	}

	resp, err := c.donationService.List(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// AdminGet godoc
// @Summary Get a donation (admin)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Donation ID"
// @Success 200 {object} dto.APIResponse{data=models.Donation}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/donations/{id} [get]
func (c *DonationController) AdminGet(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid donation ID")))
		return
	}

	donation, err := c.donationService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(donation))
}

// AdminReview godoc
// @Summary Update a donation (admin)
// @Description Update status, notes or transaction reference. Confirming stamps the acting admin and time.
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Donation ID"
// @Param request body dto.AdminReviewDonationRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Donation}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/donations/{id} [patch]
func (c *DonationController) AdminReview(ctx *gin.Context) {
	adminID, ok := getUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid donation ID")))
		return
	}

	var req dto.AdminReviewDonationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	donation, err := c.donationService.AdminReview(ctx, adminID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(donation))
}
