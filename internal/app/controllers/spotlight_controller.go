package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edufund/scholarhub/internal/app/models/dto"
	"github.com/edufund/scholarhub/internal/app/services"
	"github.com/edufund/scholarhub/internal/middleware"
	"github.com/edufund/scholarhub/internal/pkg/helpers"
)

// SpotlightController handles spotlight application operations
type SpotlightController struct {
	spotlightService services.SpotlightService
	studentService   services.StudentService
	documentService  services.DocumentService
}

// NewSpotlightController creates a new SpotlightController
func NewSpotlightController(
	spotlightService services.SpotlightService,
	studentService services.StudentService,
	documentService services.DocumentService,
) *SpotlightController {
	return &SpotlightController{
		spotlightService: spotlightService,
		studentService:   studentService,
		documentService:  documentService,
	}
}

func (c *SpotlightController) callerStudentID(ctx *gin.Context) (int64, bool) {
	userID, ok := getUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return 0, false
	}
	studentID, err := c.studentService.GetStudentID(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return 0, false
	}
	return studentID, true
}

// Create godoc
// @Summary Submit a spotlight application
// @Description Submit a public-profile application. Only one pending or under-review submission is allowed per student; a second returns 409 with the existing identifier.
// @Tags spotlight
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateSpotlightApplicationRequest true "Spotlight data"
// @Success 201 {object} dto.APIResponse{data=models.SpotlightApplication}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /spotlight-applications [post]
func (c *SpotlightController) Create(ctx *gin.Context) {
	studentID, ok := c.callerStudentID(ctx)
	if !ok {
		return
	}

	var req dto.CreateSpotlightApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	spot, err := c.spotlightService.Create(ctx, studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(spot))
}

// ListMine godoc
// @Summary List my spotlight applications
// @Tags spotlight
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /spotlight-applications [get]
func (c *SpotlightController) ListMine(ctx *gin.Context) {
	studentID, ok := c.callerStudentID(ctx)
	if !ok {
		return
	}

	page, size := helpers.ParsePaginationParams(ctx, helpers.DefaultPageSize)
	resp, err := c.spotlightService.ListByStudent(ctx, studentID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetByID godoc
// @Summary Get one of my spotlight applications
// @Tags spotlight
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Spotlight application ID"
// @Success 200 {object} dto.APIResponse{data=dto.SpotlightApplicationResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /spotlight-applications/{id} [get]
func (c *SpotlightController) GetByID(ctx *gin.Context) {
	studentID, ok := c.callerStudentID(ctx)
	if !ok {
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid spotlight application ID")))
		return
	}

	spot, err := c.spotlightService.GetForStudent(ctx, studentID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	docs, err := c.documentService.ListSpotlightDocuments(ctx, spot.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SpotlightApplicationResponse{
		SpotlightApplication: *spot,
		Documents:            docs,
	}))
}

// Update godoc
// @Summary Update one of my spotlight applications
// @Description Resubmit fields while the record waits on more information; the edit moves it back under review
// @Tags spotlight
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Spotlight application ID"
// @Param request body dto.StudentUpdateSpotlightRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.SpotlightApplication}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /spotlight-applications/{id} [patch]
func (c *SpotlightController) Update(ctx *gin.Context) {
	studentID, ok := c.callerStudentID(ctx)
	if !ok {
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid spotlight application ID")))
		return
	}

	var req dto.StudentUpdateSpotlightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	spot, err := c.spotlightService.StudentUpdate(ctx, studentID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(spot))
}

// UploadDocument godoc
// @Summary Upload a spotlight document
// @Description Upload or replace one document for one of my spotlight applications
// @Tags spotlight
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Spotlight application ID"
// @Param documentType formData string true "Document type"
// @Param file formData file true "File to upload (jpeg, png, webp or pdf, max 10MB)"
// @Success 201 {object} dto.APIResponse{data=dto.DocumentResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /spotlight-applications/{id}/documents [post]
func (c *SpotlightController) UploadDocument(ctx *gin.Context) {
	studentID, ok := c.callerStudentID(ctx)
	if !ok {
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid spotlight application ID")))
		return
	}

	documentType := ctx.PostForm("documentType")
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "File is required")))
		return
	}

	doc, err := c.documentService.UploadSpotlightDocument(ctx, studentID, id, documentType, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(doc))
}

// --- Admin endpoints ---

// AdminList godoc
// @Summary List spotlight applications (admin)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Filter by status"
// @Param featured query bool false "Filter by featured flag"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/spotlight-applications [get]
func (c *SpotlightController) AdminList(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx, helpers.DefaultPageSize)
	filter := &dto.SpotlightFilterRequest{
		Status:   optionalQuery(ctx, "status"),
		Page:     page,
		PageSize: size,
	}
	if featuredStr := ctx.Query("featured"); featuredStr != "" {
		if featured, err := strconv.ParseBool(featuredStr); err == nil {
			filter.Featured = &featured
		}
	}

	resp, err := c.spotlightService.List(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// AdminGet godoc
// @Summary Get a spotlight application (admin)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Spotlight application ID"
// @Success 200 {object} dto.APIResponse{data=dto.SpotlightApplicationResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/spotlight-applications/{id} [get]
func (c *SpotlightController) AdminGet(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid spotlight application ID")))
		return
	}

	spot, err := c.spotlightService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	docs, err := c.documentService.ListSpotlightDocuments(ctx, spot.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SpotlightApplicationResponse{
		SpotlightApplication: *spot,
		Documents:            docs,
	}))
}

// AdminReview godoc
// @Summary Review a spotlight application (admin)
// @Description Update status, reviewer notes or featuring. Featuring is independent of review status.
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Spotlight application ID"
// @Param request body dto.AdminReviewSpotlightRequest true "Review fields"
// @Success 200 {object} dto.APIResponse{data=models.SpotlightApplication}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/spotlight-applications/{id} [patch]
func (c *SpotlightController) AdminReview(ctx *gin.Context) {
	adminID, ok := getUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid spotlight application ID")))
		return
	}

	var req dto.AdminReviewSpotlightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	spot, err := c.spotlightService.AdminReview(ctx, adminID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(spot))
}
