package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edufund/scholarhub/internal/app/models/dto"
	"github.com/edufund/scholarhub/internal/app/services"
	"github.com/edufund/scholarhub/internal/middleware"
	"github.com/edufund/scholarhub/internal/pkg/helpers"
)

// ApplicationController handles scholarship application operations
type ApplicationController struct {
	applicationService services.ApplicationService
	studentService     services.StudentService
	documentService    services.DocumentService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(
	applicationService services.ApplicationService,
	studentService services.StudentService,
	documentService services.DocumentService,
) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
		studentService:     studentService,
		documentService:    documentService,
	}
}

func (c *ApplicationController) callerStudentID(ctx *gin.Context) (int64, bool) {
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
// @Summary Submit a scholarship application
// @Description Submit a new application; one per type and academic year. A duplicate returns 409 with the existing identifier.
// @Tags applications
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateApplicationRequest true "Application data"
// @Success 201 {object} dto.APIResponse{data=models.Application}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /applications [post]
func (c *ApplicationController) Create(ctx *gin.Context) {
	studentID, ok := c.callerStudentID(ctx)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	app, err := c.applicationService.Create(ctx, studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(app))
}

// ListMine godoc
// @Summary List my applications
// @Tags applications
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /applications [get]
func (c *ApplicationController) ListMine(ctx *gin.Context) {
	studentID, ok := c.callerStudentID(ctx)
	if !ok {
		return
	}

	page, size := helpers.ParsePaginationParams(ctx, helpers.DefaultPageSize)
	resp, err := c.applicationService.ListByStudent(ctx, studentID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetByID godoc
// @Summary Get one of my applications
// @Description Get one application with its documents. Applications of other students are reported as not found.
// @Tags applications
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /applications/{id} [get]
func (c *ApplicationController) GetByID(ctx *gin.Context) {
	studentID, ok := c.callerStudentID(ctx)
	if !ok {
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid application ID")))
		return
	}

	app, err := c.applicationService.GetForStudent(ctx, studentID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	docs, err := c.documentService.ListApplicationDocuments(ctx, app.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ApplicationResponse{
		Application: *app,
		Documents:   docs,
	}))
}

// Update godoc
// @Summary Update one of my applications
// @Description Resubmit fields while the application waits on more information; the edit moves it back under review
// @Tags applications
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Application ID"
// @Param request body dto.StudentUpdateApplicationRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Application}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /applications/{id} [patch]
func (c *ApplicationController) Update(ctx *gin.Context) {
	studentID, ok := c.callerStudentID(ctx)
	if !ok {
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid application ID")))
		return
	}

	var req dto.StudentUpdateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	app, err := c.applicationService.StudentUpdate(ctx, studentID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(app))
}

// UploadDocument godoc
// @Summary Upload a supporting document
// @Description Upload or replace one document for one of my applications. A photo upload also refreshes the application's cached photo URL.
// @Tags applications
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Application ID"
// @Param documentType formData string true "Document type"
// @Param file formData file true "File to upload (jpeg, png, webp or pdf, max 10MB)"
// @Success 201 {object} dto.APIResponse{data=dto.DocumentResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /applications/{id}/documents [post]
func (c *ApplicationController) UploadDocument(ctx *gin.Context) {
	studentID, ok := c.callerStudentID(ctx)
	if !ok {
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid application ID")))
		return
	}

	documentType := ctx.PostForm("documentType")
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "File is required")))
		return
	}

	doc, err := c.documentService.UploadApplicationDocument(ctx, studentID, id, documentType, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(doc))
}

// --- Admin endpoints ---

// AdminList godoc
// @Summary List applications (admin)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Filter by status"
// @Param applicationType query string false "Filter by application type"
// @Param academicYear query string false "Filter by academic year"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/applications [get]
func (c *ApplicationController) AdminList(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx, helpers.DefaultPageSize)
	filter := &dto.ApplicationFilterRequest{
		Status:          optionalQuery(ctx, "status"),
		ApplicationType: optionalQuery(ctx, "applicationType"),
		AcademicYear:    optionalQuery(ctx, "academicYear"),
		Page:            page,
		PageSize:        size,
	}

	resp, err := c.applicationService.List(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// AdminGet godoc
// @Summary Get an application (admin)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/applications/{id} [get]
func (c *ApplicationController) AdminGet(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid application ID")))
		return
	}

	app, err := c.applicationService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	docs, err := c.documentService.ListApplicationDocuments(ctx, app.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ApplicationResponse{
		Application: *app,
		Documents:   docs,
	}))
}

// AdminReview godoc
// @Summary Review an application (admin)
// @Description Update status, reviewer notes or spotlight flags. Unrecognized status values are rejected before anything is written.
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Application ID"
// @Param request body dto.AdminReviewApplicationRequest true "Review fields"
// @Success 200 {object} dto.APIResponse{data=models.Application}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/applications/{id} [patch]
func (c *ApplicationController) AdminReview(ctx *gin.Context) {
	adminID, ok := getUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid application ID")))
		return
	}

	var req dto.AdminReviewApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	app, err := c.applicationService.AdminReview(ctx, adminID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(app))
}
