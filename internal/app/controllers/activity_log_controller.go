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

// ActivityLogDefaultPageSize is the audit trail's own default page size
const ActivityLogDefaultPageSize = 20

// ActivityLogController exposes the admin audit trail
type ActivityLogController struct {
	activityLogService services.ActivityLogService
}

// NewActivityLogController creates a new ActivityLogController
func NewActivityLogController(activityLogService services.ActivityLogService) *ActivityLogController {
	return &ActivityLogController{activityLogService: activityLogService}
}

// List godoc
// @Summary List admin activity (admin)
// @Description Get the audit trail, newest first, with the acting admin's name and email
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param adminId query int false "Filter by acting admin"
// @Param entityType query string false "Filter by entity type"
// @Param actionType query string false "Filter by action type"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/activity-logs [get]
func (c *ActivityLogController) List(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx, ActivityLogDefaultPageSize)
	filter := &dto.ActivityLogFilterRequest{
		EntityType: optionalQuery(ctx, "entityType"),
		ActionType: optionalQuery(ctx, "actionType"),
		Page:       page,
		PageSize:   size,
	}
	if adminIDStr := ctx.Query("adminId"); adminIDStr != "" {
		if adminID, err := strconv.ParseInt(adminIDStr, 10, 64); err == nil && adminID > 0 {
			filter.AdminID = &adminID
		}
	}

	resp, err := c.activityLogService.GetLogs(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
