package dto

import (
	"time"
)

// APIResponse provides the standard success envelope for API endpoints
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-08-23T12:01:05.123Z"`
}

// NewSuccessResponse creates a standard success response
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// PaginationInfo carries list paging metadata
type PaginationInfo struct {
	Total      int64 `json:"total" example:"135"`
	Page       int   `json:"page" example:"1"`
	PageSize   int   `json:"pageSize" example:"20"`
	TotalPages int   `json:"totalPages" example:"7"`
}

// PaginatedResponse represents a paginated list; the paging metadata is
// flattened alongside the items.
type PaginatedResponse struct {
	Items interface{} `json:"items"`
	PaginationInfo
}
