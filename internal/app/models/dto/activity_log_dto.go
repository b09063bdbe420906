package dto

import (
	"time"
)

// ActivityLogResponse is one admin audit trail entry. AdminName and AdminEmail
// are joined from the users table at read time.
type ActivityLogResponse struct {
	ID         int64       `json:"id"`
	AdminID    int64       `json:"adminId"`
	AdminName  string      `json:"adminName"`
	AdminEmail string      `json:"adminEmail"`
	ActionType string      `json:"actionType" example:"status_change"`
	EntityType string      `json:"entityType" example:"application"`
	EntityID   string      `json:"entityId" example:"APP-2025-0001"`
	OldValue   interface{} `json:"oldValue,omitempty"`
	NewValue   interface{} `json:"newValue,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// ActivityLogFilterRequest carries audit trail list filters
type ActivityLogFilterRequest struct {
	AdminID    *int64
	EntityType *string
	ActionType *string
	Page       int
	PageSize   int
}
