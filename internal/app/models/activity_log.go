package models

import (
	"time"
)

// BatchEntityID is the sentinel entity id recorded when one admin action
// covers multiple entities at once (e.g. a spotlight reorder).
const BatchEntityID = "batch"

// ActivityLog defines one append-only audit row based on the
// 'admin_activity_log' table. Rows are never updated or deleted.
type ActivityLog struct {
	ID         int64       `json:"id" db:"id"`
	AdminID    int64       `json:"adminId" db:"admin_id"`
	ActionType string      `json:"actionType" db:"action_type" example:"status_change"`
	EntityType string      `json:"entityType" db:"entity_type" example:"application"`
	EntityID   string      `json:"entityId" db:"entity_id" example:"APP-2025-00042"`
	OldValue   interface{} `json:"oldValue,omitempty" db:"old_value"` // Structured snapshot of the changed fields before the action
	NewValue   interface{} `json:"newValue,omitempty" db:"new_value"` // Structured snapshot of the changed fields after the action
	CreatedAt  time.Time   `json:"createdAt" db:"created_at"`

	// Read-time enrichment from the acting admin's user row; not stored.
	AdminName  string `json:"adminName,omitempty"`
	AdminEmail string `json:"adminEmail,omitempty"`
}
