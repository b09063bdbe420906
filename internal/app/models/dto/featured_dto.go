package dto

import (
	"time"
)

// Featured student sources. A featured student comes either from a scholarship
// application with spotlight enabled or from a standalone spotlight
// application.
const (
	FeaturedSourceScholarship = "scholarship"
	FeaturedSourceSpotlight   = "spotlight"
)

// FeaturedStudentResponse is one entry of the public featured students list.
// Source tells the caller which table the record came from; ID is only unique
// within a source.
type FeaturedStudentResponse struct {
	ID         int64      `json:"id"`
	DisplayID  string     `json:"displayId" example:"SPT-2025-0003"`
	Source     string     `json:"source" example:"spotlight"`
	FullName   string     `json:"fullName"`
	Email      string     `json:"email"`
	Story      *string    `json:"story,omitempty"`
	AnnualNeed *float64   `json:"annualNeed,omitempty"`
	IsFeatured bool       `json:"isFeatured"`
	Status     string     `json:"status"`
	PhotoURL   *string    `json:"photoUrl,omitempty"`
	Order      *int       `json:"order,omitempty"`
	FeaturedAt *time.Time `json:"featuredAt,omitempty"`
}

// ToggleFeaturedRequest marks a single record as featured or unfeatured
type ToggleFeaturedRequest struct {
	ID       int64  `json:"id" binding:"required"`
	Source   string `json:"source" binding:"required,oneof=scholarship spotlight"`
	Featured *bool  `json:"featured" binding:"required"`
}

// ReorderItem assigns a display order to one featured record
type ReorderItem struct {
	ID     int64  `json:"id" binding:"required"`
	Source string `json:"source" binding:"required,oneof=scholarship spotlight"`
	Order  int    `json:"order"`
}

// ReorderFeaturedRequest rewrites the display order of the featured list
type ReorderFeaturedRequest struct {
	Items []ReorderItem `json:"items" binding:"required,min=1,dive"`
}
