package dto

import (
	"github.com/edufund/scholarhub/internal/app/models"
)

// CreateSpotlightApplicationRequest represents a student's spotlight submission
type CreateSpotlightApplicationRequest struct {
	FullName   string   `json:"fullName" binding:"required" example:"Amina Diallo"`
	Email      string   `json:"email" binding:"required,email" example:"amina@example.org"`
	Phone      *string  `json:"phone,omitempty"`
	Story      *string  `json:"story,omitempty"`
	AnnualNeed *float64 `json:"annualNeed,omitempty"`
}

// StudentUpdateSpotlightRequest represents the fields a student may change
// while the spotlight application is waiting on more information.
type StudentUpdateSpotlightRequest struct {
	FullName   *string  `json:"fullName,omitempty"`
	Email      *string  `json:"email,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	Story      *string  `json:"story,omitempty"`
	AnnualNeed *float64 `json:"annualNeed,omitempty"`
}

// AdminReviewSpotlightRequest represents an admin review update for a
// spotlight application. Featuring is settable independently of status.
type AdminReviewSpotlightRequest struct {
	Status        *string `json:"status,omitempty" example:"approved"`
	ReviewerNotes *string `json:"reviewerNotes,omitempty"`
	IsFeatured    *bool   `json:"isFeatured,omitempty"`
	FeaturedOrder *int    `json:"featuredOrder,omitempty"`
}

// SpotlightFilterRequest carries admin list filters
type SpotlightFilterRequest struct {
	Status   *string
	Featured *bool
	Page     int
	PageSize int
}

// SpotlightApplicationResponse returns a spotlight application, optionally
// with its documents
type SpotlightApplicationResponse struct {
	models.SpotlightApplication
	Documents []DocumentResponse `json:"documents,omitempty"`
}
