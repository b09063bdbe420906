package dto

import (
	"github.com/edufund/scholarhub/internal/app/models"
)

// --- Request DTOs ---

// CreateApplicationRequest represents the data a student submits for a new
// scholarship application.
type CreateApplicationRequest struct {
	ApplicationType string   `json:"applicationType" binding:"required,oneof=first-year second-year" example:"first-year"`
	AcademicYear    string   `json:"academicYear" binding:"required" example:"2025-2026"`
	FullName        string   `json:"fullName" binding:"required" example:"Amina Diallo"`
	Email           string   `json:"email" binding:"required,email" example:"amina@example.org"`
	Phone           *string  `json:"phone,omitempty"`
	SchoolName      *string  `json:"schoolName,omitempty"`
	FieldOfStudy    *string  `json:"fieldOfStudy,omitempty"`
	FamilyIncome    *float64 `json:"familyIncome,omitempty"`
	BankName        *string  `json:"bankName,omitempty"`
	BankAccount     *string  `json:"bankAccount,omitempty"`
	Story           *string  `json:"story,omitempty"`
	AnnualNeed      *float64 `json:"annualNeed,omitempty"`
}

// StudentUpdateApplicationRequest represents the fields a student may change
// while an application is waiting on more information. Review metadata,
// identifiers and timestamps are never accepted from the student, even when
// present in the payload.
type StudentUpdateApplicationRequest struct {
	FullName     *string  `json:"fullName,omitempty"`
	Email        *string  `json:"email,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
	SchoolName   *string  `json:"schoolName,omitempty"`
	FieldOfStudy *string  `json:"fieldOfStudy,omitempty"`
	FamilyIncome *float64 `json:"familyIncome,omitempty"`
	BankName     *string  `json:"bankName,omitempty"`
	BankAccount  *string  `json:"bankAccount,omitempty"`
	Story        *string  `json:"story,omitempty"`
	AnnualNeed   *float64 `json:"annualNeed,omitempty"`
}

// AdminReviewApplicationRequest represents an admin review update. Any
// recognized status value is accepted from any other; there is no transition
// graph.
type AdminReviewApplicationRequest struct {
	Status           *string `json:"status,omitempty" example:"approved"`
	ReviewerNotes    *string `json:"reviewerNotes,omitempty"`
	SpotlightEnabled *bool   `json:"spotlightEnabled,omitempty"`
	SpotlightOrder   *int    `json:"spotlightOrder,omitempty"`
}

// ApplicationFilterRequest carries admin list filters
type ApplicationFilterRequest struct {
	Status          *string
	ApplicationType *string
	AcademicYear    *string
	Page            int
	PageSize        int
}

// --- Response DTOs ---

// ApplicationResponse returns an application, optionally with its documents
type ApplicationResponse struct {
	models.Application
	Documents []DocumentResponse `json:"documents,omitempty"`
}

// ConflictResponse points the caller at the already-existing record
type ConflictResponse struct {
	Error                 string `json:"error"`
	ExistingApplicationID string `json:"existingApplicationId"`
}
