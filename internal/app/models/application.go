package models

import (
	"time"
)

// ApplicationType distinguishes first-year requests from renewals
type ApplicationType string

const (
	ApplicationFirstYear  ApplicationType = "first-year"
	ApplicationSecondYear ApplicationType = "second-year"
)

// Application defines a scholarship funding request based on the 'applications' table.
// At most one application per (student, type, academic year) is intended; the
// guard is a pre-insert existence check, not a database constraint.
type Application struct {
	ID                    int64           `json:"id" db:"id"`
	ApplicationID         string          `json:"applicationId" db:"application_id" example:"APP-2025-00042"` // Human-readable generated identifier
	StudentID             int64           `json:"studentId" db:"student_id"`
	ApplicationType       ApplicationType `json:"applicationType" db:"application_type" example:"first-year"`
	AcademicYear          string          `json:"academicYear" db:"academic_year" example:"2025-2026"`
	FullName              string          `json:"fullName" db:"full_name"`
	Email                 string          `json:"email" db:"email"`
	Phone                 *string         `json:"phone,omitempty" db:"phone"`
	SchoolName            *string         `json:"schoolName,omitempty" db:"school_name"`
	FieldOfStudy          *string         `json:"fieldOfStudy,omitempty" db:"field_of_study"`
	FamilyIncome          *float64        `json:"familyIncome,omitempty" db:"family_income"`
	BankName              *string         `json:"bankName,omitempty" db:"bank_name"`
	BankAccount           *string         `json:"bankAccount,omitempty" db:"bank_account"`
	Story                 *string         `json:"story,omitempty" db:"story"`
	AnnualNeed            *float64        `json:"annualNeed,omitempty" db:"annual_need"`
	Status                string          `json:"status" db:"status" example:"pending"`
	ReviewerNotes         *string         `json:"reviewerNotes,omitempty" db:"reviewer_notes"`
	ReviewedBy            *int64          `json:"reviewedBy,omitempty" db:"reviewed_by"`
	ReviewedAt            *time.Time      `json:"reviewedAt,omitempty" db:"reviewed_at"`
	PreviousApplicationID *int64          `json:"previousApplicationId,omitempty" db:"previous_application_id"` // Renewal chaining to the approved first-year row
	SpotlightEnabled      bool            `json:"spotlightEnabled" db:"spotlight_enabled"`
	SpotlightOrder        *int            `json:"spotlightOrder,omitempty" db:"spotlight_order"`
	SpotlightFeaturedAt   *time.Time      `json:"spotlightFeaturedAt,omitempty" db:"spotlight_featured_at"`
	PhotoURL              *string         `json:"photoUrl,omitempty" db:"photo_url"` // Denormalized long-lived signed URL, set on photo upload
	CreatedAt             time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt             time.Time       `json:"updatedAt" db:"updated_at"`
}
