package models

import (
	"time"
)

// SpotlightApplication defines a public-profile submission based on the
// 'spotlight_applications' table. Independent from scholarship applications;
// featuring decouples from review status.
type SpotlightApplication struct {
	ID            int64      `json:"id" db:"id"`
	SpotlightID   string     `json:"spotlightId" db:"spotlight_id" example:"SPT-2025-00007"`
	StudentID     int64      `json:"studentId" db:"student_id"`
	FullName      string     `json:"fullName" db:"full_name"`
	Email         string     `json:"email" db:"email"`
	Phone         *string    `json:"phone,omitempty" db:"phone"`
	Story         *string    `json:"story,omitempty" db:"story"`
	AnnualNeed    *float64   `json:"annualNeed,omitempty" db:"annual_need"`
	Status        string     `json:"status" db:"status" example:"pending"`
	ReviewerNotes *string    `json:"reviewerNotes,omitempty" db:"reviewer_notes"`
	ReviewedBy    *int64     `json:"reviewedBy,omitempty" db:"reviewed_by"`
	ReviewedAt    *time.Time `json:"reviewedAt,omitempty" db:"reviewed_at"`
	IsFeatured    bool       `json:"isFeatured" db:"is_featured"`
	FeaturedOrder *int       `json:"featuredOrder,omitempty" db:"featured_order"`
	FeaturedAt    *time.Time `json:"featuredAt,omitempty" db:"featured_at"`
	PhotoURL      *string    `json:"photoUrl,omitempty" db:"photo_url"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
}
