package dto

import (
	"time"
)

// StudentResponse represents a student profile
type StudentResponse struct {
	ID          int64      `json:"id"`
	FullName    string     `json:"fullName"`
	Email       string     `json:"email"`
	Phone       *string    `json:"phone,omitempty"`
	AddressLine *string    `json:"addressLine,omitempty"`
	City        *string    `json:"city,omitempty"`
	Country     *string    `json:"country,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Gender      *string    `json:"gender,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// UpdateStudentRequest represents a student profile update. All fields are
// optional; absent fields are left untouched.
type UpdateStudentRequest struct {
	FullName    *string    `json:"fullName,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	AddressLine *string    `json:"addressLine,omitempty"`
	City        *string    `json:"city,omitempty"`
	Country     *string    `json:"country,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Gender      *string    `json:"gender,omitempty"`
}
