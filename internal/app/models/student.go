package models

import (
	"time"
)

// Student defines the student profile based on the 'students' table.
// One row per registered user identity; created at registration, never deleted.
type Student struct {
	ID          int64      `json:"id" db:"id"`
	UserID      int64      `json:"userId" db:"user_id"`
	FullName    string     `json:"fullName" db:"full_name"`
	Email       string     `json:"email" db:"email"`
	Phone       *string    `json:"phone,omitempty" db:"phone"`
	AddressLine *string    `json:"addressLine,omitempty" db:"address_line"`
	City        *string    `json:"city,omitempty" db:"city"`
	Country     *string    `json:"country,omitempty" db:"country"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Gender      *string    `json:"gender,omitempty" db:"gender"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
	User        *User      `json:"user,omitempty"` // Relation, no db tag
}
