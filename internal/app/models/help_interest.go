package models

import (
	"time"
)

// HelpInterest defines a lead record from someone offering help, based on the
// 'help_interests' table. Optionally tied to a spotlighted student.
type HelpInterest struct {
	ID                     int64      `json:"id" db:"id"`
	FullName               string     `json:"fullName" db:"full_name"`
	Email                  string     `json:"email" db:"email"`
	Phone                  *string    `json:"phone,omitempty" db:"phone"`
	HelpType               string     `json:"helpType" db:"help_type" example:"donation"`
	Message                *string    `json:"message,omitempty" db:"message"`
	SpotlightApplicationID *int64     `json:"spotlightApplicationId,omitempty" db:"spotlight_application_id"`
	Status                 string     `json:"status" db:"status" example:"new"`
	FollowedUpBy           *int64     `json:"followedUpBy,omitempty" db:"followed_up_by"`
	FollowedUpAt           *time.Time `json:"followedUpAt,omitempty" db:"followed_up_at"`
	CreatedAt              time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt              time.Time  `json:"updatedAt" db:"updated_at"`
}
