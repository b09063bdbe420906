package models

import (
	"time"
)

// Donation defines one pledged or received contribution based on the
// 'donations' table. Created by public submission, mutated only by admins.
type Donation struct {
	ID                   int64      `json:"id" db:"id"`
	DonationID           string     `json:"donationId" db:"donation_id" example:"DON-2025-00113"`
	DonorName            string     `json:"donorName" db:"donor_name"`
	DonorEmail           string     `json:"donorEmail" db:"donor_email"`
	DonorPhone           *string    `json:"donorPhone,omitempty" db:"donor_phone"`
	Amount               float64    `json:"amount" db:"amount"`
	Currency             string     `json:"currency" db:"currency" example:"USD"`
	Status               string     `json:"status" db:"status" example:"pending"`
	ConfirmedBy          *int64     `json:"confirmedBy,omitempty" db:"confirmed_by"`
	ConfirmedAt          *time.Time `json:"confirmedAt,omitempty" db:"confirmed_at"`
	Notes                *string    `json:"notes,omitempty" db:"notes"`
	TransactionReference *string    `json:"transactionReference,omitempty" db:"transaction_reference"`
	CreatedAt            time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time  `json:"updatedAt" db:"updated_at"`
}
