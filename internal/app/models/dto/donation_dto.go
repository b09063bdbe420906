package dto

// CreateDonationRequest represents a donor's pledge. This endpoint is public;
// donors do not hold accounts.
type CreateDonationRequest struct {
	DonorName  string  `json:"donorName" binding:"required" example:"Jane Onyango"`
	DonorEmail string  `json:"donorEmail" binding:"required,email" example:"jane@example.org"`
	Phone      *string `json:"phone,omitempty"`
	Amount     float64 `json:"amount" binding:"required,gt=0" example:"250.00"`
	Currency   string  `json:"currency" binding:"omitempty,len=3" example:"USD"`
	Message    *string `json:"message,omitempty"`
}

// CreateDonationResponse acknowledges a recorded pledge
type CreateDonationResponse struct {
	DonationID string  `json:"donationId" example:"DON-2025-0001"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	Status     string  `json:"status" example:"pending"`
}

// AdminReviewDonationRequest represents an admin update to a donation record
type AdminReviewDonationRequest struct {
	Status               *string `json:"status,omitempty" example:"confirmed"`
	Notes                *string `json:"notes,omitempty"`
	TransactionReference *string `json:"transactionReference,omitempty"`
}

// DonationFilterRequest carries admin list filters
type DonationFilterRequest struct {
	Status   *string
	Page     int
	PageSize int
}
