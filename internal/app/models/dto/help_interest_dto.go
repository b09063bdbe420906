package dto

// CreateHelpInterestRequest represents a visitor's offer to help a featured
// student. The endpoint is public.
type CreateHelpInterestRequest struct {
	FullName               string  `json:"fullName" binding:"required" example:"Jane Onyango"`
	Email                  string  `json:"email" binding:"required,email" example:"jane@example.org"`
	Phone                  *string `json:"phone,omitempty"`
	HelpType               string  `json:"helpType" binding:"required,oneof=donation volunteer mentorship other" example:"mentorship"`
	Message                *string `json:"message,omitempty"`
	SpotlightApplicationID *int64  `json:"spotlightApplicationId,omitempty"`
}

// AdminReviewHelpInterestRequest represents an admin update to a help interest
type AdminReviewHelpInterestRequest struct {
	Status *string `json:"status,omitempty" example:"contacted"`
	Notes  *string `json:"notes,omitempty"`
}

// HelpInterestFilterRequest carries admin list filters
type HelpInterestFilterRequest struct {
	Status   *string
	HelpType *string
	Page     int
	PageSize int
}
