package auth

import (
	"github.com/edufund/scholarhub/internal/app/models"
	"github.com/edufund/scholarhub/internal/pkg/apperrors"
)

// AuthorizationService centralizes ownership checks. A student probing
// someone else's record gets the same not-found error as a missing record,
// so existence is never leaked through the status code.
type AuthorizationService struct{}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService() *AuthorizationService {
	return &AuthorizationService{}
}

// CheckApplicationOwnership verifies the application belongs to the student
func (a *AuthorizationService) CheckApplicationOwnership(app *models.Application, studentID int64) error {
	if app == nil || app.StudentID != studentID {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}

// CheckSpotlightOwnership verifies the spotlight application belongs to the student
func (a *AuthorizationService) CheckSpotlightOwnership(spot *models.SpotlightApplication, studentID int64) error {
	if spot == nil || spot.StudentID != studentID {
		return apperrors.ErrSpotlightNotFound
	}
	return nil
}

// IsAdmin reports whether the role string carries admin capability
func (a *AuthorizationService) IsAdmin(roleType string) bool {
	return roleType == string(models.RoleAdmin)
}
