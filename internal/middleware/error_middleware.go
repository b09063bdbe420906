package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edufund/scholarhub/internal/app/models/dto"
	"github.com/edufund/scholarhub/internal/pkg/apperrors"
	"github.com/edufund/scholarhub/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. Status codes follow
// the error identity, not the request: ownership failures surface as 404 so
// record existence is never leaked.
func HandleAPIError(c *gin.Context, err error) {
	status, code, message := classifyError(err)

	errorDetail := dto.NewErrorDetail(code, message)
	if details := apperrors.DetailsOf(err); details != nil {
		errorDetail = errorDetail.WithDetails(details)
	}

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
	}

	c.JSON(status, dto.NewErrorResponse(errorDetail))
}

func classifyError(err error) (int, dto.ErrorCode, string) {
	switch {
	// Not found (includes ownership mismatches)
	case errors.Is(err, apperrors.ErrApplicationNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Application not found"
	case errors.Is(err, apperrors.ErrSpotlightNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Spotlight application not found"
	case errors.Is(err, apperrors.ErrDonationNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Donation not found"
	case errors.Is(err, apperrors.ErrHelpInterestNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Help interest not found"
	case errors.Is(err, apperrors.ErrDocumentNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Document not found"
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"

	// Authentication
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"
	case errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenRevoked),
		errors.Is(err, apperrors.ErrInvalidFormat):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"
	case errors.Is(err, apperrors.ErrTokenNotFound):
		return http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Token not found"

	// Authorization
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"
	case errors.Is(err, apperrors.ErrAccountDisabled):
		return http.StatusForbidden, dto.ErrorCodeForbidden, "Account is disabled"
	case errors.Is(err, apperrors.ErrNotEditable):
		return http.StatusForbidden, dto.ErrorCodeForbidden, "Application cannot be updated in its current status"

	// Validation
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"
	case errors.Is(err, apperrors.ErrInvalidDocumentType):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid document type"
	case errors.Is(err, apperrors.ErrInvalidFileType):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Unsupported file type"
	case errors.Is(err, apperrors.ErrFileTooLarge):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "File exceeds maximum allowed size"
	case errors.Is(err, apperrors.ErrUnknownFeaturedSource):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Unknown featured source"
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.ErrorCodeInvalidRequest, "Bad request"

	// Conflicts
	case errors.Is(err, apperrors.ErrDuplicateApplication):
		return http.StatusConflict, dto.ErrorCodeConflict, "An application already exists for this type and academic year"
	case errors.Is(err, apperrors.ErrActiveSpotlightExists):
		return http.StatusConflict, dto.ErrorCodeConflict, "An active spotlight application already exists"
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists"
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.ErrorCodeConflict, "Conflict"

	default:
		return http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"
	}
}
