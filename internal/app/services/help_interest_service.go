package services

import (
	"context"
	"fmt"
	"time"

	"github.com/edufund/scholarhub/internal/app/models"
	"github.com/edufund/scholarhub/internal/app/models/dto"
	"github.com/edufund/scholarhub/internal/app/repositories"
	"github.com/edufund/scholarhub/internal/app/review"
	"github.com/edufund/scholarhub/internal/pkg/apperrors"
	"github.com/edufund/scholarhub/internal/pkg/logger"
)

// HelpInterestService defines the interface for help interest operations
type HelpInterestService interface {
	Create(ctx context.Context, req *dto.CreateHelpInterestRequest) (*models.HelpInterest, error)
	GetByID(ctx context.Context, id int64) (*models.HelpInterest, error)
	List(ctx context.Context, filter *dto.HelpInterestFilterRequest) (*dto.PaginatedResponse, error)
	AdminReview(ctx context.Context, adminID, id int64, req *dto.AdminReviewHelpInterestRequest) (*models.HelpInterest, error)
}

// helpInterestServiceImpl implements HelpInterestService
type helpInterestServiceImpl struct {
	interestRepo *repositories.HelpInterestRepository
	activityLog  ActivityLogService
}

// NewHelpInterestService creates a new HelpInterestService
func NewHelpInterestService(interestRepo *repositories.HelpInterestRepository, activityLog ActivityLogService) HelpInterestService {
	return &helpInterestServiceImpl{
		interestRepo: interestRepo,
		activityLog:  activityLog,
	}
}

// Create records a public offer of help, optionally tied to a spotlighted student
func (s *helpInterestServiceImpl) Create(ctx context.Context, req *dto.CreateHelpInterestRequest) (*models.HelpInterest, error) {
	interest := &models.HelpInterest{
		FullName:               req.FullName,
		Email:                  req.Email,
		Phone:                  req.Phone,
		HelpType:               req.HelpType,
		Message:                req.Message,
		SpotlightApplicationID: req.SpotlightApplicationID,
		Status:                 review.InterestNew,
	}

	id, err := s.interestRepo.CreateHelpInterest(ctx, interest)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("helpInterestID", id).Str("helpType", req.HelpType).Msg("Help interest recorded")
	return s.interestRepo.GetHelpInterestByID(ctx, id)
}

// GetByID returns one help interest (admin view)
func (s *helpInterestServiceImpl) GetByID(ctx context.Context, id int64) (*models.HelpInterest, error) {
	return s.interestRepo.GetHelpInterestByID(ctx, id)
}

// List returns a filtered lead page (admin view)
func (s *helpInterestServiceImpl) List(ctx context.Context, filter *dto.HelpInterestFilterRequest) (*dto.PaginatedResponse, error) {
	interests, pagination, err := s.interestRepo.GetAllHelpInterests(ctx, filter)
	if err != nil {
		return nil, err
	}
	if interests == nil {
		interests = []*models.HelpInterest{}
	}
	return &dto.PaginatedResponse{Items: interests, PaginationInfo: pagination}, nil
}

// AdminReview applies an admin update to a help interest. Follow-up metadata
// is stamped only on the first transition away from "new"; later status
// changes keep the original follow-up identity and time.
func (s *helpInterestServiceImpl) AdminReview(ctx context.Context, adminID, id int64, req *dto.AdminReviewHelpInterestRequest) (*models.HelpInterest, error) {
	interest, err := s.interestRepo.GetHelpInterestByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && !review.ValidStatus(review.EntityHelpInterest, *req.Status) {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "unrecognized status value").
			WithDetails(map[string]interface{}{
				"status":  *req.Status,
				"allowed": review.Statuses(review.EntityHelpInterest),
			})
	}

	update := &repositories.HelpInterestUpdate{}

	oldValue := map[string]interface{}{}
	newValue := map[string]interface{}{}

	statusChanged := req.Status != nil && *req.Status != interest.Status
	if req.Status != nil {
		update.Status = req.Status
		if statusChanged {
			oldValue["status"] = interest.Status
			newValue["status"] = *req.Status
			if review.StampsFollowUp(interest.Status, *req.Status) {
				now := time.Now()
				update.FollowedUpBy = &adminID
				update.FollowedUpAt = &now
			}
		}
	}

	if err := s.interestRepo.UpdateFields(ctx, id, update); err != nil {
		return nil, err
	}

	action := review.Classify(statusChanged, false)
	var oldSnapshot, newSnapshot interface{}
	if len(oldValue) > 0 {
		oldSnapshot = oldValue
	}
	if len(newValue) > 0 {
		newSnapshot = newValue
	}
	s.activityLog.Record(adminID, action, review.EntityHelpInterest, fmt.Sprintf("%d", interest.ID), oldSnapshot, newSnapshot)

	return s.interestRepo.GetHelpInterestByID(ctx, id)
}
