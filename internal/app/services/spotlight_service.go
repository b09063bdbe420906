package services

import (
	"context"
	"time"

	"github.com/edufund/scholarhub/internal/app/auth"
	"github.com/edufund/scholarhub/internal/app/models"
	"github.com/edufund/scholarhub/internal/app/models/dto"
	"github.com/edufund/scholarhub/internal/app/repositories"
	"github.com/edufund/scholarhub/internal/app/review"
	"github.com/edufund/scholarhub/internal/pkg/apperrors"
	"github.com/edufund/scholarhub/internal/pkg/logger"
)

// SpotlightService defines the interface for spotlight application operations
type SpotlightService interface {
	Create(ctx context.Context, studentID int64, req *dto.CreateSpotlightApplicationRequest) (*models.SpotlightApplication, error)
	GetForStudent(ctx context.Context, studentID, id int64) (*models.SpotlightApplication, error)
	ListByStudent(ctx context.Context, studentID int64, page, size int) (*dto.PaginatedResponse, error)
	StudentUpdate(ctx context.Context, studentID, id int64, req *dto.StudentUpdateSpotlightRequest) (*models.SpotlightApplication, error)
	GetByID(ctx context.Context, id int64) (*models.SpotlightApplication, error)
	List(ctx context.Context, filter *dto.SpotlightFilterRequest) (*dto.PaginatedResponse, error)
	AdminReview(ctx context.Context, adminID, id int64, req *dto.AdminReviewSpotlightRequest) (*models.SpotlightApplication, error)
}

// spotlightServiceImpl implements SpotlightService
type spotlightServiceImpl struct {
	spotRepo     *repositories.SpotlightRepository
	authzService *auth.AuthorizationService
	activityLog  ActivityLogService
}

// NewSpotlightService creates a new SpotlightService
func NewSpotlightService(
	spotRepo *repositories.SpotlightRepository,
	authzService *auth.AuthorizationService,
	activityLog ActivityLogService,
) SpotlightService {
	return &spotlightServiceImpl{
		spotRepo:     spotRepo,
		authzService: authzService,
		activityLog:  activityLog,
	}
}

// activeStatuses are the spotlight statuses that count against the
// one-active-submission-per-student rule.
func activeStatuses() []string {
	var out []string
	for _, s := range review.Statuses(review.EntitySpotlightApplication) {
		if review.ActiveSpotlightStatus(s) {
			out = append(out, s)
		}
	}
	return out
}

// Create submits a new spotlight application. A student may hold only one
// submission that is still pending or under review; a second one is rejected
// with the identifier of the active record.
func (s *spotlightServiceImpl) Create(ctx context.Context, studentID int64, req *dto.CreateSpotlightApplicationRequest) (*models.SpotlightApplication, error) {
	existingID, exists, err := s.spotRepo.FindActiveForStudent(ctx, studentID, activeStatuses())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewCustomError(apperrors.ErrActiveSpotlightExists, "").
			WithDetails(map[string]interface{}{"existingSpotlightId": existingID})
	}

	spot := &models.SpotlightApplication{
		StudentID:  studentID,
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Story:      req.Story,
		AnnualNeed: req.AnnualNeed,
		Status:     review.StatusPending,
	}

	created, err := s.spotRepo.CreateSpotlight(ctx, spot)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("studentID", studentID).
		Str("spotlightID", created.SpotlightID).
		Msg("Spotlight application submitted")
	return created, nil
}

// GetForStudent returns one of the calling student's spotlight applications
func (s *spotlightServiceImpl) GetForStudent(ctx context.Context, studentID, id int64) (*models.SpotlightApplication, error) {
	spot, err := s.spotRepo.GetSpotlightByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authzService.CheckSpotlightOwnership(spot, studentID); err != nil {
		return nil, err
	}
	return spot, nil
}

// ListByStudent returns the calling student's spotlight applications
func (s *spotlightServiceImpl) ListByStudent(ctx context.Context, studentID int64, page, size int) (*dto.PaginatedResponse, error) {
	spots, pagination, err := s.spotRepo.GetSpotlightsByStudent(ctx, studentID, page, size)
	if err != nil {
		return nil, err
	}
	if spots == nil {
		spots = []*models.SpotlightApplication{}
	}
	return &dto.PaginatedResponse{Items: spots, PaginationInfo: pagination}, nil
}

// StudentUpdate applies a student's resubmission, allowed only while the
// record waits on more information, and moves it back under review.
func (s *spotlightServiceImpl) StudentUpdate(ctx context.Context, studentID, id int64, req *dto.StudentUpdateSpotlightRequest) (*models.SpotlightApplication, error) {
	spot, err := s.GetForStudent(ctx, studentID, id)
	if err != nil {
		return nil, err
	}

	if !review.StudentEditable(spot.Status) {
		return nil, apperrors.ErrNotEditable
	}

	if err := s.spotRepo.UpdateStudentFields(ctx, id, req, review.StatusUnderReview); err != nil {
		return nil, err
	}

	return s.spotRepo.GetSpotlightByID(ctx, id)
}

// GetByID returns one spotlight application without ownership restriction
func (s *spotlightServiceImpl) GetByID(ctx context.Context, id int64) (*models.SpotlightApplication, error) {
	return s.spotRepo.GetSpotlightByID(ctx, id)
}

// List returns a filtered spotlight page (admin view)
func (s *spotlightServiceImpl) List(ctx context.Context, filter *dto.SpotlightFilterRequest) (*dto.PaginatedResponse, error) {
	spots, pagination, err := s.spotRepo.GetAllSpotlights(ctx, filter)
	if err != nil {
		return nil, err
	}
	if spots == nil {
		spots = []*models.SpotlightApplication{}
	}
	return &dto.PaginatedResponse{Items: spots, PaginationInfo: pagination}, nil
}

// AdminReview applies an admin review update to a spotlight application.
// Featuring is independent of review status: a record can be featured or
// unfeatured in any status. Status changes stamp the reviewer and the
// mutation is recorded on the audit trail without blocking the response.
func (s *spotlightServiceImpl) AdminReview(ctx context.Context, adminID, id int64, req *dto.AdminReviewSpotlightRequest) (*models.SpotlightApplication, error) {
	spot, err := s.spotRepo.GetSpotlightByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && !review.ValidStatus(review.EntitySpotlightApplication, *req.Status) {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "unrecognized status value").
			WithDetails(map[string]interface{}{
				"status":  *req.Status,
				"allowed": review.Statuses(review.EntitySpotlightApplication),
			})
	}

	plan := planSpotlightReview(spot, req, adminID, time.Now())

	if err := s.spotRepo.UpdateReviewFields(ctx, id, plan.update); err != nil {
		return nil, err
	}

	action := review.Classify(plan.statusChanged, plan.featuredChanged)
	s.activityLog.Record(adminID, action, review.EntitySpotlightApplication, spot.SpotlightID,
		snapshotOrNil(plan.oldValue), snapshotOrNil(plan.newValue))

	return s.spotRepo.GetSpotlightByID(ctx, id)
}

// spotlightReviewPlan is the persisted update plus the audit snapshots
// derived from one admin review request.
type spotlightReviewPlan struct {
	update          *repositories.SpotlightReviewUpdate
	oldValue        map[string]interface{}
	newValue        map[string]interface{}
	statusChanged   bool
	featuredChanged bool
}

// planSpotlightReview maps a review request onto the partial update and the
// before/after snapshots of every field it changes.
func planSpotlightReview(spot *models.SpotlightApplication, req *dto.AdminReviewSpotlightRequest, adminID int64, now time.Time) spotlightReviewPlan {
	plan := spotlightReviewPlan{
		update:   &repositories.SpotlightReviewUpdate{},
		oldValue: map[string]interface{}{},
		newValue: map[string]interface{}{},
	}

	if stringChanged(req.ReviewerNotes, spot.ReviewerNotes) {
		plan.update.ReviewerNotes = req.ReviewerNotes
		plan.oldValue["reviewer_notes"] = spot.ReviewerNotes
		plan.newValue["reviewer_notes"] = *req.ReviewerNotes
	}

	if req.Status != nil {
		plan.update.Status = req.Status
		if *req.Status != spot.Status {
			plan.statusChanged = true
			plan.update.ReviewedBy = &adminID
			plan.update.ReviewedAt = &now
			plan.oldValue["status"] = spot.Status
			plan.newValue["status"] = *req.Status
		}
	}

	if req.IsFeatured != nil && *req.IsFeatured != spot.IsFeatured {
		plan.featuredChanged = true
		plan.update.IsFeatured = req.IsFeatured
		if *req.IsFeatured {
			plan.update.FeaturedAt = &now
		} else {
			plan.update.ClearFeaturedAt = true
		}
		plan.oldValue["is_featured"] = spot.IsFeatured
		plan.newValue["is_featured"] = *req.IsFeatured
	}
	if req.FeaturedOrder != nil {
		plan.update.FeaturedOrder = req.FeaturedOrder
	}

	return plan
}
