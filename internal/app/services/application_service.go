package services

import (
	"context"
	"errors"
	"time"

	"github.com/edufund/scholarhub/internal/app/auth"
	"github.com/edufund/scholarhub/internal/app/models"
	"github.com/edufund/scholarhub/internal/app/models/dto"
	"github.com/edufund/scholarhub/internal/app/repositories"
	"github.com/edufund/scholarhub/internal/app/review"
	"github.com/edufund/scholarhub/internal/pkg/apperrors"
	"github.com/edufund/scholarhub/internal/pkg/logger"
)

// ApplicationService defines the interface for scholarship application operations
type ApplicationService interface {
	Create(ctx context.Context, studentID int64, req *dto.CreateApplicationRequest) (*models.Application, error)
	GetForStudent(ctx context.Context, studentID, id int64) (*models.Application, error)
	ListByStudent(ctx context.Context, studentID int64, page, size int) (*dto.PaginatedResponse, error)
	StudentUpdate(ctx context.Context, studentID, id int64, req *dto.StudentUpdateApplicationRequest) (*models.Application, error)
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	List(ctx context.Context, filter *dto.ApplicationFilterRequest) (*dto.PaginatedResponse, error)
	AdminReview(ctx context.Context, adminID, id int64, req *dto.AdminReviewApplicationRequest) (*models.Application, error)
}

// applicationServiceImpl implements ApplicationService
type applicationServiceImpl struct {
	appRepo      *repositories.ApplicationRepository
	authzService *auth.AuthorizationService
	activityLog  ActivityLogService
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	appRepo *repositories.ApplicationRepository,
	authzService *auth.AuthorizationService,
	activityLog ActivityLogService,
) ApplicationService {
	return &applicationServiceImpl{
		appRepo:      appRepo,
		authzService: authzService,
		activityLog:  activityLog,
	}
}

// Create submits a new scholarship application. At most one application per
// (student, type, academic year) is allowed; a duplicate is rejected with the
// identifier of the existing record. Renewal applications are chained to the
// student's latest approved first-year application when one exists.
func (s *applicationServiceImpl) Create(ctx context.Context, studentID int64, req *dto.CreateApplicationRequest) (*models.Application, error) {
	appType := models.ApplicationType(req.ApplicationType)

	existingID, exists, err := s.appRepo.FindExistingForYear(ctx, studentID, appType, req.AcademicYear)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewCustomError(apperrors.ErrDuplicateApplication, "").
			WithDetails(map[string]interface{}{"existingApplicationId": existingID})
	}

	app := &models.Application{
		StudentID:       studentID,
		ApplicationType: appType,
		AcademicYear:    req.AcademicYear,
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		SchoolName:      req.SchoolName,
		FieldOfStudy:    req.FieldOfStudy,
		FamilyIncome:    req.FamilyIncome,
		BankName:        req.BankName,
		BankAccount:     req.BankAccount,
		Story:           req.Story,
		AnnualNeed:      req.AnnualNeed,
		Status:          review.StatusPending,
	}

	if appType == models.ApplicationSecondYear {
		previous, err := s.appRepo.GetLatestApprovedFirstYear(ctx, studentID)
		if err != nil && !errors.Is(err, apperrors.ErrApplicationNotFound) {
			return nil, err
		}
		if previous != nil {
			app.PreviousApplicationID = &previous.ID
		}
	}

	created, err := s.appRepo.CreateApplication(ctx, app)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("studentID", studentID).
		Str("applicationID", created.ApplicationID).
		Str("type", string(appType)).
		Msg("Application submitted")
	return created, nil
}

// GetForStudent returns one of the calling student's applications. Records
// belonging to other students are indistinguishable from missing ones.
func (s *applicationServiceImpl) GetForStudent(ctx context.Context, studentID, id int64) (*models.Application, error) {
	app, err := s.appRepo.GetApplicationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authzService.CheckApplicationOwnership(app, studentID); err != nil {
		return nil, err
	}
	return app, nil
}

// ListByStudent returns the calling student's applications
func (s *applicationServiceImpl) ListByStudent(ctx context.Context, studentID int64, page, size int) (*dto.PaginatedResponse, error) {
	apps, pagination, err := s.appRepo.GetApplicationsByStudent(ctx, studentID, page, size)
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []*models.Application{}
	}
	return &dto.PaginatedResponse{Items: apps, PaginationInfo: pagination}, nil
}

// StudentUpdate applies a student's resubmission. Only applications waiting
// on more information may be edited; the edit moves the application back
// under review in the same statement.
func (s *applicationServiceImpl) StudentUpdate(ctx context.Context, studentID, id int64, req *dto.StudentUpdateApplicationRequest) (*models.Application, error) {
	app, err := s.GetForStudent(ctx, studentID, id)
	if err != nil {
		return nil, err
	}

	if !review.StudentEditable(app.Status) {
		return nil, apperrors.ErrNotEditable
	}

	if err := s.appRepo.UpdateStudentFields(ctx, id, req, review.StatusUnderReview); err != nil {
		return nil, err
	}

	return s.appRepo.GetApplicationByID(ctx, id)
}

// GetByID returns one application without ownership restriction (admin view)
func (s *applicationServiceImpl) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	return s.appRepo.GetApplicationByID(ctx, id)
}

// List returns a filtered application page (admin view)
func (s *applicationServiceImpl) List(ctx context.Context, filter *dto.ApplicationFilterRequest) (*dto.PaginatedResponse, error) {
	apps, pagination, err := s.appRepo.GetAllApplications(ctx, filter)
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []*models.Application{}
	}
	return &dto.PaginatedResponse{Items: apps, PaginationInfo: pagination}, nil
}

// AdminReview applies an admin review update. The status value is validated
// before anything is written; any recognized status may replace any other.
// Status changes stamp the reviewer, and the whole mutation is classified and
// recorded on the audit trail without blocking the response.
func (s *applicationServiceImpl) AdminReview(ctx context.Context, adminID, id int64, req *dto.AdminReviewApplicationRequest) (*models.Application, error) {
	app, err := s.appRepo.GetApplicationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && !review.ValidStatus(review.EntityApplication, *req.Status) {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "unrecognized status value").
			WithDetails(map[string]interface{}{
				"status":  *req.Status,
				"allowed": review.Statuses(review.EntityApplication),
			})
	}

	plan := planApplicationReview(app, req, adminID, time.Now())

	if err := s.appRepo.UpdateReviewFields(ctx, id, plan.update); err != nil {
		return nil, err
	}

	action := review.Classify(plan.statusChanged, plan.featuredChanged)
	s.activityLog.Record(adminID, action, review.EntityApplication, app.ApplicationID,
		snapshotOrNil(plan.oldValue), snapshotOrNil(plan.newValue))

	return s.appRepo.GetApplicationByID(ctx, id)
}

// applicationReviewPlan is the persisted update plus the audit snapshots
// derived from one admin review request.
type applicationReviewPlan struct {
	update          *repositories.ApplicationReviewUpdate
	oldValue        map[string]interface{}
	newValue        map[string]interface{}
	statusChanged   bool
	featuredChanged bool
}

// planApplicationReview maps a review request onto the partial update and the
// before/after snapshots of every field it changes. Fields whose requested
// value matches the stored one are left out of both.
func planApplicationReview(app *models.Application, req *dto.AdminReviewApplicationRequest, adminID int64, now time.Time) applicationReviewPlan {
	plan := applicationReviewPlan{
		update:   &repositories.ApplicationReviewUpdate{},
		oldValue: map[string]interface{}{},
		newValue: map[string]interface{}{},
	}

	if stringChanged(req.ReviewerNotes, app.ReviewerNotes) {
		plan.update.ReviewerNotes = req.ReviewerNotes
		plan.oldValue["reviewer_notes"] = app.ReviewerNotes
		plan.newValue["reviewer_notes"] = *req.ReviewerNotes
	}

	if req.Status != nil {
		plan.update.Status = req.Status
		if *req.Status != app.Status {
			plan.statusChanged = true
			plan.update.ReviewedBy = &adminID
			plan.update.ReviewedAt = &now
			plan.oldValue["status"] = app.Status
			plan.newValue["status"] = *req.Status
		}
	}

	if req.SpotlightEnabled != nil && *req.SpotlightEnabled != app.SpotlightEnabled {
		plan.featuredChanged = true
		plan.update.SpotlightEnabled = req.SpotlightEnabled
		if *req.SpotlightEnabled {
			plan.update.SpotlightFeaturedAt = &now
		} else {
			plan.update.ClearFeaturedAt = true
		}
		plan.oldValue["spotlight_enabled"] = app.SpotlightEnabled
		plan.newValue["spotlight_enabled"] = *req.SpotlightEnabled
	}
	if req.SpotlightOrder != nil {
		plan.update.SpotlightOrder = req.SpotlightOrder
	}

	return plan
}
