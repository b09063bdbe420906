package services

import (
	"context"
	"strings"
	"time"

	"github.com/edufund/scholarhub/internal/app/models"
	"github.com/edufund/scholarhub/internal/app/models/dto"
	"github.com/edufund/scholarhub/internal/app/repositories"
	"github.com/edufund/scholarhub/internal/app/review"
	"github.com/edufund/scholarhub/internal/pkg/apperrors"
	"github.com/edufund/scholarhub/internal/pkg/logger"
)

// DefaultCurrency is applied when a donor omits the currency code
const DefaultCurrency = "USD"

// DonationService defines the interface for donation operations
type DonationService interface {
	Create(ctx context.Context, req *dto.CreateDonationRequest) (*dto.CreateDonationResponse, error)
	GetByID(ctx context.Context, id int64) (*models.Donation, error)
	List(ctx context.Context, filter *dto.DonationFilterRequest) (*dto.PaginatedResponse, error)
	AdminReview(ctx context.Context, adminID, id int64, req *dto.AdminReviewDonationRequest) (*models.Donation, error)
}

// donationServiceImpl implements DonationService
type donationServiceImpl struct {
	donationRepo *repositories.DonationRepository
	activityLog  ActivityLogService
}

// NewDonationService creates a new DonationService
func NewDonationService(donationRepo *repositories.DonationRepository, activityLog ActivityLogService) DonationService {
	return &donationServiceImpl{
		donationRepo: donationRepo,
		activityLog:  activityLog,
	}
}

// Create records a public donation pledge. No payment is processed here;
// the record starts pending and an admin confirms it out-of-band.
func (s *donationServiceImpl) Create(ctx context.Context, req *dto.CreateDonationRequest) (*dto.CreateDonationResponse, error) {
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	donation := &models.Donation{
		DonorName:  req.DonorName,
		DonorEmail: req.DonorEmail,
		DonorPhone: req.Phone,
		Amount:     req.Amount,
		Currency:   currency,
		Status:     review.DonationPending,
		Notes:      req.Message,
	}

	created, err := s.donationRepo.CreateDonation(ctx, donation)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("donationID", created.DonationID).
		Float64("amount", created.Amount).
		Str("currency", created.Currency).
		Msg("Donation pledge recorded")

	return &dto.CreateDonationResponse{
		DonationID: created.DonationID,
		Amount:     created.Amount,
		Currency:   created.Currency,
		Status:     created.Status,
	}, nil
}

// GetByID returns one donation (admin view)
func (s *donationServiceImpl) GetByID(ctx context.Context, id int64) (*models.Donation, error) {
	return s.donationRepo.GetDonationByID(ctx, id)
}

// List returns a filtered donation page (admin view)
func (s *donationServiceImpl) List(ctx context.Context, filter *dto.DonationFilterRequest) (*dto.PaginatedResponse, error) {
	donations, pagination, err := s.donationRepo.GetAllDonations(ctx, filter)
	if err != nil {
		return nil, err
	}
	if donations == nil {
		donations = []*models.Donation{}
	}
	return &dto.PaginatedResponse{Items: donations, PaginationInfo: pagination}, nil
}

// AdminReview applies an admin update to a donation. Moving into confirmed or
// completed stamps the confirming admin and time. The mutation is recorded on
// the audit trail without blocking the response.
func (s *donationServiceImpl) AdminReview(ctx context.Context, adminID, id int64, req *dto.AdminReviewDonationRequest) (*models.Donation, error) {
	donation, err := s.donationRepo.GetDonationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && !review.ValidStatus(review.EntityDonation, *req.Status) {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "unrecognized status value").
			WithDetails(map[string]interface{}{
				"status":  *req.Status,
				"allowed": review.Statuses(review.EntityDonation),
			})
	}

	plan := planDonationReview(donation, req, adminID, time.Now())

	if err := s.donationRepo.UpdateReviewFields(ctx, id, plan.update); err != nil {
		return nil, err
	}

	action := review.Classify(plan.statusChanged, false)
	s.activityLog.Record(adminID, action, review.EntityDonation, donation.DonationID,
		snapshotOrNil(plan.oldValue), snapshotOrNil(plan.newValue))

	return s.donationRepo.GetDonationByID(ctx, id)
}

// donationReviewPlan is the persisted update plus the audit snapshots
// derived from one admin review request.
type donationReviewPlan struct {
	update        *repositories.DonationReviewUpdate
	oldValue      map[string]interface{}
	newValue      map[string]interface{}
	statusChanged bool
}

// planDonationReview maps a review request onto the partial update and the
// before/after snapshots of every field it changes.
func planDonationReview(donation *models.Donation, req *dto.AdminReviewDonationRequest, adminID int64, now time.Time) donationReviewPlan {
	plan := donationReviewPlan{
		update:   &repositories.DonationReviewUpdate{},
		oldValue: map[string]interface{}{},
		newValue: map[string]interface{}{},
	}

	if stringChanged(req.Notes, donation.Notes) {
		plan.update.Notes = req.Notes
		plan.oldValue["notes"] = donation.Notes
		plan.newValue["notes"] = *req.Notes
	}
	if stringChanged(req.TransactionReference, donation.TransactionReference) {
		plan.update.TransactionReference = req.TransactionReference
		plan.oldValue["transaction_reference"] = donation.TransactionReference
		plan.newValue["transaction_reference"] = *req.TransactionReference
	}

	if req.Status != nil {
		plan.update.Status = req.Status
		if *req.Status != donation.Status {
			plan.statusChanged = true
			plan.oldValue["status"] = donation.Status
			plan.newValue["status"] = *req.Status
			if review.StampsConfirmer(*req.Status) {
				plan.update.ConfirmedBy = &adminID
				plan.update.ConfirmedAt = &now
			}
		}
	}

	return plan
}
