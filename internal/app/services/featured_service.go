package services

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/edufund/scholarhub/internal/app/models"
	"github.com/edufund/scholarhub/internal/app/models/dto"
	"github.com/edufund/scholarhub/internal/app/repositories"
	"github.com/edufund/scholarhub/internal/app/review"
	"github.com/edufund/scholarhub/internal/pkg/apperrors"
	"github.com/edufund/scholarhub/internal/pkg/logger"
)

// FeaturedService merges the two featured-student sources into the single
// public list and handles admin curation of that list.
type FeaturedService interface {
	ListFeatured(ctx context.Context) ([]dto.FeaturedStudentResponse, error)
	Toggle(ctx context.Context, adminID int64, req *dto.ToggleFeaturedRequest) error
	Reorder(ctx context.Context, adminID int64, req *dto.ReorderFeaturedRequest) error
}

// featuredServiceImpl implements FeaturedService
type featuredServiceImpl struct {
	appRepo     *repositories.ApplicationRepository
	spotRepo    *repositories.SpotlightRepository
	activityLog ActivityLogService
}

// NewFeaturedService creates a new FeaturedService
func NewFeaturedService(
	appRepo *repositories.ApplicationRepository,
	spotRepo *repositories.SpotlightRepository,
	activityLog ActivityLogService,
) FeaturedService {
	return &featuredServiceImpl{
		appRepo:     appRepo,
		spotRepo:    spotRepo,
		activityLog: activityLog,
	}
}

// ListFeatured returns the public featured students list. Spotlight-enabled
// scholarship applications and featured spotlight applications are mapped to
// a common shape, tagged with their source, and merged into one list ordered
// by display order ascending with unordered entries last. The sort is stable
// so equal orders keep their source ordering.
func (s *featuredServiceImpl) ListFeatured(ctx context.Context) ([]dto.FeaturedStudentResponse, error) {
	apps, err := s.appRepo.GetSpotlightEnabled(ctx)
	if err != nil {
		return nil, err
	}
	spots, err := s.spotRepo.GetFeatured(ctx)
	if err != nil {
		return nil, err
	}

	merged := make([]dto.FeaturedStudentResponse, 0, len(apps)+len(spots))
	for _, app := range apps {
		merged = append(merged, dto.FeaturedStudentResponse{
			ID:         app.ID,
			DisplayID:  app.ApplicationID,
			Source:     dto.FeaturedSourceScholarship,
			FullName:   app.FullName,
			Email:      app.Email,
			Story:      app.Story,
			AnnualNeed: app.AnnualNeed,
			IsFeatured: app.SpotlightEnabled,
			Status:     app.Status,
			PhotoURL:   app.PhotoURL,
			Order:      app.SpotlightOrder,
			FeaturedAt: app.SpotlightFeaturedAt,
		})
	}
	for _, spot := range spots {
		merged = append(merged, dto.FeaturedStudentResponse{
			ID:         spot.ID,
			DisplayID:  spot.SpotlightID,
			Source:     dto.FeaturedSourceSpotlight,
			FullName:   spot.FullName,
			Email:      spot.Email,
			Story:      spot.Story,
			AnnualNeed: spot.AnnualNeed,
			IsFeatured: spot.IsFeatured,
			Status:     spot.Status,
			PhotoURL:   spot.PhotoURL,
			Order:      spot.FeaturedOrder,
			FeaturedAt: spot.FeaturedAt,
		})
	}

	sortFeaturedList(merged)

	return merged, nil
}

// sortFeaturedList orders by display order ascending with unordered entries
// last. Stable, so equal orders keep their source ordering.
func sortFeaturedList(merged []dto.FeaturedStudentResponse) {
	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i].Order, merged[j].Order
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
}

// Toggle marks one record as featured or unfeatured. Featuring stamps the
// featured time; unfeaturing clears it. The change is recorded on the audit
// trail without blocking the response.
func (s *featuredServiceImpl) Toggle(ctx context.Context, adminID int64, req *dto.ToggleFeaturedRequest) error {
	featured := *req.Featured

	var entity review.EntityType
	var displayID string
	var wasFeatured bool

	switch req.Source {
	case dto.FeaturedSourceScholarship:
		app, err := s.appRepo.GetApplicationByID(ctx, req.ID)
		if err != nil {
			return err
		}
		entity = review.EntityApplication
		displayID = app.ApplicationID
		wasFeatured = app.SpotlightEnabled

		update := &repositories.ApplicationReviewUpdate{SpotlightEnabled: &featured}
		if featured {
			now := time.Now()
			update.SpotlightFeaturedAt = &now
		} else {
			update.ClearFeaturedAt = true
		}
		if err := s.appRepo.UpdateReviewFields(ctx, req.ID, update); err != nil {
			return err
		}

	case dto.FeaturedSourceSpotlight:
		spot, err := s.spotRepo.GetSpotlightByID(ctx, req.ID)
		if err != nil {
			return err
		}
		entity = review.EntitySpotlightApplication
		displayID = spot.SpotlightID
		wasFeatured = spot.IsFeatured

		update := &repositories.SpotlightReviewUpdate{IsFeatured: &featured}
		if featured {
			now := time.Now()
			update.FeaturedAt = &now
		} else {
			update.ClearFeaturedAt = true
		}
		if err := s.spotRepo.UpdateReviewFields(ctx, req.ID, update); err != nil {
			return err
		}

	default:
		return apperrors.ErrUnknownFeaturedSource
	}

	s.activityLog.Record(adminID, review.ActionFeaturedChange, entity, displayID,
		map[string]interface{}{"is_featured": wasFeatured},
		map[string]interface{}{"is_featured": featured},
	)
	return nil
}

// Reorder rewrites the display order of the featured list. Updates run
// concurrently and are not atomic: if any single update fails the request
// fails, but updates that already finished stay applied. One batch audit
// entry covers the whole request.
func (s *featuredServiceImpl) Reorder(ctx context.Context, adminID int64, req *dto.ReorderFeaturedRequest) error {
	for _, item := range req.Items {
		if item.Source != dto.FeaturedSourceScholarship && item.Source != dto.FeaturedSourceSpotlight {
			return apperrors.ErrUnknownFeaturedSource
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, item := range req.Items {
		item := item
		g.Go(func() error {
			switch item.Source {
			case dto.FeaturedSourceScholarship:
				return s.appRepo.SetSpotlightOrder(gctx, item.ID, item.Order)
			default:
				return s.spotRepo.SetFeaturedOrder(gctx, item.ID, item.Order)
			}
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Int("items", len(req.Items)).Msg("Featured reorder batch failed")
		return apperrors.NewCustomError(apperrors.ErrPartialReorderFailure, "").
			WithDetails(map[string]interface{}{"cause": err.Error()})
	}

	s.activityLog.Record(adminID, review.ActionSpotlightReorder, review.EntityFeaturedStudents,
		models.BatchEntityID, nil, map[string]interface{}{"items": req.Items})
	return nil
}
