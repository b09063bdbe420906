package services

import (
	"context"
	"time"

	"github.com/edufund/scholarhub/internal/app/models"
	"github.com/edufund/scholarhub/internal/app/models/dto"
	"github.com/edufund/scholarhub/internal/app/repositories"
	"github.com/edufund/scholarhub/internal/app/review"
	"github.com/edufund/scholarhub/internal/pkg/logger"
)

// ActivityLogService defines the interface for the admin audit trail
type ActivityLogService interface {
	// Record appends an audit entry asynchronously. It never blocks the
	// calling mutation and never surfaces an error; insert failures are
	// logged and dropped.
	Record(adminID int64, action review.ActionType, entity review.EntityType, entityID string, oldValue, newValue interface{})
	GetLogs(ctx context.Context, filter *dto.ActivityLogFilterRequest) (*dto.PaginatedResponse, error)
}

// activityLogServiceImpl implements ActivityLogService
type activityLogServiceImpl struct {
	logRepo *repositories.ActivityLogRepository
}

// NewActivityLogService creates a new ActivityLogService
func NewActivityLogService(logRepo *repositories.ActivityLogRepository) ActivityLogService {
	return &activityLogServiceImpl{logRepo: logRepo}
}

// Record appends an audit entry without blocking the caller
func (s *activityLogServiceImpl) Record(adminID int64, action review.ActionType, entity review.EntityType, entityID string, oldValue, newValue interface{}) {
	entry := &models.ActivityLog{
		AdminID:    adminID,
		ActionType: string(action),
		EntityType: string(entity),
		EntityID:   entityID,
		OldValue:   oldValue,
		NewValue:   newValue,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.logRepo.InsertLog(ctx, entry); err != nil {
			logger.Error().Err(err).
				Int64("adminID", adminID).
				Str("actionType", string(action)).
				Str("entityType", string(entity)).
				Str("entityID", entityID).
				Msg("Failed to record admin activity")
		}
	}()
}

// GetLogs retrieves a filtered audit trail page
func (s *activityLogServiceImpl) GetLogs(ctx context.Context, filter *dto.ActivityLogFilterRequest) (*dto.PaginatedResponse, error) {
	logs, pagination, err := s.logRepo.GetLogs(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ActivityLogResponse, 0, len(logs))
	for _, entry := range logs {
		items = append(items, dto.ActivityLogResponse{
			ID:         entry.ID,
			AdminID:    entry.AdminID,
			AdminName:  entry.AdminName,
			AdminEmail: entry.AdminEmail,
			ActionType: entry.ActionType,
			EntityType: entry.EntityType,
			EntityID:   entry.EntityID,
			OldValue:   entry.OldValue,
			NewValue:   entry.NewValue,
			CreatedAt:  entry.CreatedAt,
		})
	}

	return &dto.PaginatedResponse{
		Items:          items,
		PaginationInfo: pagination,
	}, nil
}
