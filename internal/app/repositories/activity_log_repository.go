package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edufund/scholarhub/internal/app/models"
	"github.com/edufund/scholarhub/internal/app/models/dto"
	"github.com/edufund/scholarhub/internal/pkg/helpers"
	"github.com/edufund/scholarhub/internal/pkg/logger"
)

// ActivityLogRepository handles the append-only admin audit trail
type ActivityLogRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewActivityLogRepository creates a new ActivityLogRepository
func NewActivityLogRepository(db *pgxpool.Pool) *ActivityLogRepository {
	return &ActivityLogRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// InsertLog appends one audit entry. Old and new values are stored as jsonb;
// a nil value is stored as SQL NULL.
func (r *ActivityLogRepository) InsertLog(ctx context.Context, entry *models.ActivityLog) error {
	oldJSON, err := marshalValue(entry.OldValue)
	if err != nil {
		return fmt.Errorf("failed to marshal old value: %w", err)
	}
	newJSON, err := marshalValue(entry.NewValue)
	if err != nil {
		return fmt.Errorf("failed to marshal new value: %w", err)
	}

	sql, args, err := r.sb.Insert("admin_activity_log").
		Columns("admin_id", "action_type", "entity_type", "entity_id", "old_value", "new_value").
		Values(entry.AdminID, entry.ActionType, entry.EntityType, entry.EntityID, oldJSON, newJSON).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building insert activity log SQL")
		return fmt.Errorf("failed to build insert activity log query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).
			Int64("adminID", entry.AdminID).
			Str("entityType", entry.EntityType).
			Str("entityID", entry.EntityID).
			Msg("Error executing insert activity log query")
		return fmt.Errorf("error inserting activity log: %w", err)
	}
	return nil
}

func marshalValue(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

// GetLogs retrieves a filtered audit trail page, newest first, with the acting
// admin's name and email joined in.
func (r *ActivityLogRepository) GetLogs(ctx context.Context, filter *dto.ActivityLogFilterRequest) ([]*models.ActivityLog, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)

	builder := r.sb.Select(
		"l.id", "l.admin_id", "l.action_type", "l.entity_type", "l.entity_id",
		"l.old_value", "l.new_value", "l.created_at",
		"u.first_name", "u.last_name", "u.email",
		"COUNT(*) OVER() AS total_count",
	).
		From("admin_activity_log l").
		Join("users u ON l.admin_id = u.id").
		OrderBy("l.created_at DESC", "l.id DESC").
		Limit(uint64(limit)).
		Offset(offset)

	if filter.AdminID != nil {
		builder = builder.Where(squirrel.Eq{"l.admin_id": *filter.AdminID})
	}
	if filter.EntityType != nil && *filter.EntityType != "" {
		builder = builder.Where(squirrel.Eq{"l.entity_type": *filter.EntityType})
	}
	if filter.ActionType != nil && *filter.ActionType != "" {
		builder = builder.Where(squirrel.Eq{"l.action_type": *filter.ActionType})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list activity logs SQL")
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list activity logs query")
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing activity logs: %w", err)
	}
	defer rows.Close()

	var logs []*models.ActivityLog
	var total int64
	for rows.Next() {
		var entry models.ActivityLog
		var oldJSON, newJSON []byte
		var firstName, lastName string
		err := rows.Scan(
			&entry.ID, &entry.AdminID, &entry.ActionType, &entry.EntityType, &entry.EntityID,
			&oldJSON, &newJSON, &entry.CreatedAt,
			&firstName, &lastName, &entry.AdminEmail,
			&total,
		)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		entry.AdminName = firstName + " " + lastName
		if len(oldJSON) > 0 {
			var v interface{}
			if err := json.Unmarshal(oldJSON, &v); err == nil {
				entry.OldValue = v
			}
		}
		if len(newJSON) > 0 {
			var v interface{}
			if err := json.Unmarshal(newJSON, &v); err == nil {
				entry.NewValue = v
			}
		}
		logs = append(logs, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return logs, helpers.NewPaginationInfo(total, filter.Page, limit), nil
}
