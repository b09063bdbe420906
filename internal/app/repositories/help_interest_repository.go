package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edufund/scholarhub/internal/app/models"
	"github.com/edufund/scholarhub/internal/app/models/dto"
	"github.com/edufund/scholarhub/internal/pkg/apperrors"
	"github.com/edufund/scholarhub/internal/pkg/helpers"
	"github.com/edufund/scholarhub/internal/pkg/logger"
)

// HelpInterestUpdate carries the fields an admin may change on a help
// interest. Nil fields are left untouched.
type HelpInterestUpdate struct {
	Status       *string
	FollowedUpBy *int64
	FollowedUpAt *time.Time
}

// HelpInterestRepository handles help interest database operations
type HelpInterestRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewHelpInterestRepository creates a new HelpInterestRepository
func NewHelpInterestRepository(db *pgxpool.Pool) *HelpInterestRepository {
	return &HelpInterestRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var helpInterestColumns = []string{
	"id", "full_name", "email", "phone", "help_type", "message",
	"spotlight_application_id", "status", "followed_up_by", "followed_up_at",
	"created_at", "updated_at",
}

func scanHelpInterest(row pgx.Row, extra ...interface{}) (*models.HelpInterest, error) {
	var h models.HelpInterest
	dest := []interface{}{
		&h.ID, &h.FullName, &h.Email, &h.Phone, &h.HelpType, &h.Message,
		&h.SpotlightApplicationID, &h.Status, &h.FollowedUpBy, &h.FollowedUpAt,
		&h.CreatedAt, &h.UpdatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHelpInterestNotFound
		}
		return nil, err
	}
	return &h, nil
}

// CreateHelpInterest inserts a new help interest lead and returns its ID
func (r *HelpInterestRepository) CreateHelpInterest(ctx context.Context, interest *models.HelpInterest) (int64, error) {
	sql, args, err := r.sb.Insert("help_interests").
		Columns("full_name", "email", "phone", "help_type", "message", "spotlight_application_id", "status").
		Values(interest.FullName, interest.Email, interest.Phone, interest.HelpType, interest.Message, interest.SpotlightApplicationID, interest.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create help interest SQL")
		return 0, fmt.Errorf("failed to build create help interest query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create help interest query")
		return 0, fmt.Errorf("error creating help interest: %w", err)
	}

	return id, nil
}

// GetHelpInterestByID retrieves a help interest by ID
func (r *HelpInterestRepository) GetHelpInterestByID(ctx context.Context, id int64) (*models.HelpInterest, error) {
	sql, args, err := r.sb.Select(helpInterestColumns...).
		From("help_interests").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get help interest by ID SQL")
		return nil, err
	}

	return scanHelpInterest(r.db.QueryRow(ctx, sql, args...))
}

// GetAllHelpInterests retrieves a filtered, paginated lead list for admins
func (r *HelpInterestRepository) GetAllHelpInterests(ctx context.Context, filter *dto.HelpInterestFilterRequest) ([]*models.HelpInterest, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)

	cols := append(append([]string{}, helpInterestColumns...), "COUNT(*) OVER() AS total_count")
	builder := r.sb.Select(cols...).
		From("help_interests").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(offset)

	if filter.Status != nil && *filter.Status != "" {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.HelpType != nil && *filter.HelpType != "" {
		builder = builder.Where(squirrel.Eq{"help_type": *filter.HelpType})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list help interests SQL")
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list help interests query")
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing help interests: %w", err)
	}
	defer rows.Close()

	var interests []*models.HelpInterest
	var total int64
	for rows.Next() {
		interest, err := scanHelpInterest(rows, &total)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		interests = append(interests, interest)
	}
	if err := rows.Err(); err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return interests, helpers.NewPaginationInfo(total, filter.Page, limit), nil
}

// UpdateFields applies an admin update. Nil fields are skipped.
func (r *HelpInterestRepository) UpdateFields(ctx context.Context, id int64, update *HelpInterestUpdate) error {
	builder := r.sb.Update("help_interests").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}
	if update.FollowedUpBy != nil {
		builder = builder.Set("followed_up_by", *update.FollowedUpBy)
	}
	if update.FollowedUpAt != nil {
		builder = builder.Set("followed_up_at", *update.FollowedUpAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update help interest SQL")
		return fmt.Errorf("failed to build update help interest query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("helpInterestID", id).Msg("Error executing update help interest query")
		return fmt.Errorf("error updating help interest: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrHelpInterestNotFound
	}
	return nil
}
