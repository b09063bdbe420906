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
	"github.com/edufund/scholarhub/internal/pkg/dberrors"
	"github.com/edufund/scholarhub/internal/pkg/helpers"
	"github.com/edufund/scholarhub/internal/pkg/logger"
)

// SpotlightReviewUpdate carries the review fields an admin may change on a
// spotlight application. Nil fields are left untouched.
type SpotlightReviewUpdate struct {
	Status          *string
	ReviewerNotes   *string
	ReviewedBy      *int64
	ReviewedAt      *time.Time
	IsFeatured      *bool
	FeaturedOrder   *int
	FeaturedAt      *time.Time
	ClearFeaturedAt bool
}

// SpotlightRepository handles spotlight application database operations
type SpotlightRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSpotlightRepository creates a new SpotlightRepository
func NewSpotlightRepository(db *pgxpool.Pool) *SpotlightRepository {
	return &SpotlightRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var spotlightColumns = []string{
	"id", "spotlight_id", "student_id", "full_name", "email", "phone",
	"story", "annual_need", "status", "reviewer_notes", "reviewed_by",
	"reviewed_at", "is_featured", "featured_order", "featured_at",
	"photo_url", "created_at", "updated_at",
}

func scanSpotlight(row pgx.Row, extra ...interface{}) (*models.SpotlightApplication, error) {
	var s models.SpotlightApplication
	dest := []interface{}{
		&s.ID, &s.SpotlightID, &s.StudentID, &s.FullName, &s.Email, &s.Phone,
		&s.Story, &s.AnnualNeed, &s.Status, &s.ReviewerNotes, &s.ReviewedBy,
		&s.ReviewedAt, &s.IsFeatured, &s.FeaturedOrder, &s.FeaturedAt,
		&s.PhotoURL, &s.CreatedAt, &s.UpdatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSpotlightNotFound
		}
		return nil, err
	}
	return &s, nil
}

// CreateSpotlight inserts a new spotlight application. The identifier comes
// from generate_spotlight_id(); a timestamp identifier is used when the
// function is missing.
func (r *SpotlightRepository) CreateSpotlight(ctx context.Context, spot *models.SpotlightApplication) (*models.SpotlightApplication, error) {
	created, err := r.insertSpotlight(ctx, spot, squirrel.Expr("generate_spotlight_id()"))
	if err != nil && dberrors.IsUndefinedFunction(err) {
		logger.Warn().Msg("generate_spotlight_id() missing, falling back to timestamp identifier")
		created, err = r.insertSpotlight(ctx, spot, helpers.FallbackID(helpers.SpotlightIDPrefix))
	}
	return created, err
}

func (r *SpotlightRepository) insertSpotlight(ctx context.Context, spot *models.SpotlightApplication, identifier interface{}) (*models.SpotlightApplication, error) {
	sql, args, err := r.sb.Insert("spotlight_applications").
		Columns("spotlight_id", "student_id", "full_name", "email", "phone", "story", "annual_need", "status").
		Values(identifier, spot.StudentID, spot.FullName, spot.Email, spot.Phone, spot.Story, spot.AnnualNeed, spot.Status).
		Suffix("RETURNING id, spotlight_id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create spotlight SQL")
		return nil, fmt.Errorf("failed to build create spotlight query: %w", err)
	}

	created := *spot
	err = r.db.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.SpotlightID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetSpotlightByID retrieves a spotlight application by its numeric ID
func (r *SpotlightRepository) GetSpotlightByID(ctx context.Context, id int64) (*models.SpotlightApplication, error) {
	sql, args, err := r.sb.Select(spotlightColumns...).
		From("spotlight_applications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get spotlight by ID SQL")
		return nil, err
	}

	return scanSpotlight(r.db.QueryRow(ctx, sql, args...))
}

// GetSpotlightsByStudent retrieves a student's spotlight applications, newest first
func (r *SpotlightRepository) GetSpotlightsByStudent(ctx context.Context, studentID int64, page, size int) ([]*models.SpotlightApplication, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	cols := append(append([]string{}, spotlightColumns...), "COUNT(*) OVER() AS total_count")
	sql, args, err := r.sb.Select(cols...).
		From("spotlight_applications").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list spotlights by student SQL")
		return nil, dto.PaginationInfo{}, err
	}

	return r.querySpotlights(ctx, sql, args, page, limit)
}

// GetAllSpotlights retrieves a filtered, paginated spotlight list for admins
func (r *SpotlightRepository) GetAllSpotlights(ctx context.Context, filter *dto.SpotlightFilterRequest) ([]*models.SpotlightApplication, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)

	cols := append(append([]string{}, spotlightColumns...), "COUNT(*) OVER() AS total_count")
	builder := r.sb.Select(cols...).
		From("spotlight_applications").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(offset)

	if filter.Status != nil && *filter.Status != "" {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Featured != nil {
		builder = builder.Where(squirrel.Eq{"is_featured": *filter.Featured})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list spotlights SQL")
		return nil, dto.PaginationInfo{}, err
	}

	return r.querySpotlights(ctx, sql, args, filter.Page, limit)
}

func (r *SpotlightRepository) querySpotlights(ctx context.Context, sql string, args []interface{}, page, limit int) ([]*models.SpotlightApplication, dto.PaginationInfo, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list spotlights query")
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing spotlight applications: %w", err)
	}
	defer rows.Close()

	var spots []*models.SpotlightApplication
	var total int64
	for rows.Next() {
		spot, err := scanSpotlight(rows, &total)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		spots = append(spots, spot)
	}
	if err := rows.Err(); err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return spots, helpers.NewPaginationInfo(total, page, limit), nil
}

// FindActiveForStudent returns the identifier of the student's spotlight
// application still in one of the given statuses, if any.
func (r *SpotlightRepository) FindActiveForStudent(ctx context.Context, studentID int64, activeStatuses []string) (string, bool, error) {
	sql, args, err := r.sb.Select("spotlight_id").
		From("spotlight_applications").
		Where(squirrel.Eq{"student_id": studentID, "status": activeStatuses}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return "", false, err
	}

	var spotlightID string
	err = r.db.QueryRow(ctx, sql, args...).Scan(&spotlightID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error checking active spotlight")
		return "", false, err
	}
	return spotlightID, true, nil
}

// UpdateReviewFields applies an admin review update. Nil fields are skipped.
func (r *SpotlightRepository) UpdateReviewFields(ctx context.Context, id int64, update *SpotlightReviewUpdate) error {
	builder := r.sb.Update("spotlight_applications").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}
	if update.ReviewerNotes != nil {
		builder = builder.Set("reviewer_notes", *update.ReviewerNotes)
	}
	if update.ReviewedBy != nil {
		builder = builder.Set("reviewed_by", *update.ReviewedBy)
	}
	if update.ReviewedAt != nil {
		builder = builder.Set("reviewed_at", *update.ReviewedAt)
	}
	if update.IsFeatured != nil {
		builder = builder.Set("is_featured", *update.IsFeatured)
	}
	if update.FeaturedOrder != nil {
		builder = builder.Set("featured_order", *update.FeaturedOrder)
	}
	if update.FeaturedAt != nil {
		builder = builder.Set("featured_at", *update.FeaturedAt)
	} else if update.ClearFeaturedAt {
		builder = builder.Set("featured_at", nil)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update spotlight review SQL")
		return fmt.Errorf("failed to build update spotlight review query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("spotlightID", id).Msg("Error executing update spotlight review query")
		return fmt.Errorf("error updating spotlight review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSpotlightNotFound
	}
	return nil
}

// UpdateStudentFields applies a student's resubmission edit and moves the
// spotlight application back into review. Nil fields are skipped.
func (r *SpotlightRepository) UpdateStudentFields(ctx context.Context, id int64, req *dto.StudentUpdateSpotlightRequest, newStatus string) error {
	builder := r.sb.Update("spotlight_applications").
		Set("status", newStatus).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if req.FullName != nil {
		builder = builder.Set("full_name", *req.FullName)
	}
	if req.Email != nil {
		builder = builder.Set("email", *req.Email)
	}
	if req.Phone != nil {
		builder = builder.Set("phone", *req.Phone)
	}
	if req.Story != nil {
		builder = builder.Set("story", *req.Story)
	}
	if req.AnnualNeed != nil {
		builder = builder.Set("annual_need", *req.AnnualNeed)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building student update spotlight SQL")
		return fmt.Errorf("failed to build student update spotlight query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("spotlightID", id).Msg("Error executing student update spotlight query")
		return fmt.Errorf("error updating spotlight application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSpotlightNotFound
	}
	return nil
}

// GetFeatured returns all spotlight applications currently featured
func (r *SpotlightRepository) GetFeatured(ctx context.Context) ([]*models.SpotlightApplication, error) {
	sql, args, err := r.sb.Select(spotlightColumns...).
		From("spotlight_applications").
		Where(squirrel.Eq{"is_featured": true}).
		OrderBy("featured_order ASC NULLS LAST", "id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing featured spotlights query")
		return nil, fmt.Errorf("error listing featured spotlights: %w", err)
	}
	defer rows.Close()

	var spots []*models.SpotlightApplication
	for rows.Next() {
		spot, err := scanSpotlight(rows)
		if err != nil {
			return nil, err
		}
		spots = append(spots, spot)
	}
	return spots, rows.Err()
}

// SetFeaturedOrder rewrites one spotlight application's position in the
// featured list
func (r *SpotlightRepository) SetFeaturedOrder(ctx context.Context, id int64, order int) error {
	sql, args, err := r.sb.Update("spotlight_applications").
		Set("featured_order", order).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("spotlightID", id).Msg("Error setting featured order")
		return fmt.Errorf("error setting featured order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSpotlightNotFound
	}
	return nil
}

// UpdatePhotoURL stores the denormalized signed photo URL
func (r *SpotlightRepository) UpdatePhotoURL(ctx context.Context, id int64, url string) error {
	sql, args, err := r.sb.Update("spotlight_applications").
		Set("photo_url", url).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("spotlightID", id).Msg("Error updating photo URL")
		return fmt.Errorf("error updating photo URL: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSpotlightNotFound
	}
	return nil
}
