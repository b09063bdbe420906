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

// ApplicationReviewUpdate carries the review fields an admin may change.
// Nil fields are left untouched.
type ApplicationReviewUpdate struct {
	Status              *string
	ReviewerNotes       *string
	ReviewedBy          *int64
	ReviewedAt          *time.Time
	SpotlightEnabled    *bool
	SpotlightOrder      *int
	SpotlightFeaturedAt *time.Time
	ClearFeaturedAt     bool
}

// ApplicationRepository handles scholarship application database operations
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var applicationColumns = []string{
	"id", "application_id", "student_id", "application_type", "academic_year",
	"full_name", "email", "phone", "school_name", "field_of_study",
	"family_income", "bank_name", "bank_account", "story", "annual_need",
	"status", "reviewer_notes", "reviewed_by", "reviewed_at",
	"previous_application_id", "spotlight_enabled", "spotlight_order",
	"spotlight_featured_at", "photo_url", "created_at", "updated_at",
}

func scanApplication(row pgx.Row, extra ...interface{}) (*models.Application, error) {
	var a models.Application
	dest := []interface{}{
		&a.ID, &a.ApplicationID, &a.StudentID, &a.ApplicationType, &a.AcademicYear,
		&a.FullName, &a.Email, &a.Phone, &a.SchoolName, &a.FieldOfStudy,
		&a.FamilyIncome, &a.BankName, &a.BankAccount, &a.Story, &a.AnnualNeed,
		&a.Status, &a.ReviewerNotes, &a.ReviewedBy, &a.ReviewedAt,
		&a.PreviousApplicationID, &a.SpotlightEnabled, &a.SpotlightOrder,
		&a.SpotlightFeaturedAt, &a.PhotoURL, &a.CreatedAt, &a.UpdatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, err
	}
	return &a, nil
}

// CreateApplication inserts a new application. The human-readable identifier
// comes from the generate_application_id() database function; when the
// function is missing the insert is retried with a timestamp identifier.
func (r *ApplicationRepository) CreateApplication(ctx context.Context, app *models.Application) (*models.Application, error) {
	created, err := r.insertApplication(ctx, app, squirrel.Expr("generate_application_id()"))
	if err != nil && dberrors.IsUndefinedFunction(err) {
		logger.Warn().Msg("generate_application_id() missing, falling back to timestamp identifier")
		created, err = r.insertApplication(ctx, app, helpers.FallbackID(helpers.ApplicationIDPrefix))
	}
	return created, err
}

func (r *ApplicationRepository) insertApplication(ctx context.Context, app *models.Application, identifier interface{}) (*models.Application, error) {
	sql, args, err := r.sb.Insert("applications").
		Columns(
			"application_id", "student_id", "application_type", "academic_year",
			"full_name", "email", "phone", "school_name", "field_of_study",
			"family_income", "bank_name", "bank_account", "story", "annual_need",
			"status", "previous_application_id",
		).
		Values(
			identifier, app.StudentID, app.ApplicationType, app.AcademicYear,
			app.FullName, app.Email, app.Phone, app.SchoolName, app.FieldOfStudy,
			app.FamilyIncome, app.BankName, app.BankAccount, app.Story, app.AnnualNeed,
			app.Status, app.PreviousApplicationID,
		).
		Suffix("RETURNING id, application_id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create application SQL")
		return nil, fmt.Errorf("failed to build create application query: %w", err)
	}

	created := *app
	err = r.db.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.ApplicationID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetApplicationByID retrieves an application by its numeric ID
func (r *ApplicationRepository) GetApplicationByID(ctx context.Context, id int64) (*models.Application, error) {
	sql, args, err := r.sb.Select(applicationColumns...).
		From("applications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get application by ID SQL")
		return nil, err
	}

	return scanApplication(r.db.QueryRow(ctx, sql, args...))
}

// GetApplicationsByStudent retrieves a student's applications, newest first
func (r *ApplicationRepository) GetApplicationsByStudent(ctx context.Context, studentID int64, page, size int) ([]*models.Application, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	cols := append(append([]string{}, applicationColumns...), "COUNT(*) OVER() AS total_count")
	sql, args, err := r.sb.Select(cols...).
		From("applications").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list applications by student SQL")
		return nil, dto.PaginationInfo{}, err
	}

	return r.queryApplications(ctx, sql, args, page, limit)
}

// GetAllApplications retrieves a filtered, paginated application list for admins
func (r *ApplicationRepository) GetAllApplications(ctx context.Context, filter *dto.ApplicationFilterRequest) ([]*models.Application, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)

	cols := append(append([]string{}, applicationColumns...), "COUNT(*) OVER() AS total_count")
	builder := r.sb.Select(cols...).
		From("applications").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(offset)

	if filter.Status != nil && *filter.Status != "" {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.ApplicationType != nil && *filter.ApplicationType != "" {
		builder = builder.Where(squirrel.Eq{"application_type": *filter.ApplicationType})
	}
	if filter.AcademicYear != nil && *filter.AcademicYear != "" {
		builder = builder.Where(squirrel.Eq{"academic_year": *filter.AcademicYear})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list applications SQL")
		return nil, dto.PaginationInfo{}, err
	}

	return r.queryApplications(ctx, sql, args, filter.Page, limit)
}

func (r *ApplicationRepository) queryApplications(ctx context.Context, sql string, args []interface{}, page, limit int) ([]*models.Application, dto.PaginationInfo, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list applications query")
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var apps []*models.Application
	var total int64
	for rows.Next() {
		app, err := scanApplication(rows, &total)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return apps, helpers.NewPaginationInfo(total, page, limit), nil
}

// FindExistingForYear returns the human-readable identifier of the student's
// application for the given type and academic year, if one exists.
func (r *ApplicationRepository) FindExistingForYear(ctx context.Context, studentID int64, appType models.ApplicationType, academicYear string) (string, bool, error) {
	sql, args, err := r.sb.Select("application_id").
		From("applications").
		Where(squirrel.Eq{
			"student_id":       studentID,
			"application_type": appType,
			"academic_year":    academicYear,
		}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return "", false, err
	}

	var applicationID string
	err = r.db.QueryRow(ctx, sql, args...).Scan(&applicationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error checking existing application")
		return "", false, err
	}
	return applicationID, true, nil
}

// GetLatestApprovedFirstYear returns the student's latest approved first-year
// application by creation time, used to chain renewals.
func (r *ApplicationRepository) GetLatestApprovedFirstYear(ctx context.Context, studentID int64) (*models.Application, error) {
	sql, args, err := latestApprovedFirstYearQuery(r.sb, studentID).ToSql()
	if err != nil {
		return nil, err
	}

	return scanApplication(r.db.QueryRow(ctx, sql, args...))
}

// latestApprovedFirstYearQuery selects the newest approved first-year row by
// creation time.
func latestApprovedFirstYearQuery(sb squirrel.StatementBuilderType, studentID int64) squirrel.SelectBuilder {
	return sb.Select(applicationColumns...).
		From("applications").
		Where(squirrel.Eq{
			"student_id":       studentID,
			"application_type": models.ApplicationFirstYear,
			"status":           "approved",
		}).
		OrderBy("created_at DESC").
		Limit(1)
}

// UpdateReviewFields applies an admin review update. Nil fields are skipped.
func (r *ApplicationRepository) UpdateReviewFields(ctx context.Context, id int64, update *ApplicationReviewUpdate) error {
	builder := r.sb.Update("applications").
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
	if update.SpotlightEnabled != nil {
		builder = builder.Set("spotlight_enabled", *update.SpotlightEnabled)
	}
	if update.SpotlightOrder != nil {
		builder = builder.Set("spotlight_order", *update.SpotlightOrder)
	}
	if update.SpotlightFeaturedAt != nil {
		builder = builder.Set("spotlight_featured_at", *update.SpotlightFeaturedAt)
	} else if update.ClearFeaturedAt {
		builder = builder.Set("spotlight_featured_at", nil)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update application review SQL")
		return fmt.Errorf("failed to build update application review query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error executing update application review query")
		return fmt.Errorf("error updating application review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}

// UpdateStudentFields applies a student's resubmission edit and moves the
// application back into review. Nil fields are skipped.
func (r *ApplicationRepository) UpdateStudentFields(ctx context.Context, id int64, req *dto.StudentUpdateApplicationRequest, newStatus string) error {
	builder := r.sb.Update("applications").
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
	if req.SchoolName != nil {
		builder = builder.Set("school_name", *req.SchoolName)
	}
	if req.FieldOfStudy != nil {
		builder = builder.Set("field_of_study", *req.FieldOfStudy)
	}
	if req.FamilyIncome != nil {
		builder = builder.Set("family_income", *req.FamilyIncome)
	}
	if req.BankName != nil {
		builder = builder.Set("bank_name", *req.BankName)
	}
	if req.BankAccount != nil {
		builder = builder.Set("bank_account", *req.BankAccount)
	}
	if req.Story != nil {
		builder = builder.Set("story", *req.Story)
	}
	if req.AnnualNeed != nil {
		builder = builder.Set("annual_need", *req.AnnualNeed)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building student update application SQL")
		return fmt.Errorf("failed to build student update application query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error executing student update application query")
		return fmt.Errorf("error updating application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}

// GetSpotlightEnabled returns all applications currently marked for the
// public featured list.
func (r *ApplicationRepository) GetSpotlightEnabled(ctx context.Context) ([]*models.Application, error) {
	sql, args, err := r.sb.Select(applicationColumns...).
		From("applications").
		Where(squirrel.Eq{"spotlight_enabled": true}).
		OrderBy("spotlight_order ASC NULLS LAST", "id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing spotlight enabled query")
		return nil, fmt.Errorf("error listing spotlight enabled applications: %w", err)
	}
	defer rows.Close()

	var apps []*models.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// SetSpotlightOrder rewrites one application's position in the featured list
func (r *ApplicationRepository) SetSpotlightOrder(ctx context.Context, id int64, order int) error {
	sql, args, err := r.sb.Update("applications").
		Set("spotlight_order", order).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error setting spotlight order")
		return fmt.Errorf("error setting spotlight order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}

// UpdatePhotoURL stores the denormalized signed photo URL
func (r *ApplicationRepository) UpdatePhotoURL(ctx context.Context, id int64, url string) error {
	sql, args, err := r.sb.Update("applications").
		Set("photo_url", url).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error updating photo URL")
		return fmt.Errorf("error updating photo URL: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}
