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

// DonationReviewUpdate carries the fields an admin may change on a donation.
// Nil fields are left untouched.
type DonationReviewUpdate struct {
	Status               *string
	Notes                *string
	TransactionReference *string
	ConfirmedBy          *int64
	ConfirmedAt          *time.Time
}

// DonationRepository handles donation database operations
type DonationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDonationRepository creates a new DonationRepository
func NewDonationRepository(db *pgxpool.Pool) *DonationRepository {
	return &DonationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var donationColumns = []string{
	"id", "donation_id", "donor_name", "donor_email", "donor_phone",
	"amount", "currency", "status", "confirmed_by", "confirmed_at",
	"notes", "transaction_reference", "created_at", "updated_at",
}

func scanDonation(row pgx.Row, extra ...interface{}) (*models.Donation, error) {
	var d models.Donation
	dest := []interface{}{
		&d.ID, &d.DonationID, &d.DonorName, &d.DonorEmail, &d.DonorPhone,
		&d.Amount, &d.Currency, &d.Status, &d.ConfirmedBy, &d.ConfirmedAt,
		&d.Notes, &d.TransactionReference, &d.CreatedAt, &d.UpdatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDonationNotFound
		}
		return nil, err
	}
	return &d, nil
}

// CreateDonation inserts a new donation pledge. The identifier comes from
// generate_donation_id(); a timestamp identifier is used when the function
// is missing.
func (r *DonationRepository) CreateDonation(ctx context.Context, donation *models.Donation) (*models.Donation, error) {
	created, err := r.insertDonation(ctx, donation, squirrel.Expr("generate_donation_id()"))
	if err != nil && dberrors.IsUndefinedFunction(err) {
		logger.Warn().Msg("generate_donation_id() missing, falling back to timestamp identifier")
		created, err = r.insertDonation(ctx, donation, helpers.FallbackID(helpers.DonationIDPrefix))
	}
	return created, err
}

func (r *DonationRepository) insertDonation(ctx context.Context, donation *models.Donation, identifier interface{}) (*models.Donation, error) {
	sql, args, err := r.sb.Insert("donations").
		Columns("donation_id", "donor_name", "donor_email", "donor_phone", "amount", "currency", "status", "notes").
		Values(identifier, donation.DonorName, donation.DonorEmail, donation.DonorPhone, donation.Amount, donation.Currency, donation.Status, donation.Notes).
		Suffix("RETURNING id, donation_id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create donation SQL")
		return nil, fmt.Errorf("failed to build create donation query: %w", err)
	}

	created := *donation
	err = r.db.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.DonationID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetDonationByID retrieves a donation by its numeric ID
func (r *DonationRepository) GetDonationByID(ctx context.Context, id int64) (*models.Donation, error) {
	sql, args, err := r.sb.Select(donationColumns...).
		From("donations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get donation by ID SQL")
		return nil, err
	}

	return scanDonation(r.db.QueryRow(ctx, sql, args...))
}

// GetAllDonations retrieves a filtered, paginated donation list for admins
func (r *DonationRepository) GetAllDonations(ctx context.Context, filter *dto.DonationFilterRequest) ([]*models.Donation, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)

	cols := append(append([]string{}, donationColumns...), "COUNT(*) OVER() AS total_count")
	builder := r.sb.Select(cols...).
		From("donations").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(offset)

	if filter.Status != nil && *filter.Status != "" {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list donations SQL")
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list donations query")
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing donations: %w", err)
	}
	defer rows.Close()

	var donations []*models.Donation
	var total int64
	for rows.Next() {
		donation, err := scanDonation(rows, &total)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		donations = append(donations, donation)
	}
	if err := rows.Err(); err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return donations, helpers.NewPaginationInfo(total, filter.Page, limit), nil
}

// UpdateReviewFields applies an admin update. Nil fields are skipped.
func (r *DonationRepository) UpdateReviewFields(ctx context.Context, id int64, update *DonationReviewUpdate) error {
	builder := r.sb.Update("donations").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}
	if update.Notes != nil {
		builder = builder.Set("notes", *update.Notes)
	}
	if update.TransactionReference != nil {
		builder = builder.Set("transaction_reference", *update.TransactionReference)
	}
	if update.ConfirmedBy != nil {
		builder = builder.Set("confirmed_by", *update.ConfirmedBy)
	}
	if update.ConfirmedAt != nil {
		builder = builder.Set("confirmed_at", *update.ConfirmedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update donation SQL")
		return fmt.Errorf("failed to build update donation query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("donationID", id).Msg("Error executing update donation query")
		return fmt.Errorf("error updating donation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDonationNotFound
	}
	return nil
}
