package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edufund/scholarhub/internal/app/models"
	"github.com/edufund/scholarhub/internal/pkg/apperrors"
	"github.com/edufund/scholarhub/internal/pkg/logger"
)

// DocumentRepository handles uploaded document metadata for one owning table.
// Scholarship and spotlight documents live in parallel tables with the same
// shape, so one repository type covers both, parameterized by table and
// owner column.
type DocumentRepository struct {
	db       *pgxpool.Pool
	sb       squirrel.StatementBuilderType
	table    string
	ownerCol string
}

// NewApplicationDocumentRepository creates a repository over application_documents
func NewApplicationDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return newDocumentRepository(db, "application_documents", "application_id")
}

// NewSpotlightDocumentRepository creates a repository over spotlight_documents
func NewSpotlightDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return newDocumentRepository(db, "spotlight_documents", "spotlight_application_id")
}

func newDocumentRepository(db *pgxpool.Pool, table, ownerCol string) *DocumentRepository {
	return &DocumentRepository{
		db:       db,
		sb:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		table:    table,
		ownerCol: ownerCol,
	}
}

func (r *DocumentRepository) columns() []string {
	return []string{"id", r.ownerCol, "document_type", "storage_path", "file_name", "file_size", "mime_type", "uploaded_at"}
}

func scanDocument(row pgx.Row) (*models.Document, error) {
	var d models.Document
	err := row.Scan(
		&d.ID, &d.OwnerID, &d.DocumentType, &d.StoragePath,
		&d.FileName, &d.FileSize, &d.MimeType, &d.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, err
	}
	return &d, nil
}

// GetByOwnerAndType returns the current document for one (owner, type) pair
func (r *DocumentRepository) GetByOwnerAndType(ctx context.Context, ownerID int64, documentType string) (*models.Document, error) {
	sql, args, err := r.sb.Select(r.columns()...).
		From(r.table).
		Where(squirrel.Eq{r.ownerCol: ownerID, "document_type": documentType}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error building get document SQL")
		return nil, err
	}

	return scanDocument(r.db.QueryRow(ctx, sql, args...))
}

// InsertDocument records a newly uploaded document and returns its ID
func (r *DocumentRepository) InsertDocument(ctx context.Context, doc *models.Document) (int64, error) {
	sql, args, err := r.sb.Insert(r.table).
		Columns(r.ownerCol, "document_type", "storage_path", "file_name", "file_size", "mime_type").
		Values(doc.OwnerID, doc.DocumentType, doc.StoragePath, doc.FileName, doc.FileSize, doc.MimeType).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error building insert document SQL")
		return 0, fmt.Errorf("failed to build insert document query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Int64("ownerID", doc.OwnerID).Msg("Error executing insert document query")
		return 0, fmt.Errorf("error inserting document: %w", err)
	}
	return id, nil
}

// ReplaceDocument supersedes an existing row in place after a re-upload.
// The row keeps its ID; path, file metadata and upload time are rewritten.
func (r *DocumentRepository) ReplaceDocument(ctx context.Context, id int64, doc *models.Document) error {
	sql, args, err := r.sb.Update(r.table).
		Set("storage_path", doc.StoragePath).
		Set("file_name", doc.FileName).
		Set("file_size", doc.FileSize).
		Set("mime_type", doc.MimeType).
		Set("uploaded_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error building replace document SQL")
		return fmt.Errorf("failed to build replace document query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Int64("documentID", id).Msg("Error executing replace document query")
		return fmt.Errorf("error replacing document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDocumentNotFound
	}
	return nil
}

// GetByOwner returns all documents for one owning application
func (r *DocumentRepository) GetByOwner(ctx context.Context, ownerID int64) ([]*models.Document, error) {
	sql, args, err := r.sb.Select(r.columns()...).
		From(r.table).
		Where(squirrel.Eq{r.ownerCol: ownerID}).
		OrderBy("document_type ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error building list documents SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error executing list documents query")
		return nil, fmt.Errorf("error listing documents: %w", err)
	}
	defer rows.Close()

	var docs []*models.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}
