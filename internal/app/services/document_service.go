package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/edufund/scholarhub/internal/app/auth"
	"github.com/edufund/scholarhub/internal/app/models"
	"github.com/edufund/scholarhub/internal/app/models/dto"
	"github.com/edufund/scholarhub/internal/app/repositories"
	"github.com/edufund/scholarhub/internal/pkg/apperrors"
	"github.com/edufund/scholarhub/internal/pkg/filestorage"
	"github.com/edufund/scholarhub/internal/pkg/logger"
)

// MaxDocumentSize is the upload size ceiling in bytes
const MaxDocumentSize = 10 << 20 // 10MB

// DocumentTypePhoto triggers the long-lived photo URL denormalization
const DocumentTypePhoto = "photo"

// allowedMimeTypes maps accepted MIME types to a fallback file extension
var allowedMimeTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

// applicationDocumentTypes is the allow-list for scholarship application uploads
var applicationDocumentTypes = map[string]struct{}{
	DocumentTypePhoto:  {},
	"transcript":       {},
	"national_id":      {},
	"enrollment_proof": {},
	"income_proof":     {},
	"bank_statement":   {},
}

// spotlightDocumentTypes is the allow-list for spotlight application uploads
var spotlightDocumentTypes = map[string]struct{}{
	DocumentTypePhoto: {},
	"transcript":      {},
	"story_media":     {},
}

// DocumentService defines the interface for supporting document operations
type DocumentService interface {
	UploadApplicationDocument(ctx context.Context, studentID, applicationID int64, documentType string, file *multipart.FileHeader) (*dto.DocumentResponse, error)
	UploadSpotlightDocument(ctx context.Context, studentID, spotlightID int64, documentType string, file *multipart.FileHeader) (*dto.DocumentResponse, error)
	ListApplicationDocuments(ctx context.Context, applicationID int64) ([]dto.DocumentResponse, error)
	ListSpotlightDocuments(ctx context.Context, spotlightID int64) ([]dto.DocumentResponse, error)
}

// documentServiceImpl implements DocumentService
type documentServiceImpl struct {
	appRepo      *repositories.ApplicationRepository
	spotRepo     *repositories.SpotlightRepository
	appDocs      *repositories.DocumentRepository
	spotDocs     *repositories.DocumentRepository
	storage      *filestorage.LocalStorage
	authzService *auth.AuthorizationService
	downloadTTL  int64
}

// NewDocumentService creates a new DocumentService. downloadTTL is the expiry
// in seconds for regular download links; photo URLs cached on the owning
// application use the long-lived TTL instead.
func NewDocumentService(
	appRepo *repositories.ApplicationRepository,
	spotRepo *repositories.SpotlightRepository,
	appDocs *repositories.DocumentRepository,
	spotDocs *repositories.DocumentRepository,
	storage *filestorage.LocalStorage,
	authzService *auth.AuthorizationService,
	downloadTTL int64,
) DocumentService {
	return &documentServiceImpl{
		appRepo:      appRepo,
		spotRepo:     spotRepo,
		appDocs:      appDocs,
		spotDocs:     spotDocs,
		storage:      storage,
		authzService: authzService,
		downloadTTL:  downloadTTL,
	}
}

// UploadApplicationDocument stores a supporting document for a scholarship
// application. Validation failures reject the upload before any blob is
// written. A photo upload also caches a long-lived signed URL on the owning
// application row.
func (s *documentServiceImpl) UploadApplicationDocument(ctx context.Context, studentID, applicationID int64, documentType string, file *multipart.FileHeader) (*dto.DocumentResponse, error) {
	app, err := s.appRepo.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if err := s.authzService.CheckApplicationOwnership(app, studentID); err != nil {
		return nil, err
	}

	doc, err := s.storeDocument(ctx, s.appDocs, app.ID, app.ApplicationID, applicationDocumentTypes, documentType, file)
	if err != nil {
		return nil, err
	}

	if documentType == DocumentTypePhoto {
		// Cached long-lived URL; it expires after the TTL with no renewal
		// path, so readers should prefer the re-signed document URL.
		photoURL := s.storage.SignedURL(doc.StoragePath, filestorage.PhotoURLTTL)
		if err := s.appRepo.UpdatePhotoURL(ctx, app.ID, photoURL); err != nil {
			logger.Error().Err(err).Int64("applicationID", app.ID).Msg("Failed to cache photo URL")
		}
	}

	return s.toResponse(doc), nil
}

// UploadSpotlightDocument stores a supporting document for a spotlight
// application, with the same validation and photo semantics as scholarship
// uploads.
func (s *documentServiceImpl) UploadSpotlightDocument(ctx context.Context, studentID, spotlightID int64, documentType string, file *multipart.FileHeader) (*dto.DocumentResponse, error) {
	spot, err := s.spotRepo.GetSpotlightByID(ctx, spotlightID)
	if err != nil {
		return nil, err
	}
	if err := s.authzService.CheckSpotlightOwnership(spot, studentID); err != nil {
		return nil, err
	}

	doc, err := s.storeDocument(ctx, s.spotDocs, spot.ID, spot.SpotlightID, spotlightDocumentTypes, documentType, file)
	if err != nil {
		return nil, err
	}

	if documentType == DocumentTypePhoto {
		photoURL := s.storage.SignedURL(doc.StoragePath, filestorage.PhotoURLTTL)
		if err := s.spotRepo.UpdatePhotoURL(ctx, spot.ID, photoURL); err != nil {
			logger.Error().Err(err).Int64("spotlightID", spot.ID).Msg("Failed to cache photo URL")
		}
	}

	return s.toResponse(doc), nil
}

// storeDocument validates the upload, writes the blob under a deterministic
// path and upserts the metadata row. A re-upload of the same (owner, type)
// pair deletes the old blob and rewrites the existing row in place, so the
// document keeps its identity across uploads.
func (s *documentServiceImpl) storeDocument(ctx context.Context, docRepo *repositories.DocumentRepository, ownerID int64, ownerDisplayID string, allowedTypes map[string]struct{}, documentType string, file *multipart.FileHeader) (*models.Document, error) {
	if _, ok := allowedTypes[documentType]; !ok {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidDocumentType, "").
			WithDetails(map[string]interface{}{"documentType": documentType})
	}
	if file == nil {
		return nil, apperrors.NewBadRequestError("no file provided")
	}
	if file.Size > MaxDocumentSize {
		return nil, apperrors.NewCustomError(apperrors.ErrFileTooLarge, "").
			WithDetails(map[string]interface{}{"maxBytes": MaxDocumentSize, "size": file.Size})
	}

	mimeType := file.Header.Get("Content-Type")
	fallbackExt, ok := allowedMimeTypes[mimeType]
	if !ok {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidFileType, "").
			WithDetails(map[string]interface{}{"mimeType": mimeType})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = fallbackExt
	}

	storagePath := fmt.Sprintf("%s/%s_%d%s", ownerDisplayID, documentType, time.Now().Unix(), ext)

	existing, err := docRepo.GetByOwnerAndType(ctx, ownerID, documentType)
	if err != nil && !errors.Is(err, apperrors.ErrDocumentNotFound) {
		return nil, err
	}

	if err := s.storage.SaveAs(file, storagePath); err != nil {
		return nil, err
	}

	doc := &models.Document{
		OwnerID:      ownerID,
		DocumentType: documentType,
		StoragePath:  storagePath,
		FileName:     file.Filename,
		FileSize:     file.Size,
		MimeType:     mimeType,
		UploadedAt:   time.Now(),
	}

	if existing != nil {
		if err := docRepo.ReplaceDocument(ctx, existing.ID, doc); err != nil {
			// Keep the store consistent with the row that survived
			_ = s.storage.DeleteFile(storagePath)
			return nil, err
		}
		doc.ID = existing.ID
		if existing.StoragePath != storagePath {
			if err := s.storage.DeleteFile(existing.StoragePath); err != nil {
				logger.Warn().Err(err).Str("path", existing.StoragePath).Msg("Failed to delete superseded blob")
			}
		}
	} else {
		id, err := docRepo.InsertDocument(ctx, doc)
		if err != nil {
			_ = s.storage.DeleteFile(storagePath)
			return nil, err
		}
		doc.ID = id
	}

	return doc, nil
}

// ListApplicationDocuments returns the documents of one scholarship
// application with freshly signed download URLs. Ownership must already be
// established by the caller.
func (s *documentServiceImpl) ListApplicationDocuments(ctx context.Context, applicationID int64) ([]dto.DocumentResponse, error) {
	return s.listDocuments(ctx, s.appDocs, applicationID)
}

// ListSpotlightDocuments returns the documents of one spotlight application
// with freshly signed download URLs.
func (s *documentServiceImpl) ListSpotlightDocuments(ctx context.Context, spotlightID int64) ([]dto.DocumentResponse, error) {
	return s.listDocuments(ctx, s.spotDocs, spotlightID)
}

func (s *documentServiceImpl) listDocuments(ctx context.Context, docRepo *repositories.DocumentRepository, ownerID int64) ([]dto.DocumentResponse, error) {
	docs, err := docRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, *s.toResponse(doc))
	}
	return out, nil
}

func (s *documentServiceImpl) toResponse(doc *models.Document) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		ID:           doc.ID,
		DocumentType: doc.DocumentType,
		FileName:     doc.FileName,
		FileSize:     doc.FileSize,
		MimeType:     doc.MimeType,
		URL:          s.storage.SignedURL(doc.StoragePath, s.downloadTTL),
		UploadedAt:   doc.UploadedAt,
	}
}
