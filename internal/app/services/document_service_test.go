package services

import (
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edufund/scholarhub/internal/pkg/apperrors"
)

func uploadHeader(filename, mimeType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", mimeType)
	return &multipart.FileHeader{
		Filename: filename,
		Header:   header,
		Size:     size,
	}
}

// Upload validation runs before any repository or storage access, so the
// rejection paths are exercised on a zero-value service.
func TestStoreDocumentValidation(t *testing.T) {
	s := &documentServiceImpl{}
	ctx := context.Background()

	t.Run("unknown document type", func(t *testing.T) {
		_, err := s.storeDocument(ctx, nil, 1, "APP-2025-00042", applicationDocumentTypes,
			"tax_return", uploadHeader("doc.pdf", "application/pdf", 1024))
		assert.ErrorIs(t, err, apperrors.ErrInvalidDocumentType)
	})

	t.Run("spotlight type not valid for applications", func(t *testing.T) {
		_, err := s.storeDocument(ctx, nil, 1, "APP-2025-00042", applicationDocumentTypes,
			"story_media", uploadHeader("clip.pdf", "application/pdf", 1024))
		assert.ErrorIs(t, err, apperrors.ErrInvalidDocumentType)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := s.storeDocument(ctx, nil, 1, "APP-2025-00042", applicationDocumentTypes,
			"transcript", nil)
		assert.Error(t, err)
	})

	t.Run("oversize file", func(t *testing.T) {
		_, err := s.storeDocument(ctx, nil, 1, "APP-2025-00042", applicationDocumentTypes,
			"transcript", uploadHeader("doc.pdf", "application/pdf", MaxDocumentSize+1))
		assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
	})

	t.Run("disallowed mime type", func(t *testing.T) {
		_, err := s.storeDocument(ctx, nil, 1, "APP-2025-00042", applicationDocumentTypes,
			"transcript", uploadHeader("doc.exe", "application/octet-stream", 1024))
		assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)
	})
}

func TestDocumentTypeAllowLists(t *testing.T) {
	// Photo is the one type shared by both owners
	_, ok := applicationDocumentTypes[DocumentTypePhoto]
	assert.True(t, ok)
	_, ok = spotlightDocumentTypes[DocumentTypePhoto]
	assert.True(t, ok)

	_, ok = applicationDocumentTypes["bank_statement"]
	assert.True(t, ok)
	_, ok = spotlightDocumentTypes["bank_statement"]
	assert.False(t, ok)
}
