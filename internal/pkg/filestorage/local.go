package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/edufund/scholarhub/internal/pkg/logger"
)

// LocalStorage stores uploaded blobs on the local filesystem, addressed by
// relative storage paths like "APP-2025-00042/photo_1714060800.jpg".
type LocalStorage struct {
	basePath string
	signer   *URLSigner
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
// Download URLs are issued through the given signer.
func NewLocalStorage(basePath string, signer *URLSigner) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		signer:   signer,
	}, nil
}

// SaveAs writes the uploaded file to exactly the given relative storage path,
// creating intermediate directories as needed. The path is deterministic and
// chosen by the caller; no random filename is generated here.
func (ls *LocalStorage) SaveAs(fileHeader *multipart.FileHeader, storagePath string) error {
	if fileHeader == nil {
		return fmt.Errorf("no file provided")
	}
	clean, err := ls.resolve(storagePath)
	if err != nil {
		return err
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	if err := os.MkdirAll(filepath.Dir(clean), os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", clean).Msg("Failed to create blob subdirectory")
		return fmt.Errorf("failed to create blob subdirectory: %w", err)
	}

	dst, err := os.Create(clean)
	if err != nil {
		logger.Error().Err(err).Str("path", clean).Msg("Failed to create destination file")
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", clean).Msg("Failed to copy uploaded file content")
		_ = os.Remove(clean)
		return fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("storagePath", storagePath).Msg("File saved")
	return nil
}

// DeleteFile removes a blob by its relative storage path. Deleting a missing
// blob is treated as success so the operation stays idempotent.
func (ls *LocalStorage) DeleteFile(storagePath string) error {
	if storagePath == "" {
		return nil
	}
	clean, err := ls.resolve(storagePath)
	if err != nil {
		return err
	}

	if _, err := os.Stat(clean); os.IsNotExist(err) {
		logger.Warn().Str("path", clean).Msg("Blob to delete does not exist")
		return nil
	}

	if err := os.Remove(clean); err != nil {
		logger.Error().Err(err).Str("path", clean).Msg("Failed to delete blob")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", clean).Msg("Blob deleted")
	return nil
}

// FullPath returns the absolute filesystem path for a stored blob.
func (ls *LocalStorage) FullPath(storagePath string) (string, error) {
	return ls.resolve(storagePath)
}

// SignedURL issues an expiring download URL for the stored blob.
func (ls *LocalStorage) SignedURL(storagePath string, ttlSeconds int64) string {
	return ls.signer.Sign(storagePath, ttlSeconds)
}

// VerifySignedPath checks the signature and expiry query parameters for a
// storage path, as produced by SignedURL.
func (ls *LocalStorage) VerifySignedPath(storagePath, expires, sig string) error {
	return ls.signer.Verify(storagePath, expires, sig)
}

// resolve maps a relative storage path into the base directory, rejecting
// anything that would escape it.
func (ls *LocalStorage) resolve(storagePath string) (string, error) {
	clean := filepath.Clean(storagePath)
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid storage path: %s", storagePath)
	}
	return filepath.Join(ls.basePath, clean), nil
}
