package models

import (
	"time"
)

// Document defines one uploaded file for one (owning application, document
// type) pair. Backed by two parallel tables, 'application_documents' and
// 'spotlight_documents'; the owning column differs, the shape does not.
// A re-upload supersedes the row in place, so document identity is stable
// per (application, type) rather than per upload event.
type Document struct {
	ID           int64     `json:"id" db:"id"`
	OwnerID      int64     `json:"ownerId" db:"owner_id"` // ID of the owning application row
	DocumentType string    `json:"documentType" db:"document_type" example:"transcript"`
	StoragePath  string    `json:"storagePath" db:"storage_path"`
	FileName     string    `json:"fileName" db:"file_name"`
	FileSize     int64     `json:"fileSize" db:"file_size"`
	MimeType     string    `json:"mimeType" db:"mime_type"`
	UploadedAt   time.Time `json:"uploadedAt" db:"uploaded_at"`
}
