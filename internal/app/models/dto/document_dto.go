package dto

import (
	"time"
)

// DocumentResponse represents an uploaded supporting document. URL is a
// time-limited signed download link.
type DocumentResponse struct {
	ID           int64     `json:"id"`
	DocumentType string    `json:"documentType" example:"transcript"`
	FileName     string    `json:"fileName"`
	FileSize     int64     `json:"fileSize"`
	MimeType     string    `json:"mimeType" example:"application/pdf"`
	URL          string    `json:"url"`
	UploadedAt   time.Time `json:"uploadedAt"`
}
