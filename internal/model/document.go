package model

import "time"

// Document represents an uploaded report file owned by exactly one user.
// Path is the key under which the bytes live in the storage backend.
type Document struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Path       string    `json:"path"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Recognized document types. The upload pipeline accepts nothing else.
const (
	DocTypeXLSX = "xlsx"
	DocTypeDOCX = "docx"
)
