package repository

import (
	"context"

	"github.com/slava-del/RTAF/internal/model"
)

// DocumentRepository defines metadata persistence for uploaded documents.
// The file bytes themselves belong to the storage backend; the service
// layer keeps the two in step.
type DocumentRepository interface {
	// Create inserts a new document record, assigning ID and UploadedAt.
	Create(ctx context.Context, d *model.Document) (*model.Document, error)

	// FindByID returns a document by id or ErrNotFound.
	FindByID(ctx context.Context, id int64) (*model.Document, error)

	// ListByUser returns all documents owned by the user.
	ListByUser(ctx context.Context, userID int64) ([]model.Document, error)

	// Delete removes a document record. It returns ErrNotFound when the
	// row does not exist.
	Delete(ctx context.Context, id int64) error
}
