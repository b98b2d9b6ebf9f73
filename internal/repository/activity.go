package repository

import (
	"context"

	"github.com/slava-del/RTAF/internal/model"
)

// ActivityRepository defines the append-only audit log. Rows are never
// updated or deleted.
type ActivityRepository interface {
	// Create appends an audit record, assigning ID and CreatedAt.
	Create(ctx context.Context, a *model.Activity) (*model.Activity, error)

	// ListByUser returns the user's activities ordered by creation time,
	// newest first.
	ListByUser(ctx context.Context, userID int64) ([]model.Activity, error)
}
