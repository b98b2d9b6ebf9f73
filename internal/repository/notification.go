package repository

import (
	"context"

	"github.com/slava-del/RTAF/internal/model"
)

// NotificationRepository defines data access for notifications. IsRead only
// ever moves false to true.
type NotificationRepository interface {
	// Create inserts a notification with IsRead=false, assigning ID and
	// CreatedAt.
	Create(ctx context.Context, n *model.Notification) (*model.Notification, error)

	// ListByUser returns all notifications owned by the user.
	ListByUser(ctx context.Context, userID int64) ([]model.Notification, error)

	// MarkRead flips IsRead to true. It returns ErrNotFound when the row
	// does not exist.
	MarkRead(ctx context.Context, id int64) error
}
