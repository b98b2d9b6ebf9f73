package repository

import (
	"context"

	"github.com/slava-del/RTAF/internal/model"
)

// OrderRepository defines data access for orders. Status rewrites go
// through UpdateStatus only; OrderID (the human-readable code) is immutable
// once assigned.
type OrderRepository interface {
	// Create inserts a new order, assigning ID, CreatedAt and UpdatedAt.
	Create(ctx context.Context, o *model.Order) (*model.Order, error)

	// FindByID returns an order by id or ErrNotFound.
	FindByID(ctx context.Context, id int64) (*model.Order, error)

	// FindByOrderID returns an order by its human-readable code or
	// ErrNotFound. Used to enforce code uniqueness.
	FindByOrderID(ctx context.Context, orderID string) (*model.Order, error)

	// ListByUser returns all orders owned by the user.
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)

	// UpdateStatus rewrites the status and UpdatedAt, returning the
	// updated order or ErrNotFound.
	UpdateStatus(ctx context.Context, id int64, status string) (*model.Order, error)
}
