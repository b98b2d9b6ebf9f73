package repository

import (
	"context"

	"github.com/slava-del/RTAF/internal/model"
)

// UserRepository defines data access for user accounts. Username lookups
// are case-sensitive exact matches.
type UserRepository interface {
	// Create inserts a new user, assigning ID and CreatedAt.
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// FindByID returns a user by id or ErrNotFound.
	FindByID(ctx context.Context, id int64) (*model.User, error)

	// FindByUsername returns a user by exact username or ErrNotFound.
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}
