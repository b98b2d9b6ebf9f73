package repository

import (
	"context"

	"github.com/slava-del/RTAF/internal/model"
)

// ResidentRepository defines data access for the resident registry.
// Residents are created only during startup seeding and never mutated.
type ResidentRepository interface {
	// Create inserts a registry entry, assigning its ID.
	Create(ctx context.Context, r *model.Resident) (*model.Resident, error)

	// FindByID returns a resident by id or ErrNotFound.
	FindByID(ctx context.Context, id int64) (*model.Resident, error)

	// List returns residents, filtered by source when source is non-empty.
	List(ctx context.Context, source string) ([]model.Resident, error)
}
