package postgres

import (
	"context"
	"database/sql"

	"github.com/slava-del/RTAF/internal/model"
	"github.com/slava-del/RTAF/internal/repository"
)

// ActivityPostgres is a PostgreSQL implementation of
// repository.ActivityRepository. The table is append-only.
type ActivityPostgres struct {
	db *sql.DB
}

// NewActivityPostgres creates a new ActivityPostgres repository.
func NewActivityPostgres(db *sql.DB) *ActivityPostgres {
	return &ActivityPostgres{db: db}
}

var _ repository.ActivityRepository = (*ActivityPostgres)(nil)

const activityColumns = `id, user_id, action, details, created_at`

// Create appends an audit row and returns the stored record.
func (r *ActivityPostgres) Create(ctx context.Context, a *model.Activity) (*model.Activity, error) {
	const q = `
		INSERT INTO activities (user_id, action, details)
		VALUES ($1, $2, $3)
		RETURNING ` + activityColumns
	row := r.db.QueryRowContext(ctx, q,
		a.UserID,
		a.Action,
		a.Details,
	)
	var out model.Activity
	if err := row.Scan(
		&out.ID,
		&out.UserID,
		&out.Action,
		&out.Details,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByUser returns the user's audit rows newest first, ids breaking ties.
func (r *ActivityPostgres) ListByUser(ctx context.Context, userID int64) ([]model.Activity, error) {
	const q = `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Activity, 0)
	for rows.Next() {
		var a model.Activity
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.Action,
			&a.Details,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
