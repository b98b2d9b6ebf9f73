package postgres

import (
	"context"
	"database/sql"

	"github.com/slava-del/RTAF/internal/model"
	"github.com/slava-del/RTAF/internal/repository"
)

// NotificationPostgres is a PostgreSQL implementation of
// repository.NotificationRepository.
type NotificationPostgres struct {
	db *sql.DB
}

// NewNotificationPostgres creates a new NotificationPostgres repository.
func NewNotificationPostgres(db *sql.DB) *NotificationPostgres {
	return &NotificationPostgres{db: db}
}

var _ repository.NotificationRepository = (*NotificationPostgres)(nil)

const notificationColumns = `id, user_id, title, message, type, is_read, created_at`

// Create inserts a notification with is_read=false and returns the stored
// record.
func (r *NotificationPostgres) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	const q = `
		INSERT INTO notifications (user_id, title, message, type)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + notificationColumns
	row := r.db.QueryRowContext(ctx, q,
		n.UserID,
		n.Title,
		n.Message,
		n.Type,
	)
	var out model.Notification
	if err := row.Scan(
		&out.ID,
		&out.UserID,
		&out.Title,
		&out.Message,
		&out.Type,
		&out.IsRead,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByUser returns all notifications owned by the user.
func (r *NotificationPostgres) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	const q = `SELECT ` + notificationColumns + ` FROM notifications WHERE user_id = $1`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Notification, 0)
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.Title,
			&n.Message,
			&n.Type,
			&n.IsRead,
			&n.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// MarkRead flips is_read to true, reporting ErrNotFound when no row
// matched. The flag never transitions back.
func (r *NotificationPostgres) MarkRead(ctx context.Context, id int64) error {
	const q = `UPDATE notifications SET is_read = TRUE WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
