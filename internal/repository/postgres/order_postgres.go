package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/slava-del/RTAF/internal/model"
	"github.com/slava-del/RTAF/internal/repository"
)

// OrderPostgres is a PostgreSQL implementation of repository.OrderRepository.
type OrderPostgres struct {
	db *sql.DB
}

// NewOrderPostgres creates a new OrderPostgres repository.
func NewOrderPostgres(db *sql.DB) *OrderPostgres {
	return &OrderPostgres{db: db}
}

var _ repository.OrderRepository = (*OrderPostgres)(nil)

const orderColumns = `id, user_id, order_id, status, total_documents, document_type, price, created_at, updated_at`

// Create inserts a new order row and returns the stored record.
func (r *OrderPostgres) Create(ctx context.Context, o *model.Order) (*model.Order, error) {
	const q = `
		INSERT INTO orders (user_id, order_id, status, total_documents, document_type, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + orderColumns
	row := r.db.QueryRowContext(ctx, q,
		o.UserID,
		o.OrderID,
		o.Status,
		o.TotalDocuments,
		o.DocumentType,
		o.Price,
	)
	return scanOrder(row)
}

// FindByID fetches a single order by id.
func (r *OrderPostgres) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return scanOrder(r.db.QueryRowContext(ctx, q, id))
}

// FindByOrderID fetches a single order by its human-readable code.
func (r *OrderPostgres) FindByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1`
	return scanOrder(r.db.QueryRowContext(ctx, q, orderID))
}

// ListByUser returns all orders owned by the user.
func (r *OrderPostgres) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Order, 0)
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(
			&o.ID,
			&o.UserID,
			&o.OrderID,
			&o.Status,
			&o.TotalDocuments,
			&o.DocumentType,
			&o.Price,
			&o.CreatedAt,
			&o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus rewrites the status and updated_at, returning the updated
// order.
func (r *OrderPostgres) UpdateStatus(ctx context.Context, id int64, status string) (*model.Order, error) {
	const q = `
		UPDATE orders SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + orderColumns
	return scanOrder(r.db.QueryRowContext(ctx, q, id, status))
}

func scanOrder(row *sql.Row) (*model.Order, error) {
	var o model.Order
	if err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.OrderID,
		&o.Status,
		&o.TotalDocuments,
		&o.DocumentType,
		&o.Price,
		&o.CreatedAt,
		&o.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}
