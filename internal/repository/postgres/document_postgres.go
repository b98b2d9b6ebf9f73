package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/slava-del/RTAF/internal/model"
	"github.com/slava-del/RTAF/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of
// repository.DocumentRepository.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, user_id, name, type, path, size, uploaded_at`

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, d *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (user_id, name, type, path, size)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		d.UserID,
		d.Name,
		d.Type,
		d.Path,
		d.Size,
	)
	return scanDocument(row)
}

// FindByID fetches a single document by id.
func (r *DocumentPostgres) FindByID(ctx context.Context, id int64) (*model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// ListByUser returns all documents owned by the user.
func (r *DocumentPostgres) ListByUser(ctx context.Context, userID int64) ([]model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE user_id = $1`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		var d model.Document
		if err := rows.Scan(
			&d.ID,
			&d.UserID,
			&d.Name,
			&d.Type,
			&d.Path,
			&d.Size,
			&d.UploadedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a document by id, reporting ErrNotFound when no row
// matched.
func (r *DocumentPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM documents WHERE id = $1`
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

func scanDocument(row *sql.Row) (*model.Document, error) {
	var d model.Document
	if err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.Name,
		&d.Type,
		&d.Path,
		&d.Size,
		&d.UploadedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}
