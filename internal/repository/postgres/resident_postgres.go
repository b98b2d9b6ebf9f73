package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/slava-del/RTAF/internal/model"
	"github.com/slava-del/RTAF/internal/repository"
)

// ResidentPostgres is a PostgreSQL implementation of
// repository.ResidentRepository. The opaque attribute bag is stored as
// jsonb.
type ResidentPostgres struct {
	db *sql.DB
}

// NewResidentPostgres creates a new ResidentPostgres repository.
func NewResidentPostgres(db *sql.DB) *ResidentPostgres {
	return &ResidentPostgres{db: db}
}

var _ repository.ResidentRepository = (*ResidentPostgres)(nil)

const residentColumns = `id, name, resident_id, address, registration_date, source, data`

// Create inserts a registry entry and returns the stored record.
func (r *ResidentPostgres) Create(ctx context.Context, res *model.Resident) (*model.Resident, error) {
	data, err := json.Marshal(res.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal resident data: %w", err)
	}
	const q = `
		INSERT INTO residents (name, resident_id, address, registration_date, source, data)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + residentColumns
	row := r.db.QueryRowContext(ctx, q,
		res.Name,
		res.ResidentID,
		res.Address,
		res.RegistrationDate,
		res.Source,
		data,
	)
	return scanResident(row)
}

// FindByID fetches a single resident by id.
func (r *ResidentPostgres) FindByID(ctx context.Context, id int64) (*model.Resident, error) {
	const q = `SELECT ` + residentColumns + ` FROM residents WHERE id = $1`
	return scanResident(r.db.QueryRowContext(ctx, q, id))
}

// List returns residents, filtered by source when non-empty.
func (r *ResidentPostgres) List(ctx context.Context, source string) ([]model.Resident, error) {
	const q = `SELECT ` + residentColumns + ` FROM residents WHERE $1 = '' OR source = $1`
	rows, err := r.db.QueryContext(ctx, q, source)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Resident, 0)
	for rows.Next() {
		var res model.Resident
		var data []byte
		if err := rows.Scan(
			&res.ID,
			&res.Name,
			&res.ResidentID,
			&res.Address,
			&res.RegistrationDate,
			&res.Source,
			&data,
		); err != nil {
			return nil, err
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &res.Data); err != nil {
				return nil, fmt.Errorf("unmarshal resident data: %w", err)
			}
		}
		items = append(items, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanResident(row *sql.Row) (*model.Resident, error) {
	var res model.Resident
	var data []byte
	if err := row.Scan(
		&res.ID,
		&res.Name,
		&res.ResidentID,
		&res.Address,
		&res.RegistrationDate,
		&res.Source,
		&data,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &res.Data); err != nil {
			return nil, fmt.Errorf("unmarshal resident data: %w", err)
		}
	}
	return &res, nil
}
