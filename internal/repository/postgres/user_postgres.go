package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/slava-del/RTAF/internal/model"
	"github.com/slava-del/RTAF/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
// It uses database/sql with parameterized queries and contains no business
// logic.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

const userColumns = `id, username, password, full_name, company, role, created_at`

// Create inserts a new user row and returns the stored record.
func (r *UserPostgres) Create(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		INSERT INTO users (username, password, full_name, company, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns
	row := r.db.QueryRowContext(ctx, q,
		u.Username,
		u.PasswordHash,
		u.FullName,
		u.Company,
		u.Role,
	)
	return scanUser(row)
}

// FindByID fetches a single user by id.
func (r *UserPostgres) FindByID(ctx context.Context, id int64) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

// FindByUsername fetches a single user by exact username.
func (r *UserPostgres) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, username))
}

func scanUser(row *sql.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.FullName,
		&u.Company,
		&u.Role,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
