package model

import "time"

// User is a registered account. PasswordHash is never serialized to
// clients; the scrypt format it carries is produced by internal/auth.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName,omitempty"`
	Company      string    `json:"company,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RoleUser is the default role assigned at registration.
const RoleUser = "user"
