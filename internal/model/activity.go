package model

import "time"

// Activity is an append-only audit record. Rows are never updated or
// deleted and are listed newest first.
type Activity struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
