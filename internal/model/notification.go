package model

import "time"

// Notification is a user-facing message created as a side effect of other
// mutations. IsRead moves false to true only, never back.
type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// Notification types.
const (
	NotifyInfo    = "info"
	NotifySuccess = "success"
	NotifyWarning = "warning"
	NotifyError   = "error"
)
