package service

import (
	"context"
	"log"

	"github.com/slava-del/RTAF/internal/model"
	"github.com/slava-del/RTAF/internal/repository"
)

// EventSink receives the side-channel writes that accompany most mutations:
// a notification for the user to see and an activity row for the audit trail.
// Both are best effort; a sink must never fail the operation that fired it.
type EventSink interface {
	Notify(ctx context.Context, userID int64, title, message, typ string)
	Record(ctx context.Context, userID int64, action, details string)
}

// Fanout writes events through the notification and activity repositories,
// logging and swallowing any persistence errors.
type Fanout struct {
	notifications repository.NotificationRepository
	activities    repository.ActivityRepository
}

func NewFanout(n repository.NotificationRepository, a repository.ActivityRepository) *Fanout {
	return &Fanout{notifications: n, activities: a}
}

func (f *Fanout) Notify(ctx context.Context, userID int64, title, message, typ string) {
	_, err := f.notifications.Create(ctx, &model.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    typ,
	})
	if err != nil {
		log.Printf("fanout: notification write failed for user %d: %v", userID, err)
	}
}

func (f *Fanout) Record(ctx context.Context, userID int64, action, details string) {
	_, err := f.activities.Create(ctx, &model.Activity{
		UserID:  userID,
		Action:  action,
		Details: details,
	})
	if err != nil {
		log.Printf("fanout: activity write failed for user %d: %v", userID, err)
	}
}
