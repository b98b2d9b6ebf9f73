package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/slava-del/RTAF/internal/model"
	"github.com/slava-del/RTAF/internal/repository"
)

type NotificationService interface {
	ListByUser(ctx context.Context, userID int64) ([]model.Notification, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context, userID int64) error
}

type notificationService struct {
	notifications repository.NotificationRepository
}

func NewNotificationService(n repository.NotificationRepository) NotificationService {
	return &notificationService{notifications: n}
}

func (s *notificationService) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	items, err := s.notifications.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return items, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id int64) error {
	if err := s.notifications.MarkRead(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID int64) error {
	items, err := s.notifications.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("list notifications: %w", err)
	}
	for _, n := range items {
		if n.IsRead {
			continue
		}
		if err := s.notifications.MarkRead(ctx, n.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("mark notification %d read: %w", n.ID, err)
		}
	}
	return nil
}
