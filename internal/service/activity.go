package service

import (
	"context"
	"fmt"

	"github.com/slava-del/RTAF/internal/model"
	"github.com/slava-del/RTAF/internal/repository"
)

type ActivityService interface {
	ListByUser(ctx context.Context, userID int64) ([]model.Activity, error)
}

type activityService struct {
	activities repository.ActivityRepository
}

func NewActivityService(activities repository.ActivityRepository) ActivityService {
	return &activityService{activities: activities}
}

func (s *activityService) ListByUser(ctx context.Context, userID int64) ([]model.Activity, error) {
	items, err := s.activities.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return items, nil
}
