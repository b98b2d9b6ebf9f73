package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/slava-del/RTAF/internal/model"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
