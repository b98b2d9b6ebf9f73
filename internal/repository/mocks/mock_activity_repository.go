package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/slava-del/RTAF/internal/model"
)

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, a *model.Activity) (*model.Activity, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Activity), args.Error(1)
}

func (m *MockActivityRepository) ListByUser(ctx context.Context, userID int64) ([]model.Activity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Activity), args.Error(1)
}
