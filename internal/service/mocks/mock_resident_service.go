package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/slava-del/RTAF/internal/model"
)

type MockResidentService struct {
	mock.Mock
}

func (m *MockResidentService) List(ctx context.Context, source string) ([]model.Resident, error) {
	args := m.Called(ctx, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Resident), args.Error(1)
}

func (m *MockResidentService) Get(ctx context.Context, id int64) (*model.Resident, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resident), args.Error(1)
}
