package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/slava-del/RTAF/internal/model"
)

type MockResidentRepository struct {
	mock.Mock
}

func (m *MockResidentRepository) Create(ctx context.Context, r *model.Resident) (*model.Resident, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resident), args.Error(1)
}

func (m *MockResidentRepository) FindByID(ctx context.Context, id int64) (*model.Resident, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resident), args.Error(1)
}

func (m *MockResidentRepository) List(ctx context.Context, source string) ([]model.Resident, error) {
	args := m.Called(ctx, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Resident), args.Error(1)
}
