package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/slava-del/RTAF/internal/model"
	"github.com/slava-del/RTAF/internal/service"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Upload(ctx context.Context, userID int64, in service.UploadInput) (*model.Document, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) ListByUser(ctx context.Context, userID int64) ([]model.Document, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentService) Download(ctx context.Context, id, requesterID int64) (io.ReadCloser, *model.Document, error) {
	args := m.Called(ctx, id, requesterID)
	rc, _ := args.Get(0).(io.ReadCloser)
	doc, _ := args.Get(1).(*model.Document)
	return rc, doc, args.Error(2)
}

func (m *MockDocumentService) Delete(ctx context.Context, id, requesterID int64) error {
	args := m.Called(ctx, id, requesterID)
	return args.Error(0)
}
