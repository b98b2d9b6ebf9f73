package service

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockSink struct {
	mock.Mock
}

func (m *mockSink) Notify(ctx context.Context, userID int64, title, message, typ string) {
	m.Called(ctx, userID, title, message, typ)
}

func (m *mockSink) Record(ctx context.Context, userID int64, action, details string) {
	m.Called(ctx, userID, action, details)
}

// anySink returns a sink that accepts any events without asserting them.
func anySink() *mockSink {
	s := &mockSink{}
	s.On("Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	s.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	return s
}
