package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/slava-del/RTAF/internal/model"
	"github.com/slava-del/RTAF/internal/repository"
	repoMocks "github.com/slava-del/RTAF/internal/repository/mocks"
)

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		in         CreateOrderInput
		setupMocks func(orders *repoMocks.MockOrderRepository)
		wantStatus string
		wantErr    error
	}{
		{
			name: "defaults to pending",
			in:   CreateOrderInput{OrderID: "ORD-2023-001", TotalDocuments: 3, DocumentType: "xlsx", Price: 15.99},
			setupMocks: func(orders *repoMocks.MockOrderRepository) {
				orders.On("FindByOrderID", ctx, "ORD-2023-001").Return(nil, repository.ErrNotFound)
				orders.On("Create", ctx, mock.MatchedBy(func(o *model.Order) bool {
					return o.Status == model.StatusPending && o.UserID == 7
				})).Return(&model.Order{ID: 1, UserID: 7, OrderID: "ORD-2023-001", Status: model.StatusPending}, nil)
			},
			wantStatus: model.StatusPending,
		},
		{
			name: "explicit status",
			in:   CreateOrderInput{OrderID: "ORD-2023-002", Status: model.StatusProcessing},
			setupMocks: func(orders *repoMocks.MockOrderRepository) {
				orders.On("FindByOrderID", ctx, "ORD-2023-002").Return(nil, repository.ErrNotFound)
				orders.On("Create", ctx, mock.Anything).
					Return(&model.Order{ID: 2, UserID: 7, OrderID: "ORD-2023-002", Status: model.StatusProcessing}, nil)
			},
			wantStatus: model.StatusProcessing,
		},
		{
			name:       "missing order id",
			in:         CreateOrderInput{},
			setupMocks: func(orders *repoMocks.MockOrderRepository) {},
			wantErr:    ErrOrderIDRequired,
		},
		{
			name:       "unknown status",
			in:         CreateOrderInput{OrderID: "ORD-2023-003", Status: "shipped"},
			setupMocks: func(orders *repoMocks.MockOrderRepository) {},
			wantErr:    ErrInvalidStatus,
		},
		{
			name: "duplicate order id",
			in:   CreateOrderInput{OrderID: "ORD-2023-001"},
			setupMocks: func(orders *repoMocks.MockOrderRepository) {
				orders.On("FindByOrderID", ctx, "ORD-2023-001").
					Return(&model.Order{ID: 1, OrderID: "ORD-2023-001"}, nil)
			},
			wantErr: ErrOrderIDTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := &repoMocks.MockOrderRepository{}
			tt.setupMocks(orders)

			svc := NewOrderService(orders, anySink())
			got, err := svc.Create(ctx, 7, tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStatus, got.Status)
			}
			orders.AssertExpectations(t)
		})
	}
}

func TestOrderService_CreateSideEffects(t *testing.T) {
	ctx := context.Background()

	orders := &repoMocks.MockOrderRepository{}
	orders.On("FindByOrderID", ctx, "ORD-2023-010").Return(nil, repository.ErrNotFound)
	orders.On("Create", ctx, mock.Anything).
		Return(&model.Order{ID: 10, UserID: 7, OrderID: "ORD-2023-010", Status: model.StatusPending}, nil)

	sink := &mockSink{}
	sink.On("Notify", ctx, int64(7), "New Order Created",
		"Your order ORD-2023-010 has been created successfully with status: pending", model.NotifyInfo).Once()
	sink.On("Record", ctx, int64(7), "Order Created", "Created order: ORD-2023-010").Once()

	svc := NewOrderService(orders, sink)
	_, err := svc.Create(ctx, 7, CreateOrderInput{OrderID: "ORD-2023-010"})

	assert.NoError(t, err)
	sink.AssertExpectations(t)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		from       string
		to         string
		wantErr    error
	}{
		{name: "pending to processing", from: model.StatusPending, to: model.StatusProcessing},
		{name: "pending to pending payment", from: model.StatusPending, to: model.StatusPendingPayment},
		{name: "pending payment to rejected", from: model.StatusPendingPayment, to: model.StatusRejected},
		{name: "processing to completed", from: model.StatusProcessing, to: model.StatusCompleted},
		{name: "completed is terminal", from: model.StatusCompleted, to: model.StatusProcessing, wantErr: ErrInvalidTransition},
		{name: "rejected is terminal", from: model.StatusRejected, to: model.StatusPending, wantErr: ErrInvalidTransition},
		{name: "no skipping to completed", from: model.StatusPending, to: model.StatusCompleted, wantErr: ErrInvalidTransition},
		{name: "unknown status", from: model.StatusPending, to: "archived", wantErr: ErrInvalidStatus},
		{name: "empty status", from: model.StatusPending, to: "", wantErr: ErrStatusRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := &model.Order{ID: 5, UserID: 7, OrderID: "ORD-2023-009", Status: tt.from}

			orders := &repoMocks.MockOrderRepository{}
			orders.On("FindByID", ctx, int64(5)).Return(current, nil).Maybe()
			if tt.wantErr == nil {
				orders.On("UpdateStatus", ctx, int64(5), tt.to).
					Return(&model.Order{ID: 5, UserID: 7, OrderID: "ORD-2023-009", Status: tt.to}, nil)
			}

			svc := NewOrderService(orders, anySink())
			got, err := svc.UpdateStatus(ctx, 5, 7, tt.to)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.to, got.Status)
			}
			orders.AssertExpectations(t)
		})
	}
}

func TestOrderService_UpdateStatus_Ownership(t *testing.T) {
	ctx := context.Background()

	orders := &repoMocks.MockOrderRepository{}
	orders.On("FindByID", ctx, int64(5)).
		Return(&model.Order{ID: 5, UserID: 7, Status: model.StatusPending}, nil)

	svc := NewOrderService(orders, anySink())
	got, err := svc.UpdateStatus(ctx, 5, 8, model.StatusProcessing)

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Nil(t, got)
	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("missing order wins over ownership", func(t *testing.T) {
		orders := &repoMocks.MockOrderRepository{}
		orders.On("FindByID", ctx, int64(404)).Return(nil, repository.ErrNotFound)

		svc := NewOrderService(orders, anySink())
		_, err := svc.Get(ctx, 404, 8)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("foreign order is forbidden", func(t *testing.T) {
		orders := &repoMocks.MockOrderRepository{}
		orders.On("FindByID", ctx, int64(5)).Return(&model.Order{ID: 5, UserID: 7}, nil)

		svc := NewOrderService(orders, anySink())
		_, err := svc.Get(ctx, 5, 8)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}
