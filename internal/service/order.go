package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/slava-del/RTAF/internal/model"
	"github.com/slava-del/RTAF/internal/repository"
)

// CreateOrderInput carries the client-settable order fields. Status may be
// empty, in which case the order starts as pending.
type CreateOrderInput struct {
	OrderID        string
	Status         string
	TotalDocuments int
	DocumentType   string
	Price          float64
}

type OrderService interface {
	Create(ctx context.Context, userID int64, in CreateOrderInput) (*model.Order, error)
	Get(ctx context.Context, id, requesterID int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id, requesterID int64, status string) (*model.Order, error)
}

type orderService struct {
	orders repository.OrderRepository
	events EventSink
}

func NewOrderService(orders repository.OrderRepository, events EventSink) OrderService {
	return &orderService{orders: orders, events: events}
}

func (s *orderService) Create(ctx context.Context, userID int64, in CreateOrderInput) (*model.Order, error) {
	if in.OrderID == "" {
		return nil, ErrOrderIDRequired
	}

	status := in.Status
	if status == "" {
		status = model.StatusPending
	}
	if !model.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	if _, err := s.orders.FindByOrderID(ctx, in.OrderID); err == nil {
		return nil, ErrOrderIDTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check order id: %w", err)
	}

	order := &model.Order{
		UserID:         userID,
		OrderID:        in.OrderID,
		Status:         status,
		TotalDocuments: in.TotalDocuments,
		DocumentType:   in.DocumentType,
		Price:          in.Price,
	}
	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.events.Notify(ctx, userID, "New Order Created", fmt.Sprintf("Your order %s has been created successfully with status: %s", created.OrderID, created.Status), model.NotifyInfo)
	s.events.Record(ctx, userID, "Order Created", fmt.Sprintf("Created order: %s", created.OrderID))

	return created, nil
}

func (s *orderService) Get(ctx context.Context, id, requesterID int64) (*model.Order, error) {
	return s.findOwned(ctx, id, requesterID)
}

func (s *orderService) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id, requesterID int64, status string) (*model.Order, error) {
	if status == "" {
		return nil, ErrStatusRequired
	}
	if !model.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := s.findOwned(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}

	if !model.CanTransition(order.Status, status) {
		return nil, ErrInvalidTransition
	}

	updated, err := s.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update order status: %w", err)
	}

	s.events.Notify(ctx, requesterID, "Order Status Updated",
		fmt.Sprintf("Order %s is now %s.", updated.OrderID, updated.Status), model.NotifyInfo)
	s.events.Record(ctx, requesterID, "Order Status Updated",
		fmt.Sprintf("Order %s: %s -> %s", updated.OrderID, order.Status, updated.Status))

	return updated, nil
}

func (s *orderService) findOwned(ctx context.Context, id, requesterID int64) (*model.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	if order.UserID != requesterID {
		return nil, ErrForbidden
	}
	return order, nil
}
