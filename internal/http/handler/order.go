package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/slava-del/RTAF/internal/http/middleware"
	"github.com/slava-del/RTAF/internal/service"
)

type createOrderRequest struct {
	OrderID        string  `json:"orderId"`
	Status         string  `json:"status"`
	TotalDocuments int     `json:"totalDocuments"`
	DocumentType   string  `json:"documentType"`
	Price          float64 `json:"price"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// CreateOrder places a new report order for the caller.
func CreateOrder(svc service.OrderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := middleware.UserID(c)

		var req createOrderRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		order, err := svc.Create(c.UserContext(), userID, service.CreateOrderInput{
			OrderID:        req.OrderID,
			Status:         req.Status,
			TotalDocuments: req.TotalDocuments,
			DocumentType:   req.DocumentType,
			Price:          req.Price,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(order)
	}
}

// ListOrders returns the caller's orders.
func ListOrders(svc service.OrderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := middleware.UserID(c)

		orders, err := svc.ListByUser(c.UserContext(), userID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(orders)
	}
}

// GetOrder returns one order owned by the caller.
func GetOrder(svc service.OrderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := middleware.UserID(c)

		id, err := parseID(c, "id")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		order, err := svc.Get(c.UserContext(), id, userID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(order)
	}
}

// UpdateOrderStatus advances an order through its status state machine.
func UpdateOrderStatus(svc service.OrderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := middleware.UserID(c)

		id, err := parseID(c, "id")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var req updateOrderStatusRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		order, err := svc.UpdateStatus(c.UserContext(), id, userID, req.Status)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(order)
	}
}
