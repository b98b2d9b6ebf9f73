package model

import "time"

// Order is a report order placed by a user. OrderID is the human-readable
// order code, globally unique and immutable once assigned; ID is the
// repository identifier.
type Order struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	OrderID        string    `json:"orderId"`
	Status         string    `json:"status"`
	TotalDocuments int       `json:"totalDocuments"`
	DocumentType   string    `json:"documentType"`
	Price          float64   `json:"price"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Order statuses.
const (
	StatusPending        = "pending"
	StatusPendingPayment = "pending payment"
	StatusProcessing     = "processing"
	StatusCompleted      = "completed"
	StatusRejected       = "rejected"
)

// orderTransitions enumerates the legal status moves. Completed and
// rejected are terminal.
var orderTransitions = map[string][]string{
	StatusPending:        {StatusPendingPayment, StatusProcessing, StatusRejected},
	StatusPendingPayment: {StatusProcessing, StatusRejected},
	StatusProcessing:     {StatusCompleted, StatusRejected},
	StatusCompleted:      {},
	StatusRejected:       {},
}

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
