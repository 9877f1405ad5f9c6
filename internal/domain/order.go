package domain

import (
	"strings"
	"time"
)

const (
	// OrderNoPrefix starts every order number.
	OrderNoPrefix = "OD"

	// OrderStatusPaid is the status of every newly created order.
	OrderStatusPaid = "PAID"
)

// OrderRequest carries the fields copied into a new order.
type OrderRequest struct {
	UserID   string `json:"userId"   validate:"notblank"`
	PlanCode string `json:"planCode" validate:"notblank"`
	Channel  string `json:"channel"  validate:"notblank"`
	Amount   int    `json:"amount"   validate:"gte=0"`
}

// Validate checks the invariants an order must satisfy before it is stored.
func (r OrderRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return NewValidationError("userId", "cannot be blank", ErrEmptyUserID)
	}
	if r.Amount < 0 {
		return NewValidationError("amount", "cannot be negative", ErrNegativeAmount)
	}
	return nil
}

// OrderItem is an immutable record of a purchase.
type OrderItem struct {
	OrderNo   string `json:"orderNo"`
	UserID    string `json:"userId"`
	PlanCode  string `json:"planCode"`
	Channel   string `json:"channel"`
	Amount    int    `json:"amount"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// NewOrderItem builds a paid order from a validated request.
func NewOrderItem(orderNo string, req OrderRequest, now time.Time) (OrderItem, error) {
	if err := req.Validate(); err != nil {
		return OrderItem{}, err
	}
	return OrderItem{
		OrderNo:   orderNo,
		UserID:    req.UserID,
		PlanCode:  req.PlanCode,
		Channel:   req.Channel,
		Amount:    req.Amount,
		Status:    OrderStatusPaid,
		CreatedAt: FormatTimestamp(now),
	}, nil
}
