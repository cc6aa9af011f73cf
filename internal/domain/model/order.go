package model

import "time"

// OrderStatus describes the ride lifecycle.
type OrderStatus string

const (
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsTerminal reports whether no further transition is permitted.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// DriverInfo is the driver snapshot embedded into an order at assignment time.
// It is frozen there; later changes to the live driver record do not touch it.
type DriverInfo struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Car       string  `json:"car"`
	CarNumber string  `json:"car_number"`
	Phone     string  `json:"phone"`
	Rating    float64 `json:"rating"`
}

// Order describes a single ride request and its full lifecycle record.
type Order struct {
	ID               string      `json:"id"`
	CreatedAt        time.Time   `json:"created_at"`
	Status           OrderStatus `json:"status"`
	Driver           *DriverInfo `json:"driver,omitempty"`
	Price            int64       `json:"price"`
	EstimatedArrival int         `json:"estimated_arrival"`
	FromAddress      string      `json:"from_address"`
	ToAddress        string      `json:"to_address"`
	ClientPhone      string      `json:"client_phone"`
	CarType          string      `json:"car_type"`
	PaymentMethod    string      `json:"payment_method"`
	UpdatedAt        *time.Time  `json:"updated_at,omitempty"`
	CancelledAt      *time.Time  `json:"cancelled_at,omitempty"`
	CancelReason     string      `json:"cancel_reason,omitempty"`
}
