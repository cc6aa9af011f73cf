package dto

import "github.com/53400755Maria/taxi-service/internal/domain/model"

// CreateOrderRequest carries a new ride request. Field names follow the
// public API contract, not the persisted order shape.
type CreateOrderRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Phone   string `json:"phone"`
	CarType string `json:"carType"`
	Payment string `json:"payment"`
}

// AssignedDriver is the public subset of the driver returned on creation.
type AssignedDriver struct {
	Name  string `json:"name"`
	Car   string `json:"car"`
	Phone string `json:"phone"`
}

// CreateOrderResponse summarizes a freshly created order.
type CreateOrderResponse struct {
	Success          bool           `json:"success"`
	OrderID          string         `json:"order_id"`
	Driver           AssignedDriver `json:"driver"`
	Price            int64          `json:"price"`
	EstimatedArrival int            `json:"estimated_arrival"`
	Message          string         `json:"message"`
}

// OrdersResponse lists orders with their count.
type OrdersResponse struct {
	Success bool          `json:"success"`
	Count   int           `json:"count"`
	Orders  []model.Order `json:"orders"`
}

// OrderResponse wraps a single order.
type OrderResponse struct {
	Success bool        `json:"success"`
	Order   model.Order `json:"order"`
}

// CancelOrderRequest optionally carries a cancellation reason.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}
