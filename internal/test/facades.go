package test

import (
	"context"

	"github.com/53400755Maria/taxi-service/internal/domain/model"
	"github.com/53400755Maria/taxi-service/internal/usecase"
)

// TaxiFacadeStub provides controllable behaviour for every HTTP endpoint.
type TaxiFacadeStub struct {
	CreateOrderFn     func(context.Context, usecase.CreateOrderRequest) (*model.Order, error)
	OrderFn           func(context.Context, string) (*model.Order, error)
	OrdersFn          func(context.Context, model.OrderStatus, int) ([]model.Order, error)
	UpdateOrderFn     func(context.Context, string, map[string]any) error
	CancelOrderFn     func(context.Context, string, string) error
	OrderStatsFn      func(context.Context) (*model.Stats, error)
	CleanupOrdersFn   func(context.Context, int) (int, int, error)
	DriversFn         func(context.Context, model.DriverStatus) ([]model.Driver, error)
	SetDriverStatusFn func(context.Context, string, model.DriverStatus) error
	CalculatePriceFn  func(string, float64) int64
}

// CreateOrder delegates to provided function or returns a default order.
func (s TaxiFacadeStub) CreateOrder(ctx context.Context, req usecase.CreateOrderRequest) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, req)
	}
	info := model.DefaultDrivers()[0].Info()
	return &model.Order{
		ID:               "ORD-20240101120000-AAAA",
		Status:           model.OrderStatusAccepted,
		Driver:           &info,
		Price:            150,
		EstimatedArrival: 7,
		FromAddress:      req.From,
		ToAddress:        req.To,
		ClientPhone:      req.Phone,
		CarType:          req.CarType,
		PaymentMethod:    req.Payment,
	}, nil
}

// Order returns a minimal order carrying the requested id.
func (s TaxiFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, Status: model.OrderStatusAccepted}, nil
}

// Orders returns predefined orders.
func (s TaxiFacadeStub) Orders(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, status, limit)
	}
	return []model.Order{{ID: "ORD-20240101120000-AAAA"}}, nil
}

// UpdateOrder executes configured update handler.
func (s TaxiFacadeStub) UpdateOrder(ctx context.Context, id string, fields map[string]any) error {
	if s.UpdateOrderFn != nil {
		return s.UpdateOrderFn(ctx, id, fields)
	}
	return nil
}

// CancelOrder executes configured cancellation handler.
func (s TaxiFacadeStub) CancelOrder(ctx context.Context, id, reason string) error {
	if s.CancelOrderFn != nil {
		return s.CancelOrderFn(ctx, id, reason)
	}
	return nil
}

// OrderStats returns stored statistics or default data.
func (s TaxiFacadeStub) OrderStats(ctx context.Context) (*model.Stats, error) {
	if s.OrderStatsFn != nil {
		return s.OrderStatsFn(ctx)
	}
	return &model.Stats{AvgResponseTime: "0 min", CompletionRate: "0%"}, nil
}

// CleanupOrders executes configured cleanup handler.
func (s TaxiFacadeStub) CleanupOrders(ctx context.Context, maxAgeDays int) (removed, remaining int, err error) {
	if s.CleanupOrdersFn != nil {
		return s.CleanupOrdersFn(ctx, maxAgeDays)
	}
	return 0, 0, nil
}

// Drivers returns the default roster.
func (s TaxiFacadeStub) Drivers(ctx context.Context, status model.DriverStatus) ([]model.Driver, error) {
	if s.DriversFn != nil {
		return s.DriversFn(ctx, status)
	}
	return model.DefaultDrivers(), nil
}

// SetDriverStatus executes configured status handler.
func (s TaxiFacadeStub) SetDriverStatus(ctx context.Context, driverID string, status model.DriverStatus) error {
	if s.SetDriverStatusFn != nil {
		return s.SetDriverStatusFn(ctx, driverID, status)
	}
	return nil
}

// CalculatePrice delegates to provided function or quotes a flat fare.
func (s TaxiFacadeStub) CalculatePrice(carType string, distanceKm float64) int64 {
	if s.CalculatePriceFn != nil {
		return s.CalculatePriceFn(carType, distanceKm)
	}
	return 150
}
