package handlers

import (
	"context"

	"github.com/53400755Maria/taxi-service/internal/domain/model"
	"github.com/53400755Maria/taxi-service/internal/usecase"
)

// OrderFacade encapsulates order lifecycle operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, req usecase.CreateOrderRequest) (*model.Order, error)
	Order(ctx context.Context, id string) (*model.Order, error)
	Orders(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error)
	UpdateOrder(ctx context.Context, id string, fields map[string]any) error
	CancelOrder(ctx context.Context, id, reason string) error
	OrderStats(ctx context.Context) (*model.Stats, error)
	CleanupOrders(ctx context.Context, maxAgeDays int) (removed, remaining int, err error)
}

// DriverFacade provides driver registry operations.
type DriverFacade interface {
	Drivers(ctx context.Context, status model.DriverStatus) ([]model.Driver, error)
	SetDriverStatus(ctx context.Context, driverID string, status model.DriverStatus) error
}

// PricingFacade quotes fares.
type PricingFacade interface {
	CalculatePrice(carType string, distanceKm float64) int64
}

// TaxiFacade aggregates the full set of operations used across handlers.
type TaxiFacade interface {
	OrderFacade
	DriverFacade
	PricingFacade
}
