package app

import (
	"context"

	"github.com/53400755Maria/taxi-service/internal/domain/model"
	"github.com/53400755Maria/taxi-service/internal/usecase"
)

// TaxiFacade aggregates the order lifecycle, driver registry, and pricing
// use cases behind the surface consumed by handlers and workers.
type TaxiFacade struct {
	orders   *usecase.OrderUseCase
	registry *usecase.DriverRegistry
	pricing  *usecase.PricingCalculator
}

// NewTaxiFacade constructs TaxiFacade.
func NewTaxiFacade(orders *usecase.OrderUseCase, registry *usecase.DriverRegistry, pricing *usecase.PricingCalculator) *TaxiFacade {
	return &TaxiFacade{orders: orders, registry: registry, pricing: pricing}
}

func (f *TaxiFacade) CreateOrder(ctx context.Context, req usecase.CreateOrderRequest) (*model.Order, error) {
	return f.orders.Create(ctx, req)
}

func (f *TaxiFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *TaxiFacade) Orders(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
	return f.orders.List(ctx, status, limit)
}

func (f *TaxiFacade) UpdateOrder(ctx context.Context, id string, fields map[string]any) error {
	return f.orders.Update(ctx, id, fields)
}

func (f *TaxiFacade) CancelOrder(ctx context.Context, id, reason string) error {
	return f.orders.Cancel(ctx, id, reason)
}

func (f *TaxiFacade) OrderStats(ctx context.Context) (*model.Stats, error) {
	return f.orders.Stats(ctx)
}

func (f *TaxiFacade) CleanupOrders(ctx context.Context, maxAgeDays int) (removed, remaining int, err error) {
	return f.orders.Cleanup(ctx, maxAgeDays)
}

func (f *TaxiFacade) Drivers(ctx context.Context, status model.DriverStatus) ([]model.Driver, error) {
	return f.registry.List(ctx, status)
}

func (f *TaxiFacade) SetDriverStatus(ctx context.Context, driverID string, status model.DriverStatus) error {
	return f.registry.SetStatus(ctx, driverID, status)
}

func (f *TaxiFacade) CalculatePrice(carType string, distanceKm float64) int64 {
	return f.pricing.Price(carType, distanceKm)
}
