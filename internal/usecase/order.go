package usecase

import (
	"context"
	"encoding/json"
	"math"
	"math/rand"
	"strconv"
	"sync"
	"time"

	domainErrors "github.com/53400755Maria/taxi-service/internal/domain/errors"
	"github.com/53400755Maria/taxi-service/internal/domain/model"
	"github.com/53400755Maria/taxi-service/internal/domain/repository"
)

const (
	// DefaultCancelReason is stored when a cancellation carries no reason.
	DefaultCancelReason = "Cancelled by client"

	// DefaultRetentionDays bounds order age for cleanup when unspecified.
	DefaultRetentionDays = 30

	etaMinMinutes = 5
	etaMaxMinutes = 15
)

// CreateOrderRequest carries the client fields required to open an order.
type CreateOrderRequest struct {
	From    string
	To      string
	Phone   string
	CarType string
	Payment string
}

// Validate reports the first absent required field.
func (r CreateOrderRequest) Validate() error {
	switch {
	case r.From == "":
		return domainErrors.NewMissingField("from")
	case r.To == "":
		return domainErrors.NewMissingField("to")
	case r.Phone == "":
		return domainErrors.NewMissingField("phone")
	case r.CarType == "":
		return domainErrors.NewMissingField("carType")
	case r.Payment == "":
		return domainErrors.NewMissingField("payment")
	}
	return nil
}

// OrderUseCase implements the order lifecycle: creation with driver
// assignment and pricing, partial updates, cancellation, statistics, and
// age-based retention cleanup. The whole read-modify-write cycle over the
// orders collection is serialized by a mutex; the original implementation had
// none and could lose concurrent writes.
type OrderUseCase struct {
	orders   repository.OrderRepository
	registry *DriverRegistry
	pricing  *PricingCalculator
	ids      *OrderIDGenerator
	now      func() time.Time
	rnd      *rand.Rand
	mu       sync.Mutex
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, registry *DriverRegistry, pricing *PricingCalculator, ids *OrderIDGenerator) *OrderUseCase {
	return newOrderUseCase(orders, registry, pricing, ids, time.Now, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newOrderUseCase(orders repository.OrderRepository, registry *DriverRegistry, pricing *PricingCalculator, ids *OrderIDGenerator, now func() time.Time, rnd *rand.Rand) *OrderUseCase {
	return &OrderUseCase{
		orders:   orders,
		registry: registry,
		pricing:  pricing,
		ids:      ids,
		now:      now,
		rnd:      rnd,
	}
}

// Create validates the request, assigns a random free driver, prices the trip
// and appends the new order to the collection.
func (u *OrderUseCase) Create(ctx context.Context, req CreateOrderRequest) (*model.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	driver, err := u.registry.AssignAvailableDriver(ctx)
	if err != nil {
		return nil, err
	}

	info := driver.Info()
	order := model.Order{
		ID:               u.ids.Next(),
		CreatedAt:        u.now(),
		Status:           model.OrderStatusAccepted,
		Driver:           &info,
		Price:            u.pricing.Price(req.CarType, DefaultDistanceKm),
		EstimatedArrival: etaMinMinutes + u.rnd.Intn(etaMaxMinutes-etaMinMinutes+1),
		FromAddress:      req.From,
		ToAddress:        req.To,
		ClientPhone:      req.Phone,
		CarType:          req.CarType,
		PaymentMethod:    req.Payment,
	}

	orders, err := u.orders.Load(ctx)
	if err != nil {
		return nil, err
	}
	orders = append(orders, order)
	if err := u.orders.Save(ctx, orders); err != nil {
		_ = u.registry.ReleaseDriver(ctx, driver.ID)
		return nil, err
	}
	return &order, nil
}

// Get returns the order with the given id.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.Order, error) {
	orders, err := u.orders.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			order := orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns orders in insertion order, optionally filtered by status and
// truncated to the first limit entries (limit <= 0 means no limit).
func (u *OrderUseCase) List(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
	orders, err := u.orders.Load(ctx)
	if err != nil {
		return nil, err
	}
	if status != "" {
		filtered := make([]model.Order, 0, len(orders))
		for _, o := range orders {
			if o.Status == status {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}
	if limit > 0 && limit < len(orders) {
		orders = orders[:limit]
	}
	return orders, nil
}

// Update merges the given fields into the order, except the immutable id and
// created_at, and stamps updated_at. A merge that flips status to cancelled
// frees the order's snapshot driver.
func (u *OrderUseCase) Update(ctx context.Context, id string, fields map[string]any) error {
	delete(fields, "id")
	delete(fields, "created_at")

	u.mu.Lock()
	defer u.mu.Unlock()

	orders, err := u.orders.Load(ctx)
	if err != nil {
		return err
	}
	for i := range orders {
		if orders[i].ID != id {
			continue
		}

		patch, err := json.Marshal(fields)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(patch, &orders[i]); err != nil {
			return err
		}
		now := u.now()
		orders[i].UpdatedAt = &now

		if status, _ := fields["status"].(string); model.OrderStatus(status) == model.OrderStatusCancelled && orders[i].Driver != nil {
			if err := u.registry.ReleaseDriver(ctx, orders[i].Driver.ID); err != nil {
				return err
			}
		}
		return u.orders.Save(ctx, orders)
	}
	return domainErrors.ErrNotFound
}

// Cancel moves an order to the cancelled state, frees its driver, and stamps
// the cancellation. Terminal orders cannot be cancelled again.
func (u *OrderUseCase) Cancel(ctx context.Context, id, reason string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	orders, err := u.orders.Load(ctx)
	if err != nil {
		return err
	}
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		if orders[i].Status.IsTerminal() {
			return domainErrors.ErrInvalidTransition
		}

		if orders[i].Driver != nil {
			if err := u.registry.ReleaseDriver(ctx, orders[i].Driver.ID); err != nil {
				return err
			}
		}

		now := u.now()
		orders[i].Status = model.OrderStatusCancelled
		orders[i].CancelledAt = &now
		if reason == "" {
			reason = DefaultCancelReason
		}
		orders[i].CancelReason = reason
		return u.orders.Save(ctx, orders)
	}
	return domainErrors.ErrNotFound
}

// Stats aggregates the full order collection.
func (u *OrderUseCase) Stats(ctx context.Context) (*model.Stats, error) {
	orders, err := u.orders.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return &model.Stats{AvgResponseTime: "0 min", CompletionRate: "0%"}, nil
	}

	// "Today" is a calendar-day comparison in server local time, matching the
	// original's string-prefix check on the creation timestamp.
	today := u.now().Format("2006-01-02")

	stats := model.Stats{TotalOrders: len(orders)}
	var priced int
	var priceSum int64
	for _, o := range orders {
		if o.CreatedAt.Format("2006-01-02") == today {
			stats.TodayOrders++
		}
		switch o.Status {
		case model.OrderStatusCompleted:
			stats.CompletedOrders++
		case model.OrderStatusCancelled:
			stats.CancelledOrders++
		}
		if o.Price > 0 {
			priced++
			priceSum += o.Price
		}
	}

	if priced > 0 {
		stats.AvgPrice = math.Round(float64(priceSum)/float64(priced)*100) / 100
	}
	rate := float64(stats.CompletedOrders) / float64(len(orders)) * 100
	stats.CompletionRate = strconv.FormatFloat(math.Round(rate*10)/10, 'f', 1, 64) + "%"
	// Placeholder until response times are tracked per order.
	stats.AvgResponseTime = "7 min"
	return &stats, nil
}

// Cleanup drops orders created strictly earlier than maxAgeDays ago and
// reports how many were removed and how many remain.
func (u *OrderUseCase) Cleanup(ctx context.Context, maxAgeDays int) (removed, remaining int, err error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	orders, err := u.orders.Load(ctx)
	if err != nil {
		return 0, 0, err
	}

	cutoff := u.now().Add(-time.Duration(maxAgeDays) * 24 * time.Hour)
	kept := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if !o.CreatedAt.Before(cutoff) {
			kept = append(kept, o)
		}
	}
	if err := u.orders.Save(ctx, kept); err != nil {
		return 0, 0, err
	}
	return len(orders) - len(kept), len(kept), nil
}
