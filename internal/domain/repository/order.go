package repository

import (
	"context"

	"github.com/53400755Maria/taxi-service/internal/domain/model"
)

// OrderRepository persists the orders collection as a single document.
// Load returns the full collection; Save overwrites it entirely. There is no
// partial update: callers run a read-modify-write cycle and the storage keeps
// last-writer-wins semantics.
type OrderRepository interface {
	Load(ctx context.Context) ([]model.Order, error)
	Save(ctx context.Context, orders []model.Order) error
}
