package repository

import (
	"context"

	"github.com/53400755Maria/taxi-service/internal/domain/model"
)

// DriverRepository persists the driver roster as a single document.
// Load falls back to the built-in default roster when nothing usable is
// persisted yet; Save overwrites the whole roster.
type DriverRepository interface {
	Load(ctx context.Context) ([]model.Driver, error)
	Save(ctx context.Context, drivers []model.Driver) error
}
