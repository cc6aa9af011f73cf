package usecase

import (
	"context"
	"math/rand"
	"sync"
	"time"

	domainErrors "github.com/53400755Maria/taxi-service/internal/domain/errors"
	"github.com/53400755Maria/taxi-service/internal/domain/model"
	"github.com/53400755Maria/taxi-service/internal/domain/repository"
)

// DriverRegistry exposes the current driver roster and its status transitions.
// Every mutation runs a full load-modify-save cycle under a single mutex so
// concurrent requests cannot overwrite each other's roster writes.
type DriverRegistry struct {
	drivers repository.DriverRepository
	now     func() time.Time
	rnd     *rand.Rand
	mu      sync.Mutex
}

// NewDriverRegistry constructs DriverRegistry.
func NewDriverRegistry(drivers repository.DriverRepository) *DriverRegistry {
	return newDriverRegistry(drivers, time.Now, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newDriverRegistry(drivers repository.DriverRepository, now func() time.Time, rnd *rand.Rand) *DriverRegistry {
	return &DriverRegistry{drivers: drivers, now: now, rnd: rnd}
}

// List returns drivers, optionally filtered by status ("" returns all).
func (r *DriverRegistry) List(ctx context.Context, status model.DriverStatus) ([]model.Driver, error) {
	drivers, err := r.drivers.Load(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return drivers, nil
	}
	filtered := make([]model.Driver, 0, len(drivers))
	for _, d := range drivers {
		if d.Status == status {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

// SetStatus updates a driver's availability. Unknown statuses are rejected;
// unknown driver ids return ErrNotFound (the original service silently
// acknowledged them, see DESIGN.md).
func (r *DriverRegistry) SetStatus(ctx context.Context, driverID string, status model.DriverStatus) error {
	if !model.ValidDriverStatus(status) {
		return domainErrors.ErrInvalidStatus
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	drivers, err := r.drivers.Load(ctx)
	if err != nil {
		return err
	}
	for i := range drivers {
		if drivers[i].ID == driverID {
			now := r.now()
			drivers[i].Status = status
			drivers[i].StatusUpdatedAt = &now
			return r.drivers.Save(ctx, drivers)
		}
	}
	return domainErrors.ErrNotFound
}

// AssignAvailableDriver picks uniformly at random among free drivers, marks
// the pick busy, persists the roster, and returns the pick. Selection is
// random, not geospatial: the service has no live driver positions to rank by.
func (r *DriverRegistry) AssignAvailableDriver(ctx context.Context) (*model.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	drivers, err := r.drivers.Load(ctx)
	if err != nil {
		return nil, err
	}
	free := make([]int, 0, len(drivers))
	for i := range drivers {
		if drivers[i].Status == model.DriverStatusFree {
			free = append(free, i)
		}
	}
	if len(free) == 0 {
		return nil, domainErrors.ErrNoDriverAvailable
	}

	idx := free[r.rnd.Intn(len(free))]
	now := r.now()
	drivers[idx].Status = model.DriverStatusBusy
	drivers[idx].StatusUpdatedAt = &now
	if err := r.drivers.Save(ctx, drivers); err != nil {
		return nil, err
	}
	picked := drivers[idx]
	return &picked, nil
}

// ReleaseDriver returns a driver to the free pool after their order reached a
// terminal state. A missing driver is a no-op: the order keeps only a
// snapshot and the live record may have been rotated out since assignment.
func (r *DriverRegistry) ReleaseDriver(ctx context.Context, driverID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	drivers, err := r.drivers.Load(ctx)
	if err != nil {
		return err
	}
	for i := range drivers {
		if drivers[i].ID == driverID {
			now := r.now()
			drivers[i].Status = model.DriverStatusFree
			drivers[i].StatusUpdatedAt = &now
			return r.drivers.Save(ctx, drivers)
		}
	}
	return nil
}
