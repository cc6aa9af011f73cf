package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/53400755Maria/taxi-service/internal/domain/model"
	"github.com/53400755Maria/taxi-service/internal/domain/repository"
)

// Storage keeps the orders and drivers collections as two JSON documents on
// disk. Every save rewrites the whole document; every load reads it back in
// full. A missing or unparsable orders file degrades to an empty collection, a
// missing drivers file is seeded with the default roster, and an unparsable
// one falls back to the roster without overwriting the broken file.
type Storage struct {
	ordersPath  string
	driversPath string
	logger      *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

type driverRepository struct {
	storage *Storage
}

// New creates file-backed storage rooted at the two document paths.
func New(ordersPath, driversPath string, logger *slog.Logger) *Storage {
	return &Storage{ordersPath: ordersPath, driversPath: driversPath, logger: logger}
}

// Orders returns the orders document repository.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

// Drivers returns the drivers document repository.
func (s *Storage) Drivers() repository.DriverRepository {
	return &driverRepository{storage: s}
}

func (r *orderRepository) Load(ctx context.Context) ([]model.Order, error) {
	data, err := os.ReadFile(r.storage.ordersPath)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.Order{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read orders document: %w", err)
	}

	var orders []model.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		r.storage.logger.Warn("orders document unparsable, starting empty",
			slog.String("path", r.storage.ordersPath),
			slog.String("error", err.Error()),
		)
		return []model.Order{}, nil
	}
	return orders, nil
}

func (r *orderRepository) Save(ctx context.Context, orders []model.Order) error {
	if orders == nil {
		orders = []model.Order{}
	}
	return writeDocument(r.storage.ordersPath, orders)
}

func (r *driverRepository) Load(ctx context.Context) ([]model.Driver, error) {
	data, err := os.ReadFile(r.storage.driversPath)
	if errors.Is(err, fs.ErrNotExist) {
		defaults := model.DefaultDrivers()
		if err := writeDocument(r.storage.driversPath, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read drivers document: %w", err)
	}

	var drivers []model.Driver
	if err := json.Unmarshal(data, &drivers); err != nil {
		r.storage.logger.Warn("drivers document unparsable, using default roster",
			slog.String("path", r.storage.driversPath),
			slog.String("error", err.Error()),
		)
		return model.DefaultDrivers(), nil
	}
	return drivers, nil
}

func (r *driverRepository) Save(ctx context.Context, drivers []model.Driver) error {
	if drivers == nil {
		drivers = []model.Driver{}
	}
	return writeDocument(r.storage.driversPath, drivers)
}

// writeDocument rewrites the document atomically: marshal, write a sibling
// temp file, rename over the target.
func writeDocument(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create document dir: %w", err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}
