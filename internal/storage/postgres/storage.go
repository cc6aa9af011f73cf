package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/53400755Maria/taxi-service/internal/domain/model"
	"github.com/53400755Maria/taxi-service/internal/domain/repository"
)

// DBPool is the subset of pgxpool.Pool used by the storage. Tests substitute
// a pgxmock pool through the same interface.
type DBPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL. Collections keep
// their document semantics: one JSONB row per record, and Save replaces the
// whole collection inside a transaction, so the last writer still wins like
// with the on-disk documents.
type Storage struct {
	pool   DBPool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

type driverRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Orders returns the orders collection repository.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

// Drivers returns the drivers collection repository.
func (s *Storage) Drivers() repository.DriverRepository {
	return &driverRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            position BIGSERIAL PRIMARY KEY,
            id TEXT NOT NULL,
            doc JSONB NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS drivers (
            position BIGSERIAL PRIMARY KEY,
            id TEXT NOT NULL,
            doc JSONB NOT NULL
        )`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func (r *orderRepository) Load(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT doc FROM orders ORDER BY position`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var o model.Order
		if err := json.Unmarshal(doc, &o); err != nil {
			r.storage.logger.Warn("order row unparsable, skipping", slog.String("error", err.Error()))
			continue
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) Save(ctx context.Context, orders []model.Order) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM orders`); err != nil {
			return err
		}
		for _, o := range orders {
			doc, err := json.Marshal(o)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, `INSERT INTO orders (id, doc) VALUES ($1, $2)`, o.ID, doc); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *driverRepository) Load(ctx context.Context) ([]model.Driver, error) {
	const query = `SELECT doc FROM drivers ORDER BY position`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := []model.Driver{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var d model.Driver
		if err := json.Unmarshal(doc, &d); err != nil {
			r.storage.logger.Warn("driver row unparsable, skipping", slog.String("error", err.Error()))
			continue
		}
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(drivers) == 0 {
		defaults := model.DefaultDrivers()
		if err := r.Save(ctx, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	return drivers, nil
}

func (r *driverRepository) Save(ctx context.Context, drivers []model.Driver) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM drivers`); err != nil {
			return err
		}
		for _, d := range drivers {
			doc, err := json.Marshal(d)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, `INSERT INTO drivers (id, doc) VALUES ($1, $2)`, d.ID, doc); err != nil {
				return err
			}
		}
		return nil
	})
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
