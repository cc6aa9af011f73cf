package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/53400755Maria/taxi-service/internal/config"
	"github.com/53400755Maria/taxi-service/internal/domain/repository"
	"github.com/53400755Maria/taxi-service/internal/storage/file"
	"github.com/53400755Maria/taxi-service/internal/storage/postgres"
)

// Module wires the storage backend and repository adapters. PostgreSQL is
// used when a database URI is configured, the JSON document files otherwise.
var Module = fx.Options(
	fx.Provide(newFactory),
	fx.Provide(
		func(f repository.Factory) repository.OrderRepository { return f.Orders() },
		func(f repository.Factory) repository.DriverRepository { return f.Drivers() },
	),
	fx.Invoke(registerLifecycle),
)

type factoryParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newFactory(p factoryParams) (repository.Factory, error) {
	if p.Config.DatabaseURI != "" {
		return postgres.New(p.Ctx, p.Config.DatabaseURI, p.Logger)
	}
	return file.New(p.Config.OrdersFile, p.Config.DriversFile, p.Logger), nil
}

func registerLifecycle(lc fx.Lifecycle, factory repository.Factory) {
	pg, ok := factory.(*postgres.Storage)
	if !ok {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return pg.HealthCheck(ctx)
		},
		OnStop: func(ctx context.Context) error {
			pg.Close()
			return nil
		},
	})
}
