package di

import (
	"go.uber.org/fx"

	"github.com/53400755Maria/taxi-service/internal/app"
	"github.com/53400755Maria/taxi-service/internal/config"
	"github.com/53400755Maria/taxi-service/internal/logger"
	"github.com/53400755Maria/taxi-service/internal/server/http/handlers"
	"github.com/53400755Maria/taxi-service/internal/server/http/router"
	"github.com/53400755Maria/taxi-service/internal/storage"
	"github.com/53400755Maria/taxi-service/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		storage.Module,
		usecase.Module,
		fx.Provide(func(facade *app.TaxiFacade) handlers.TaxiFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
