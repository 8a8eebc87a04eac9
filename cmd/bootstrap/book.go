package bootstrap

import (
	"library-platform/internal/handler"
	"library-platform/internal/handler/api"
	"library-platform/internal/infra/readstore"
	"library-platform/internal/infra/repository"
	"library-platform/internal/pkg/config"
	"library-platform/internal/usecase/commands"
	"library-platform/internal/usecase/queries"

	"go.uber.org/fx"
)

var BookModule = fx.Options(
	fx.Provide(
		config.LoadBookConfig,
		func(cfg config.BookConfig) config.DBConfig { return cfg.DB },
		func(cfg config.BookConfig) config.ServerConfig { return cfg.Server },
		NewDB,
		fx.Annotate(
			repository.NewBookRepository,
			fx.As(new(commands.BookRepository)),
		),
		fx.Annotate(
			readstore.NewBookReadStore,
			fx.As(new(queries.BookReadStore)),
		),
		commands.NewBookCommands,
		queries.NewBookQueries,
		api.NewBookHandler,
	),
	fx.Invoke(handler.NewBookRouter),
)
