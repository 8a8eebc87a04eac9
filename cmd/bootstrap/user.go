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

var UserModule = fx.Options(
	fx.Provide(
		config.LoadUserConfig,
		func(cfg config.UserConfig) config.DBConfig { return cfg.DB },
		func(cfg config.UserConfig) config.ServerConfig { return cfg.Server },
		NewDB,
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		commands.NewUserCommands,
		queries.NewUserQueries,
		api.NewUserHandler,
	),
	fx.Invoke(handler.NewUserRouter),
)
