package bootstrap

import (
	"library-platform/internal/handler"
	"library-platform/internal/handler/api"
	"library-platform/internal/infra/readstore"
	"library-platform/internal/infra/remote"
	"library-platform/internal/infra/repository"
	"library-platform/internal/pkg/clock"
	"library-platform/internal/pkg/config"
	"library-platform/internal/usecase/commands"
	"library-platform/internal/usecase/queries"

	"go.uber.org/fx"
)

var ReviewModule = fx.Options(
	fx.Provide(
		config.LoadReviewConfig,
		func(cfg config.ReviewConfig) config.DBConfig { return cfg.DB },
		func(cfg config.ReviewConfig) config.ServerConfig { return cfg.Server },
		func(cfg config.ReviewConfig) config.RemoteConfig { return cfg.Remote },
		NewDB,
		clock.NewRealClock,
		fx.Annotate(
			remote.NewClient,
			fx.As(new(commands.UserSource)),
			fx.As(new(commands.BookSource)),
		),
		fx.Annotate(
			repository.NewReviewRepository,
			fx.As(new(commands.ReviewRepository)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		commands.NewReviewCommands,
		queries.NewReviewQueries,
		api.NewReviewHandler,
	),
	fx.Invoke(handler.NewReviewRouter),
)
