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

var LoanModule = fx.Options(
	fx.Provide(
		config.LoadLoanConfig,
		func(cfg config.LoanConfig) config.DBConfig { return cfg.DB },
		func(cfg config.LoanConfig) config.ServerConfig { return cfg.Server },
		func(cfg config.LoanConfig) config.RemoteConfig { return cfg.Remote },
		NewDB,
		clock.NewRealClock,
		fx.Annotate(
			remote.NewClient,
			fx.As(new(commands.UserSource)),
			fx.As(new(commands.BookSource)),
		),
		fx.Annotate(
			repository.NewLoanRepository,
			fx.As(new(commands.LoanRepository)),
		),
		fx.Annotate(
			readstore.NewLoanReadStore,
			fx.As(new(queries.LoanReadStore)),
		),
		commands.NewLoanCommands,
		queries.NewLoanQueries,
		api.NewLoanHandler,
	),
	fx.Invoke(handler.NewLoanRouter),
)
