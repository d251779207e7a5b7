package components

import (
	"time"

	"compute-market/internal/pkg/clock"
	"compute-market/internal/pkg/config"
	"compute-market/internal/usecase"
	"compute-market/internal/usecase/commands"
	"compute-market/internal/usecase/queries"
	"compute-market/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		newAuthCommands,
		commands.NewSupplyOfferCommands,
		commands.NewDemandRequestCommands,
		commands.NewMatchCommands,
		commands.NewTransactionCommands,
		commands.NewSettlementCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSupplyOfferQueries,
		queries.NewDemandRequestQueries,
		queries.NewMatchQueries,
		queries.NewTransactionQueries,
		queries.NewStatsQueries,
		queries.NewWalletQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func newAuthCommands(uow shared.UnitOfWork, tokens commands.TokenIssuer, clk clock.Clock, cfg config.Config) commands.AuthCommands {
	nonceTTL := cfg.JWT.NonceTTL
	if nonceTTL <= 0 {
		nonceTTL = 10 * time.Minute
	}
	return commands.NewAuthCommands(uow, tokens, clk, nonceTTL)
}
