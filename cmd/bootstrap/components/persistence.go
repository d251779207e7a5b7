package components

import (
	"compute-market/internal/infra/readstore"
	sqlc "compute-market/internal/infra/sqlc/generated"
	"compute-market/internal/infra/uow"
	"compute-market/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// SupplyOffer
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SupplyOfferReadQueries)),
		),
		fx.Annotate(
			readstore.NewSupplyOfferReadStore,
			fx.As(new(queries.SupplyOfferReadStore)),
		),
		// DemandRequest
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.DemandRequestReadQueries)),
		),
		fx.Annotate(
			readstore.NewDemandRequestReadStore,
			fx.As(new(queries.DemandRequestReadStore)),
		),
		// Match
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MatchReadQueries)),
		),
		fx.Annotate(
			readstore.NewMatchReadStore,
			fx.As(new(queries.MatchReadStore)),
		),
		// Transaction
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TransactionReadQueries)),
		),
		fx.Annotate(
			readstore.NewTransactionReadStore,
			fx.As(new(queries.TransactionReadStore)),
		),
		// Stats
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.StatsReadQueries)),
		),
		fx.Annotate(
			readstore.NewStatsReadStore,
			fx.As(new(queries.StatsReadStore)),
		),
	),
)

// Write-side repositories are built per transaction by the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
