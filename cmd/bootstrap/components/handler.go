package components

import (
	"compute-market/internal/handler"
	"compute-market/internal/handler/api"
	"compute-market/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSupplyHandler,
		api.NewDemandHandler,
		api.NewMatchHandler,
		api.NewTransactionHandler,
		api.NewStatsHandler,
		api.NewWalletHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
