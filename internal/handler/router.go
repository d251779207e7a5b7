package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"compute-market/internal/handler/api"
	"compute-market/internal/handler/middleware"
	"compute-market/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers so fx can inject them as one parameter.
type Handlers struct {
	fx.In

	Auth        *api.AuthHandler
	Supply      *api.SupplyHandler
	Demand      *api.DemandHandler
	Match       *api.MatchHandler
	Transaction *api.TransactionHandler
	Stats       *api.StatsHandler
	Wallet      *api.WalletHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := []gin.HandlerFunc{authMiddleware.RequireAuth()}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/nonce", Handler: h.Auth.Nonce},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: requireAuth},
			})
		}

		supply := apiGroup.Group("/supply")
		{
			addRoutes(supply, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Supply.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Supply.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Supply.Create, Mw: requireAuth},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Supply.Update, Mw: requireAuth},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Supply.Delete, Mw: requireAuth},
			})
		}

		demand := apiGroup.Group("/demand")
		{
			addRoutes(demand, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Demand.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Demand.Get},
				{Method: http.MethodGet, Path: "/:id/candidates", Handler: h.Demand.Candidates},
				{Method: http.MethodPost, Path: "", Handler: h.Demand.Create, Mw: requireAuth},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Demand.Update, Mw: requireAuth},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Demand.Delete, Mw: requireAuth},
				{Method: http.MethodPost, Path: "/:id/auto-match", Handler: h.Demand.AutoMatch, Mw: requireAuth},
			})
		}

		matches := apiGroup.Group("/matches")
		{
			addRoutes(matches, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Match.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Match.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Match.Create, Mw: requireAuth},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Match.Update, Mw: requireAuth},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Match.Delete, Mw: requireAuth},
			})
		}

		transactions := apiGroup.Group("/transactions")
		{
			addRoutes(transactions, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Transaction.List},
				{Method: http.MethodPost, Path: "", Handler: h.Transaction.Create, Mw: requireAuth},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/stats", Handler: h.Stats.Get},
			{Method: http.MethodGet, Path: "/wallets/:address/usdc-balance", Handler: h.Wallet.USDCBalance},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
