package bootstrap

import (
	"log/slog"

	"compute-market/internal/handler/middleware"
	"compute-market/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		newLogConfig,
		middleware.NewLogger,
		NewSlogLogger,
	),
)

func NewSlogLogger(logger *middleware.Logger) *slog.Logger {
	return logger.GetSlogLogger()
}

func newLogConfig(cfg config.Config) config.LogConfig {
	return cfg.Log
}
