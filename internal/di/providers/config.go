// Package providers contains dependency injection providers for the Grammatica server.
package providers

import (
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/grammatica/grammatica-server/internal/config"
	"github.com/grammatica/grammatica-server/internal/logger"
)

// ProvideConfig returns a provider that loads the configuration from args.
func ProvideConfig(args []string) do.Provider[*config.Config] {
	return func(do.Injector) (*config.Config, error) {
		return config.LoadConfig(args)
	}
}

// ProvideLogger provides the structured logger and installs it as the slog default.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
	})
	slog.SetDefault(log.Logger)

	log.Info("Starting Grammatica server",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"data_path", cfg.Data.Path,
		"db_driver", cfg.Database.Driver,
	)

	return log, nil
}
