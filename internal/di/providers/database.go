package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/grammatica/grammatica-server/internal/config"
	"github.com/grammatica/grammatica-server/internal/logger"
	"github.com/grammatica/grammatica-server/internal/store/sqldb"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*sqldb.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore opens the configured database and applies the schema.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	db, err := sqldb.Open(ctx, sqldb.OptionsFromConfig(cfg.Database), log.Logger)
	if err != nil {
		return nil, err
	}

	if cfg.Database.Driver == config.DriverSQLite {
		log.Info("Database initialized", "driver", db.Driver(), "path", cfg.Database.Path)
	} else {
		log.Info("Database initialized", "driver", db.Driver(), "host", cfg.Database.Host, "name", cfg.Database.Name)
	}

	return &StoreHandle{Store: db}, nil
}
