package providers

import (
	"github.com/samber/do/v2"

	"github.com/grammatica/grammatica-server/internal/auth"
	"github.com/grammatica/grammatica-server/internal/config"
	"github.com/grammatica/grammatica-server/internal/logger"
	"github.com/grammatica/grammatica-server/internal/metrics"
	"github.com/grammatica/grammatica-server/internal/service"
	"github.com/grammatica/grammatica-server/internal/validation"
)

// ProvideValidator provides the shared request validator.
func ProvideValidator(do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvideMetrics provides the Prometheus collectors, including runtime metrics.
func ProvideMetrics(do.Injector) (*metrics.Metrics, error) {
	return metrics.New(true), nil
}

// ProvideCatalog provides the resource services.
func ProvideCatalog(i do.Injector) (*service.Catalog, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	v := do.MustInvoke[*validation.Validator](i)
	m := do.MustInvoke[*metrics.Metrics](i)

	return service.NewCatalog(storeHandle.Store, v, service.CatalogOptions{
		PageSize: cfg.Pagination.PageSize,
		Recorder: m,
		Logger:   log.WithComponent("service").Logger,
	}), nil
}

// ProvideAuthService provides login and token verification.
func ProvideAuthService(i do.Injector) (*service.AuthService, error) {
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	tokens := do.MustInvoke[*auth.TokenService](i)
	v := do.MustInvoke[*validation.Validator](i)
	m := do.MustInvoke[*metrics.Metrics](i)

	return service.NewAuthService(storeHandle.Store, tokens, v, m, log.WithComponent("auth").Logger), nil
}
