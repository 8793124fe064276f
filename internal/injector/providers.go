package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/bestiary/internal/config"
	"github.com/zeusync/bestiary/internal/core/catalog"
	"github.com/zeusync/bestiary/internal/core/observability/log"
	"github.com/zeusync/bestiary/internal/core/prototype"
)

// App bundles everything a CLI command needs.
type App struct {
	Logger   *log.Logger
	Registry *prototype.Registry
	Catalog  *catalog.Catalog
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideRegistry,
	ProvideCatalog,
	wire.Struct(new(App), "*"),
)

func ProvideLogger(cfg config.Config) *log.Logger {
	return log.New(cfg.Level())
}

func ProvideRegistry(logger *log.Logger) *prototype.Registry {
	return prototype.NewRegistry(logger)
}

// ProvideCatalog loads cfg.Catalog, or the built-in catalog when unset.
func ProvideCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(cfg.Catalog)
}
