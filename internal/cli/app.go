package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/commerce"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/logger"
	"github.com/nikolayk812/storefront/internal/metrics"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/pricing"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/currency"
)

// Commerce is the remote side the CLI talks to for products and orders.
type Commerce interface {
	port.ProductLookup
	port.OrderSubmitter
}

// App carries the process-wide dependencies shared by every command.
type App struct {
	Config   *config.Config
	Logger   *logger.Logger
	Metrics  *metrics.CartMetrics
	Gatherer prometheus.Gatherer

	// MetricsFile receives a prometheus textfile dump in FlushMetrics.
	MetricsFile string

	// OpenSlot and OpenCommerce are replaced in tests.
	OpenSlot     func(ctx context.Context) (port.CartSlot, func(), error)
	OpenCommerce func() (Commerce, error)
}

// NewApp registers the cart metrics on reg. A nil reg disables metrics.
func NewApp(cfg *config.Config, logg *logger.Logger, reg *prometheus.Registry) *App {
	if logg == nil {
		logg = logger.Nop()
	}

	app := &App{
		Config:      cfg,
		Logger:      logg,
		MetricsFile: cfg.App.MetricsFile,
	}
	if reg != nil {
		app.Metrics = metrics.NewCartMetrics(reg)
		app.Gatherer = reg
	}
	app.OpenSlot = app.openSlot
	app.OpenCommerce = func() (Commerce, error) {
		client, err := commerce.NewClient(cfg.Commerce)
		if err != nil {
			return nil, fmt.Errorf("commerce.NewClient: %w", err)
		}
		return client, nil
	}

	return app
}

// FlushMetrics writes the gathered metrics to MetricsFile in the node
// exporter textfile format. It is a no-op without a file or a registry.
func (a *App) FlushMetrics() error {
	if a.MetricsFile == "" || a.Gatherer == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.MetricsFile, a.Gatherer); err != nil {
		return fmt.Errorf("prometheus.WriteToTextfile: %w", err)
	}
	return nil
}

func (a *App) openSlot(ctx context.Context) (port.CartSlot, func(), error) {
	cfg := a.Config

	switch strings.ToLower(cfg.Slot.Backend) {
	case config.SlotBackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.DB.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("pgxpool.New: %w", err)
		}
		return repository.NewCart(pool), pool.Close, nil

	case config.SlotBackendRedis:
		client, err := repository.OpenRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		closer := func() {
			if err := client.Close(); err != nil {
				a.Logger.Error(ctx, "failed to close redis client", err)
			}
		}
		return repository.NewRedisCart(client, cfg.Slot.TTL), closer, nil

	case config.SlotBackendSQLite:
		slot, err := repository.OpenSQLiteCart(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		closer := func() {
			if err := slot.Close(); err != nil {
				a.Logger.Error(ctx, "failed to close sqlite slot", err)
			}
		}
		return slot, closer, nil
	}

	return nil, nil, fmt.Errorf("unknown slot backend %q", cfg.Slot.Backend)
}

func (a *App) couponCatalog() (pricing.Catalog, error) {
	path := a.Config.Coupons.CatalogPath
	if path == "" {
		return pricing.DefaultCatalog(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return pricing.Catalog{}, fmt.Errorf("os.Open: %w", err)
	}
	defer f.Close()

	catalog, err := pricing.LoadCatalog(f)
	if err != nil {
		return pricing.Catalog{}, fmt.Errorf("pricing.LoadCatalog[%s]: %w", path, err)
	}
	return catalog, nil
}

func (a *App) currency() (currency.Unit, error) {
	unit, err := currency.ParseISO(a.Config.App.Currency)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("currency.ParseISO: %w", err)
	}
	return unit, nil
}
