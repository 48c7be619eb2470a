package cmd

import (
	"context"
	"fmt"

	"pass-finder/core/availability"
	"pass-finder/core/config"
	"pass-finder/core/database"
	"pass-finder/core/logger"
	"pass-finder/core/metrics"
	"pass-finder/core/registry"
	"pass-finder/core/storage"
	"pass-finder/feature/sources"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime bundles everything a command needs to run aggregation cycles.
type runtime struct {
	cfg      *config.Config
	logger   *zap.Logger
	db       *gorm.DB
	store    storage.Client
	registry *registry.Registry
	systems  []availability.SystemConfig
	prom     *prometheus.Registry
	metrics  *metrics.Metrics
	engine   *availability.Engine
}

// bootstrap loads the configuration and builds the aggregation pipeline. The database
// is optional; a failed connection is logged and the registry falls back to the other
// sources.
func bootstrap(ctx context.Context) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logg)

	rt := &runtime{cfg: cfg, logger: logg}

	if cfg.Database.Enabled {
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			rt.db = conn
			logg.Info("Connected to registry database", zap.String("driver", cfg.Database.Driver))
		}
	}

	rt.store, err = storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, err
	}

	rt.registry, err = registry.Load(ctx, cfg.Registry, rt.store, cfg.Storage.Bucket, rt.db)
	if err != nil {
		return nil, fmt.Errorf("failed to load location registry: %w", err)
	}
	logg.Info("Location registry loaded",
		zap.String("source", cfg.Registry.Source),
		zap.Int("locations", rt.registry.Len()),
	)

	rt.systems, err = sources.LoadSystems(cfg.Sources.SystemsFile)
	if err != nil {
		return nil, err
	}

	rt.prom = prometheus.NewRegistry()
	rt.prom.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rt.metrics = metrics.New(rt.prom)

	srcs := sources.New(cfg.Sources, cfg.Scrape, logg)
	rt.engine, err = availability.NewEngine(sources.EngineConfig(cfg.Sources, rt.systems), rt.registry, srcs, logg, rt.metrics)
	if err != nil {
		return nil, err
	}

	return rt, nil
}
