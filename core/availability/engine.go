package availability

import (
	"context"
	"fmt"
	"time"

	"pass-finder/core/logger"
	"pass-finder/core/metrics"
	"pass-finder/core/registry"
	"pass-finder/core/resolver"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Engine runs aggregation cycles: it fans out one adapter call per configured
// (system, pass type) pair, waits for all of them and merges the results.
type Engine struct {
	cfg      Config
	registry *registry.Registry
	sources  map[Kind]Source
	merger   Merger
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

// NewEngine validates the configuration and builds an engine. The source map is copied;
// a kind without a source yields no data for its systems.
func NewEngine(cfg Config, reg *registry.Registry, sources map[Kind]Source, l *zap.Logger, m *metrics.Metrics) (*Engine, error) {
	if reg == nil {
		return nil, fmt.Errorf("engine requires a location registry")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid availability config: %w", err)
	}
	if l == nil {
		l = zap.NewNop()
	}
	cfg = cfg.withDefaults()

	srcs := make(map[Kind]Source, len(sources))
	for k, s := range sources {
		srcs[k] = s
	}

	return &Engine{
		cfg:      cfg,
		registry: reg,
		sources:  srcs,
		merger: Merger{
			Resolver:  resolver.New(reg, cfg.Aliases),
			PassTypes: cfg.PassTypes,
			Logger:    l,
			Metrics:   m,
		},
		logger:  l,
		metrics: m,
	}, nil
}

// GetUnifiedAvailability runs one full aggregation cycle. Adapter failures never surface
// here; the only error is a cancelled or expired ctx.
func (e *Engine) GetUnifiedAvailability(ctx context.Context) ([]Record, error) {
	start := time.Now()
	jobs := e.cfg.jobs()
	results := make([]SourceResult, len(jobs))

	var g errgroup.Group
	if e.cfg.MaxConcurrency > 0 {
		g.SetLimit(e.cfg.MaxConcurrency)
	}
	for i, j := range jobs {
		g.Go(func() error {
			results[i] = e.fetch(ctx, j)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := e.merger.Merge(e.registry.Locations(), e.cfg.Systems, results)
	e.metrics.Refreshed()
	e.logger.Info("Aggregation cycle completed",
		zap.Int("sources", len(jobs)),
		zap.Int("locations", len(records)),
		zap.Duration("duration", time.Since(start)))

	return records, nil
}

// fetch runs one adapter call in isolation. A panicking adapter yields no data.
func (e *Engine) fetch(ctx context.Context, j job) (result SourceResult) {
	result = SourceResult{System: j.req.System, Pass: j.req.Pass, Source: string(j.kind)}
	log := logger.WithSource(e.logger, string(j.kind), j.req.System, string(j.req.Pass))

	src, ok := e.sources[j.kind]
	if !ok {
		log.Warn("No source registered for kind")
		e.metrics.ObserveFetch(string(j.kind), j.req.System, string(j.req.Pass), metrics.OutcomeMissing, 0)
		return result
	}
	result.Source = src.Name()

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			log.Error("Source panicked", zap.Any("panic", r))
			result.Facts = nil
			e.metrics.ObserveFetch(src.Name(), j.req.System, string(j.req.Pass), metrics.OutcomePanic, time.Since(start))
		}
	}()

	fctx := ctx
	if e.cfg.SourceTimeout > 0 {
		var cancel context.CancelFunc
		fctx, cancel = context.WithTimeout(ctx, e.cfg.SourceTimeout)
		defer cancel()
	}

	result.Facts = src.Fetch(fctx, j.req)

	outcome := metrics.OutcomeOK
	if len(result.Facts) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	e.metrics.ObserveFetch(src.Name(), j.req.System, string(j.req.Pass), outcome, time.Since(start))
	log.Debug("Source fetched", zap.Int("facts", len(result.Facts)), zap.Duration("duration", time.Since(start)))

	return result
}

// Registry returns the location registry the engine merges into.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Systems returns a copy of the configured library systems.
func (e *Engine) Systems() []SystemConfig {
	return e.cfg.withDefaults().Systems
}
