package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"pass-finder/core/availability"
	"pass-finder/core/loader"
	"pass-finder/core/middleware/rayid"
	"pass-finder/core/middleware/requestlog"
	"pass-finder/core/resolver"
	availabilityFeature "pass-finder/feature/availability"
	"pass-finder/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "pass-finder/docs/swagger"
)

// @title Pass Finder API
// @version 1.0
// @description Unified museum and park pass availability across Bay Area library systems.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the pass finder server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		logg := rt.logger
		defer logg.Sync()

		cache := availability.NewCache(rt.engine, rt.cfg.Cache.TTL(), rt.metrics)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ReadTimeout:           rt.cfg.Server.ReadTimeout(),
			WriteTimeout:          rt.cfg.Server.WriteTimeout(),
		})

		// RayID must be first to trace everything
		app.Use(rayid.New())
		app.Use(requestlog.New(logg))

		if rt.cfg.Server.Swagger {
			app.Get("/swagger/*", swagger.HandlerDefault)
		}
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(rt.prom, promhttp.HandlerOpts{})))

		mgr := loader.NewManager(logg)
		mgr.Register(availabilityFeature.NewFeature(cache, logg))
		mgr.Register(integrity.NewFeature(integrity.NewService(
			rt.engine.Registry(), rt.engine.Systems(), resolver.DefaultAliases,
			rt.store, rt.cfg.Storage, rt.cfg.Registry.Object, rt.db, logg,
		)))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		go func() {
			logg.Info("Starting server",
				zap.String("port", rt.cfg.Server.Port),
				zap.Duration("cache_ttl", cache.TTL()),
				zap.Int("systems", len(rt.engine.Systems())),
			)
			if err := app.Listen(rt.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
