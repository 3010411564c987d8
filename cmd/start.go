package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"post-sync/core/config"
	"post-sync/core/database"
	"post-sync/core/loader"
	"post-sync/core/logger"
	"post-sync/core/metrics"
	"post-sync/core/middleware/auth"
	"post-sync/core/middleware/rayid"
	"post-sync/core/notify"
	"post-sync/core/options"
	"post-sync/core/transport"

	"post-sync/feature/content"
	"post-sync/feature/postsync"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "post-sync/docs/swagger"
)

// @title Post Sync API
// @version 1.0
// @description API for syncing external records into the content store.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the post sync server",
	Long:  `Starts the HTTP server, the sync scheduler, and all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}

		// 4. Migrations
		opts := options.NewStore(db, time.Duration(cfg.Sync.CacheSeconds)*time.Second)
		if err := opts.Migrate(); err != nil {
			logg.Fatal("Failed to migrate options table", zap.Error(err))
		}
		store := content.NewStore(db, logg)
		if err := store.Migrate(); err != nil {
			logg.Fatal("Failed to migrate content tables", zap.Error(err))
		}

		// 5. Metrics Registry
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		// 6. Wire the Sync Engine
		client := transport.NewClient(cfg.Transport)
		notifier := notify.New(cfg.Notify, logg)
		engine := postsync.NewEngine(cfg.Sync.ChunkSize, opts, client, store,
			notifier, metrics.NewSync(registry), logg)
		scheduler := postsync.NewScheduler(engine, logg)
		service := postsync.NewService(engine, opts, scheduler, logg)

		// 7. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// RayID first so every request is traceable.
		app.Use(rayid.New())

		// Request logging with Zap + RayID.
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger documentation and metrics stay public.
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

		// Auth (protect the API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 8. Load Features
		mgr := loader.NewManager()
		mgr.Register(postsync.NewFeature(service))
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start the Scheduler
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		interval := time.Duration(cfg.Sync.IntervalMinutes) * time.Minute
		if stored, err := service.Interval(ctx); err != nil {
			logg.Warn("Failed to read stored sync interval", zap.Error(err))
		} else if stored > 0 {
			// A stored attribute map overrides the static default.
			interval = stored
		}
		go scheduler.Run(ctx, interval)
		logg.Info("Sync scheduler started", zap.Duration("interval", interval))

		// 10. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 11. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		cancel()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
