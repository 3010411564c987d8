package cmd

import (
	"context"
	"log"
	"time"

	"post-sync/core/config"
	"post-sync/core/database"
	"post-sync/core/logger"
	"post-sync/core/metrics"
	"post-sync/core/notify"
	"post-sync/core/options"
	"post-sync/core/transport"

	"post-sync/feature/content"
	"post-sync/feature/postsync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCmd runs one full sync from the command line and exits. Useful for
// cron-style deployments that do not want the long-running scheduler.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one full sync and exit",
	Long:  `Fetches the configured API (or resumes a persisted tail) and drains the whole record collection into the content store.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}

		opts := options.NewStore(db, time.Duration(cfg.Sync.CacheSeconds)*time.Second)
		if err := opts.Migrate(); err != nil {
			logg.Fatal("Failed to migrate options table", zap.Error(err))
		}
		store := content.NewStore(db, logg)
		if err := store.Migrate(); err != nil {
			logg.Fatal("Failed to migrate content tables", zap.Error(err))
		}

		engine := postsync.NewEngine(cfg.Sync.ChunkSize, opts,
			transport.NewClient(cfg.Transport),
			store,
			notify.New(cfg.Notify, logg),
			metrics.NewSync(prometheus.NewRegistry()),
			logg)

		if err := engine.RunScheduled(context.Background()); err != nil {
			return err
		}
		logg.Info("Sync complete")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(syncCmd)
}
