// Command seeder loads the bahr catalog YAML into PostgreSQL. Runs offline,
// separately from the server. Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/heartmarshall/bahr-checker/internal/adapter/postgres"
	"github.com/heartmarshall/bahr-checker/internal/adapter/postgres/bahr"
	"github.com/heartmarshall/bahr-checker/internal/app"
	"github.com/heartmarshall/bahr-checker/internal/app/seeder"
	"github.com/heartmarshall/bahr-checker/internal/app/seeder/catalog"
	"github.com/heartmarshall/bahr-checker/internal/config"
)

var (
	_ seeder.BahrRepo = (*bahr.Repo)(nil)
	_ seeder.TxRunner = (*postgres.TxManager)(nil)
)

const runTimeout = 5 * time.Minute

type cli struct {
	Catalog      string `help:"Catalog YAML file. Overrides SEEDER_CATALOG_PATH." type:"path"`
	DryRun       bool   `help:"Compare against the database without writing."`
	SeederConfig string `help:"Seeder YAML config file." type:"path"`
	Migrate      bool   `help:"Apply pending migrations before seeding."`
}

func main() {
	var args cli
	kong.Parse(&args,
		kong.Name("seeder"),
		kong.Description("Load the bahr catalog into PostgreSQL."),
	)

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}
	logger := app.NewLogger(appCfg.Log)

	if err := run(args, appCfg, logger); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(args cli, appCfg *config.Config, logger *slog.Logger) error {
	cfg, err := seeder.LoadConfig(args.SeederConfig)
	if err != nil {
		return err
	}
	if args.Catalog != "" {
		cfg.CatalogPath = args.Catalog
	}
	if args.DryRun {
		cfg.DryRun = true
	}

	bahrs, err := catalog.ParseFile(cfg.CatalogPath)
	if err != nil {
		return err
	}
	logger.Info("catalog parsed", slog.String("path", cfg.CatalogPath), slog.Int("bahrs", len(bahrs)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if args.Migrate || appCfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, appCfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	pipeline := seeder.NewPipeline(logger, bahr.New(pool), postgres.NewTxManager(pool), *cfg)
	_, err = pipeline.Run(ctx, bahrs)
	return err
}
