package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nikolayk812/storefront/internal/cli"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/logger"
)

const serviceName = "storefront"

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: serviceName})

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logg.Warn(ctx, "failed to load .env", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(2)
	}

	logg = logger.New(logger.Options{
		ServiceName: serviceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
	})

	app := cli.NewApp(cfg, logg, prometheus.NewRegistry())

	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	runCtx = logg.WithFields(runCtx, map[string]any{
		"env":  cfg.App.Env,
		"slot": cfg.Slot.Backend,
	})

	runErr := cli.NewRootCommand(app).ExecuteContext(runCtx)

	if err := app.FlushMetrics(); err != nil {
		logg.Error(runCtx, "failed to write metrics", err)
	}

	if runErr != nil {
		logg.Error(runCtx, "command failed", runErr)
		stop()
		os.Exit(1)
	}
}
