package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"boTester/internal/cli"
	"boTester/internal/config"
	"boTester/internal/database"
	"boTester/internal/logger"
	"boTester/internal/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logger.Env, cfg.Logger.Level)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := migrations.Run(cfg, log); err != nil {
		log.Fatal("migrations failed", zap.Error(err))
	}

	opts := []cli.Option{cli.WithIO(os.Stdin, os.Stdout)}
	if cfg.Database.Enabled() {
		db, err := database.New(cfg, log)
		if err != nil {
			log.Fatal("journal database unavailable", zap.Error(err))
		}
		defer db.Close(log)
		opts = append(opts, cli.WithRepository(database.NewRunRepository(db.DB)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.New(cfg, log, opts...).Command().ExecuteContext(ctx); err != nil {
		log.Debug("command failed", zap.Error(err))
		stop()
		log.Sync()
		os.Exit(1)
	}
}
