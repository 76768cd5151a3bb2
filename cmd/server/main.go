// Package main - Entry point for the tariff comparison HTTP server
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"tariff-compare/adapters/storage"
	"tariff-compare/api"
	"tariff-compare/core/engine"
	"tariff-compare/internal/config"
	"tariff-compare/internal/logging"
)

const version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgFile := flag.String("config", "", "config file")
	addr := flag.String("addr", "", "server address (overrides server.addr)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer logging.Sync(logger)

	kv, closer, err := storage.Open(cfg.Store)
	if err != nil {
		return err
	}
	defer closer.Close()

	eng := engine.New(storage.NewVendorStore(kv, logger), engine.WithLogger(logger))
	server := api.NewServer(version, eng,
		api.WithLogger(logger),
		api.WithCurrency(cfg.Output.Currency),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("tariff-compare server starting",
		zap.String("version", version),
		zap.String("addr", cfg.Server.Addr),
		zap.String("store", cfg.Store.Backend),
	)
	return server.ListenAndServe(ctx, cfg.Server.Addr)
}
