package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"siteguard/internal/api"
	"siteguard/internal/api/handler/v1handler"
	"siteguard/internal/config"
	"siteguard/internal/mutator"
	"siteguard/internal/worker"
	"siteguard/pkg/dispatch/scanapi"
	"siteguard/pkg/graph/postgres"
	"siteguard/pkg/logger"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, mut mutator.Mutator) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{
		Deps: v1handler.Deps{Mutator: mut},
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupWorkers(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL) func(ctx context.Context) {
	client := scanapi.New(
		&http.Client{Timeout: cfg.Dispatch.Timeout},
		cfg.Dispatch.BaseURL,
		cfg.Dispatch.APIKey,
	)

	riverClient, err := worker.Start(ctx, strg.Pool, strg, client, cfg.Scan.WorkerCount)
	if err != nil {
		logger.Fatal(ctx, "could not start background workers", zap.Error(err))
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping background workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop background workers", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			stopWorkers := setupWorkers(ctx, cfg, strg)

			mut := mutator.New(strg, mutator.NewOptions(cfg))
			stopWebserver := setupServer(ctx, cfg, mut)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx)
		},
	}

	return cmd
}
