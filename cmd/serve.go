package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"gitlab.com/bhajan-roster.net/internal/adapter/crypto"
	http2 "gitlab.com/bhajan-roster.net/internal/http"
	"gitlab.com/bhajan-roster.net/internal/schedulerengine"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the roster HTTP API",
	Args:  cobra.NoArgs,
	RunE:  serve,
}

func serve(cmd *cobra.Command, args []string) error {
	// Set up graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	logger := a.logger
	logger.Info("Starting bhajan roster service", "store", a.cfg.StoreConfig.Driver, "debug", a.cfg.DebugMode)

	shareTokens := crypto.NewJWTService(a.cfg.ShareConfig)
	if a.cfg.ShareConfig.Secret == "" {
		logger.Warn("JWT_SECRET is empty; share links are disabled")
	}
	serviceProvider := http2.NewServiceProvider(a.sessionService, shareTokens)
	httpServer := http2.NewServer(a.cfg.HTTPConfig.Port, a.cfg.HTTPConfig.ServiceName, *serviceProvider, logger)
	if err := httpServer.Init(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(httpServer.Start)
	if a.cfg.ScheduleConfig.Enabled {
		reporter := schedulerengine.NewSchedulerEngine(a.cfg.ScheduleConfig, a.sessionService, logger)
		g.Go(func() error { return reporter.Run(gctx) })
	}
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTPConfig.ShutdownTimeout)
		defer cancel()
		return httpServer.Stop(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("successfully shutdown server")
	return nil
}
