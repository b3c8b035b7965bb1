package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ripixel/readiness/pkg/api"
	"github.com/ripixel/readiness/pkg/bootstrap"
	infrapubsub "github.com/ripixel/readiness/pkg/infrastructure/pubsub"
	"github.com/ripixel/readiness/pkg/infrastructure/sentry"
)

const shutdownGrace = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc, err := bootstrap.NewService(ctx)
	if err != nil {
		os.Exit(1)
	}
	logger := svc.Logger

	if err := sentry.Init(sentry.Config{
		DSN:         svc.Config.SentryDSN,
		Environment: os.Getenv("ENVIRONMENT"),
		Release:     os.Getenv("RELEASE"),
		ServerName:  "readiness-server",
	}, logger); err != nil {
		logger.Error("Sentry init failed, continuing without it", "error", err)
	}
	defer sentry.Flush(2 * time.Second)

	handler := api.NewHandler(svc.Readiness, logger.With("component", "api"))
	server := &http.Server{
		Addr:    ":" + svc.Config.Port,
		Handler: handler.Router(),
	}

	// Bus-driven invalidation only runs when a real Pub/Sub client exists.
	if adapter, ok := svc.Pub.(*infrapubsub.PubSubAdapter); ok {
		subName := os.Getenv("INVALIDATION_SUBSCRIPTION")
		if subName == "" {
			subName = infrapubsub.SubscriptionDataInvalidated
		}
		sub := &infrapubsub.InvalidationSubscriber{
			Sub:    adapter.Client.Subscription(subName),
			Cache:  svc.Readiness,
			Logger: logger.With("component", "invalidation"),
		}
		go func() {
			if err := sub.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("invalidation subscriber stopped", "error", err)
			}
		}()
	}

	go func() {
		logger.Info("HTTP server listening", "port", svc.Config.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown did not complete cleanly", "error", err)
	}
}
