package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	httpadapter "fundhub/internal/adapter/http"
	"fundhub/internal/adapter/payment"
	"fundhub/internal/adapter/postgres"
	"fundhub/internal/adapter/usecase"
	"fundhub/internal/config"
	"fundhub/internal/db"
)

// main is the entry point of the fundhub service. It loads configuration,
// optionally runs database migrations, initializes the database pool,
// repositories and usecases, starts the notification fan-out worker and the
// HTTP server. On receiving a termination signal it gracefully shuts down
// the server and drains the fan-out queue.
func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		}
	}

	campaignStore := postgres.NewCampaignRepository(pool)
	donationStore := postgres.NewDonationRepository(pool)
	notificationStore := postgres.NewNotificationRepository(pool)
	subscriptionStore := postgres.NewSubscriptionRepository(pool)

	// The notifier runs on its own context so dispatched fan-out work is
	// detached from the request that produced it.
	notifier := usecase.NewNotifier(notificationStore, logger, cfg.Notifier.QueueSize)
	notifierCtx, stopNotifier := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		notifier.Run(notifierCtx)
	}()

	campaigns := usecase.NewCampaignUseCase(campaignStore)
	donations := usecase.NewDonationUseCase(donationStore, campaignStore, payment.NewNoopGateway(), notifier, logger)
	review := usecase.NewReviewUseCase(campaignStore, notifier, logger)
	notifications := usecase.NewNotificationUseCase(notificationStore, subscriptionStore)

	handler := httpadapter.NewHandler(campaigns, donations, review, notifications, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}

	// Stop the notifier after the server: in-flight requests may still
	// dispatch, and Run drains the queue before returning.
	stopNotifier()
	wg.Wait()
}
