package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"

	"mhroulette/bot"
	"mhroulette/config"
	"mhroulette/database"
	"mhroulette/events"
	"mhroulette/repository"
	"mhroulette/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting mhroulette...")

	// Load configuration
	cfg := config.Get()

	publicKey, err := cfg.PublicKey()
	if err != nil {
		return err
	}

	// Initialize error reporting when configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.Environment,
		}); err != nil {
			return fmt.Errorf("failed to initialize sentry: %w", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	log.Println("Database connection established successfully")

	// Initialize event bus
	eventBus := events.NewBus()
	subscribeEventLogging(eventBus)

	// Initialize repositories and services
	profileRepo := repository.NewProfileRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	profileService := service.NewProfileService(profileRepo, eventBus)
	drawService := service.NewDrawService(profileRepo, eventBus)
	statsService := service.NewStatsService(statsRepo)

	// Initialize the interaction webhook server
	interactionBot := bot.New(profileService, drawService, statsService)
	router := bot.NewRouter(interactionBot, publicKey)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s in %s mode...", cfg.ListenAddr, cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	// Cleanup resources
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down http server: %v", err)
	}

	log.Println("Shutdown completed")
	return nil
}
