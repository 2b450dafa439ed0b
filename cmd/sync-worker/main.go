package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	stripeclient "github.com/subsync/subsync-api/internal/client/billing/stripe"
	"github.com/subsync/subsync-api/internal/config"
	"github.com/subsync/subsync-api/internal/db"
	"github.com/subsync/subsync-api/internal/logger"
	"github.com/subsync/subsync-api/internal/services"
)

// Application holds the dependencies for the scheduled handler.
type Application struct {
	sync *services.SyncService
}

// HandleRequest runs one full reconciliation sweep. Per-subscription
// failures are counted, not fatal; the invocation only errors when the
// sweep itself cannot run.
func (app *Application) HandleRequest(ctx context.Context) error {
	logger.Info("Starting scheduled subscription sync")

	result, err := app.sync.SyncSubscriptions(ctx)
	if err != nil {
		logger.Error("Subscription sync failed", zap.Error(err))
		return fmt.Errorf("HandleRequest: %w", err)
	}

	logger.Info("Subscription sync complete",
		zap.Int("total", result.Total),
		zap.Int("updated", result.Updated),
		zap.Int("errors", result.Errors),
	)
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = "dev"
	}
	logger.InitLogger(stage)
	logger.Info("Lambda Cold Start: Initializing sync worker", zap.String("stage", stage))
	defer func() {
		_ = logger.Sync()
	}()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 15 * time.Minute
	connPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}
	// The pool persists for warm starts; do not close it here.

	queries := db.New(connPool)

	provider := stripeclient.NewService(logger.Log)
	if err := provider.Configure(ctx, cfg.StripeSecretKey, cfg.StripeWebhookSecret); err != nil {
		logger.Fatal("Failed to configure billing provider", zap.Error(err))
	}

	resolver := services.NewCustomerResolver(queries, provider, nil)
	reconciler := services.NewReconcilerService(queries, provider, resolver)

	app := &Application{
		sync: services.NewSyncService(queries, provider, reconciler),
	}

	lambda.Start(app.HandleRequest)
}
