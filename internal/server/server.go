package server

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/subsync/subsync-api/internal/cache"
	stripeclient "github.com/subsync/subsync-api/internal/client/billing/stripe"
	"github.com/subsync/subsync-api/internal/config"
	"github.com/subsync/subsync-api/internal/db"
	"github.com/subsync/subsync-api/internal/handlers"
	"github.com/subsync/subsync-api/internal/logger"
	"github.com/subsync/subsync-api/internal/middleware"
	"github.com/subsync/subsync-api/internal/services"
)

// Server wires configuration, datastore, provider client, and services into
// a Gin engine. Everything is constructed once here and injected down; no
// package-level singletons.
type Server struct {
	Router *gin.Engine
	cfg    *config.Config
	pool   *pgxpool.Pool
	cache  *cache.CustomerCache
	common *handlers.CommonServices
}

// New builds a fully wired Server from configuration.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	pool, err := newDBPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	queries := db.New(pool)

	provider := stripeclient.NewService(logger.Log)
	if err := provider.Configure(ctx, cfg.StripeSecretKey, cfg.StripeWebhookSecret); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to configure billing provider: %w", err)
	}

	var customerCache *cache.CustomerCache
	if cfg.RedisURL != "" {
		customerCache, err = cache.NewCustomerCache(cfg.RedisURL)
		if err != nil {
			logger.Log.Warn("Customer cache disabled", zap.Error(err))
			customerCache = nil
		}
	}

	resolver := services.NewCustomerResolver(queries, provider, customerCache)
	reconciler := services.NewReconcilerService(queries, provider, resolver)
	payments := services.NewPaymentService(queries, resolver)
	email := services.NewEmailService(cfg.ResendAPIKey, cfg.EmailFrom)
	dispatcher := services.NewWebhookDispatcher(provider, reconciler, payments, email)
	sync := services.NewSyncService(queries, provider, reconciler)

	common := handlers.NewCommonServices(handlers.CommonServicesConfig{
		DBPool:     pool,
		Config:     cfg,
		Provider:   provider,
		Resolver:   resolver,
		Reconciler: reconciler,
		Payments:   payments,
		Dispatcher: dispatcher,
		Sync:       sync,
	})

	s := &Server{
		cfg:    cfg,
		pool:   pool,
		cache:  customerCache,
		common: common,
	}
	s.Router = s.buildRouter()

	return s, nil
}

// newDBPool creates the pgx connection pool.
func newDBPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid database URL: %w", err)
	}

	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return pool, nil
}

// buildRouter assembles the Gin engine with middleware and routes.
func (s *Server) buildRouter() *gin.Engine {
	if s.cfg.Stage == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware())
	router.Use(cors.New(corsConfig()))

	subscriptionHandler := handlers.NewSubscriptionHandler(s.common, logger.Log)
	cardHandler := handlers.NewCardHandler(s.common, logger.Log)
	webhookHandler := handlers.NewWebhookHandler(s.common, logger.Log)
	syncHandler := handlers.NewSyncHandler(s.common, logger.Log)
	healthHandler := handlers.NewHealthHandler(s.common)

	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/webhook", webhookHandler.HandleWebhook)

	router.POST("/create-subscription-session", subscriptionHandler.CreateSubscriptionSession)
	router.POST("/create-subscription", subscriptionHandler.CreateSubscription)
	router.GET("/subscription/user/:userId", subscriptionHandler.GetSubscriptionByUser)
	router.GET("/subscription/:customerId", subscriptionHandler.GetSubscriptionByCustomer)
	router.POST("/subscription/cancel/:subscriptionId", subscriptionHandler.CancelSubscription)

	router.POST("/create-card/:userId", cardHandler.CreateCard)
	router.GET("/cards/:userId", cardHandler.ListCards)
	router.POST("/cards/default/:userId", cardHandler.SetDefaultCard)
	router.POST("/cards/delete/:userId", cardHandler.DeleteCard)

	router.POST("/sync-subscriptions", syncHandler.SyncSubscriptions)

	return router
}

// corsConfig builds the CORS policy from CORS_ALLOWED_ORIGINS, a
// comma-separated origin list. Empty means allow all origins.
func corsConfig() cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders,
		"Authorization", "X-Correlation-ID", "Stripe-Signature")

	raw := os.Getenv("CORS_ALLOWED_ORIGINS")
	if raw == "" {
		corsCfg.AllowAllOrigins = true
		return corsCfg
	}

	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	corsCfg.AllowOrigins = origins
	corsCfg.AllowCredentials = true

	return corsCfg
}

// Run starts the HTTP listener. Blocks until the listener stops.
func (s *Server) Run() error {
	addr := ":" + s.cfg.Port
	logger.Log.Info("Starting HTTP server", zap.String("addr", addr), zap.String("stage", s.cfg.Stage))
	return s.Router.Run(addr)
}

// Close releases the server's connections.
func (s *Server) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.cache != nil {
		_ = s.cache.Close()
	}
}
