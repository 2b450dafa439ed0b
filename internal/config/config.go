package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/subsync/subsync-api/internal/client/aws"
	"github.com/subsync/subsync-api/internal/logger"
)

// Config holds all runtime configuration for the API. Secrets are resolved
// through AWS Secrets Manager when the corresponding *_SECRET_ARN variable is
// set, otherwise read directly from the environment.
type Config struct {
	Stage               string
	Port                string
	DatabaseURL         string
	StripeSecretKey     string
	StripeWebhookSecret string
	DefaultPriceID      string
	PlanPrices          map[string]string
	ClientRedirectURL   string
	RedisURL            string
	ResendAPIKey        string
	EmailFrom           string
}

// Load resolves the full configuration from the environment and, where
// configured, AWS Secrets Manager.
func Load(ctx context.Context) (*Config, error) {
	cfg := &Config{
		Stage:             getEnvWithDefault("STAGE", "dev"),
		Port:              getEnvWithDefault("API_PORT", "8080"),
		DefaultPriceID:    os.Getenv("DEFAULT_PRICE_ID"),
		ClientRedirectURL: os.Getenv("CLIENT_REDIRECT_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		ResendAPIKey:      os.Getenv("RESEND_API_KEY"),
		EmailFrom:         getEnvWithDefault("EMAIL_FROM_ADDRESS", "billing@subsync.io"),
		PlanPrices:        parsePlanPrices(os.Getenv("PLAN_PRICE_MAP")),
	}

	secrets, err := aws.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Log.Warn("Secrets Manager client unavailable, using environment variables only", zap.Error(err))
	}

	resolve := func(arnEnvVar, fallbackEnvVar string) string {
		if secrets != nil {
			if value, err := secrets.GetSecretString(ctx, arnEnvVar, fallbackEnvVar); err == nil {
				return value
			}
		}
		return os.Getenv(fallbackEnvVar)
	}

	cfg.DatabaseURL = resolve("DATABASE_URL_SECRET_ARN", "DATABASE_URL")
	cfg.StripeSecretKey = resolve("STRIPE_SECRET_KEY_SECRET_ARN", "STRIPE_SECRET_KEY")
	cfg.StripeWebhookSecret = resolve("STRIPE_WEBHOOK_SECRET_SECRET_ARN", "STRIPE_WEBHOOK_SECRET")

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is required")
	}
	if cfg.StripeWebhookSecret == "" {
		return nil, fmt.Errorf("STRIPE_WEBHOOK_SECRET is required")
	}

	return cfg, nil
}

// PriceForPlan maps an application plan identifier to a provider price ID.
// Unknown plans fall back to the default price.
func (c *Config) PriceForPlan(planID string) string {
	if priceID, ok := c.PlanPrices[planID]; ok {
		return priceID
	}
	return c.DefaultPriceID
}

// parsePlanPrices parses PLAN_PRICE_MAP entries of the form
// "basic=price_123,pro=price_456".
func parsePlanPrices(raw string) map[string]string {
	prices := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		prices[parts[0]] = parts[1]
	}
	return prices
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
