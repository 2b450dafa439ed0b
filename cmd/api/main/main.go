//go:build lambda
// +build lambda

package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"github.com/subsync/subsync-api/internal/config"
	"github.com/subsync/subsync-api/internal/logger"
	"github.com/subsync/subsync-api/internal/server"
)

// @title           SubSync API
// @version         1.0
// @description     Subscription billing bridge between Stripe and Postgres

// @host      localhost:8000
// @BasePath  /

var ginLambda *ginadapter.GinLambda

func init() {
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = "dev"
	}
	logger.InitLogger(stage)

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	srv, err := server.New(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize server", zap.Error(err))
	}
	// The pool persists across warm invocations; AWS handles container
	// shutdown, so nothing is closed here.

	ginLambda = ginadapter.New(srv.Router)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.Any("request", spew.Sdump(req)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer func() {
		_ = logger.Sync()
	}()
	lambda.Start(Handler)
}
