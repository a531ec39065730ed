package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/GlebRadaev/knowledgebuddy/internal/app"
	"github.com/GlebRadaev/knowledgebuddy/internal/lambdaproxy"
)

// Serves POST /api/payments/orders and POST /api/payments/verify behind an API Gateway HTTP API.
func main() {
	application := app.New()
	if err := application.Init(context.Background()); err != nil {
		log.Error().Err(err).Msg("Can't init payments function")
		zap.L().Fatal("Can't init payments function: ", zap.Error(err))
	}
	defer application.Close()

	lambda.Start(lambdaproxy.New(application.PaymentsHandler()).Handle)
}
