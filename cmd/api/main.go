package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	internalaws "github.com/houseofmira/storefront-api/internal/aws"
	"github.com/houseofmira/storefront-api/internal/carrier"
	"github.com/houseofmira/storefront-api/internal/checkout"
	"github.com/houseofmira/storefront-api/internal/commerce"
	"github.com/houseofmira/storefront-api/internal/config"
	"github.com/houseofmira/storefront-api/internal/gateway"
	"github.com/houseofmira/storefront-api/internal/handlers"
	"github.com/houseofmira/storefront-api/internal/metrics"
	"github.com/houseofmira/storefront-api/internal/shipping"
)

func setupRouter(cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterRoutes(r, cfg)

	return r
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	if cfg.IsProduction() {
		log.SetFormatter(&log.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	}

	commerceClient := commerce.New(commerce.Config{
		BaseURL:         cfg.CommerceAPIURL,
		StorefrontToken: cfg.CommerceStorefrontToken,
		AdminToken:      cfg.CommerceAdminToken,
		Timeout:         cfg.RequestTimeout,
	})
	gatewayClient := gateway.New(gateway.Config{
		BaseURL:   cfg.GatewayAPIURL,
		KeyID:     cfg.GatewayKeyID,
		KeySecret: cfg.GatewayKeySecret,
		Timeout:   cfg.RequestTimeout,
	})
	carrierClient := carrier.New(carrier.Config{
		BaseURL: cfg.CarrierAPIURL,
		Token:   cfg.CarrierToken,
		Timeout: cfg.RequestTimeout,
	})

	// Metrics are optional; a nil emitter silently drops counters.
	var emitter *metrics.Emitter
	if cfg.MetricsEnabled {
		clients, err := internalaws.NewClients(context.Background())
		if err != nil {
			log.WithError(err).Fatal("failed to init aws clients")
		}
		emitter = metrics.NewEmitter(clients.CloudWatch)
	}

	handlerCfg := handlers.HandlerConfig{
		Resolver: shipping.NewResolver(
			commerceClient, carrierClient,
			cfg.OriginPostalCode, cfg.DomesticCountryCode, cfg.CurrencySymbol,
		),
		Intents:           checkout.NewIntentCreator(gatewayClient, cfg.Currency),
		Submitter:         checkout.NewSubmitter(commerceClient, emitter, "hostedpay"),
		Orders:            checkout.NewOrderQuery(commerceClient),
		Account:           commerceClient,
		ExposeErrorDetail: !cfg.IsProduction(),
	}

	r := setupRouter(handlerCfg)

	// Run a plain HTTP server for development, the Lambda adapter otherwise.
	if cfg.RunLocal {
		log.WithField("addr", cfg.ListenAddr).Info("running local server")
		if err := r.Run(cfg.ListenAddr); err != nil {
			log.WithError(err).Fatal("failed to run local server")
		}
		return
	}

	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
