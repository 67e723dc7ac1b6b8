package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	_ "github.com/tapsilat/tapsilat-go/docs"
	"github.com/tapsilat/tapsilat-go/internal/adapter/http/handlers"
	"github.com/tapsilat/tapsilat-go/internal/config"
	"github.com/tapsilat/tapsilat-go/internal/infrastructure/payments"
	"github.com/tapsilat/tapsilat-go/internal/logger"
	"github.com/tapsilat/tapsilat-go/internal/metrics"
	"github.com/tapsilat/tapsilat-go/internal/usecase"
	"github.com/tapsilat/tapsilat-go/internal/usecase/interfaces"
)

// Run builds the router and serves it until the listener fails.
func Run(cfg config.Config, log logger.Sugared) error {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := NewRouter(cfg, log, registry)
	log.Infof("[http][server] listening addr=%s env=%s", cfg.HTTPAddr, cfg.Env)
	return router.Run(cfg.HTTPAddr)
}

// NewRouter wires gateway, use cases and handlers. Metrics are registered on
// registry and served from it at /metrics.
func NewRouter(cfg config.Config, log logger.Sugared, registry *prometheus.Registry) *gin.Engine {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	setMiddlewares(router, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	gatewayMetrics := metrics.NewGatewayMetricsWithRegisterer(registry)

	var paymentGateway interfaces.IPaymentGateway
	tapsilatGateway, err := payments.NewTapsilatGateway(cfg.Tapsilat, log, gatewayMetrics)
	if err != nil {
		log.Warnf("Tapsilat gateway not configured: %v", err)
	} else {
		paymentGateway = tapsilatGateway
	}

	checkoutHandler := handlers.NewCheckoutHandler(usecase.NewCheckoutUseCase(paymentGateway, cfg.Checkout, log), log)
	subscriptionHandler := handlers.NewSubscriptionHandler(usecase.NewSubscriptionUseCase(paymentGateway, cfg.Checkout, log), log)
	webhookHandler := handlers.NewWebhookHandler(usecase.NewWebhookUseCase(cfg.Tapsilat.WebhookSecret, gatewayMetrics, log), log)
	pingHandler := handlers.NewPingHandler(usecase.NewHealthUseCase(paymentGateway))

	v1 := router.Group("/v1")
	addPingRoutes(v1, pingHandler)
	addPaymentRoutes(v1, checkoutHandler, subscriptionHandler, webhookHandler)

	return router
}

func setMiddlewares(router *gin.Engine, log logger.Sugared) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
