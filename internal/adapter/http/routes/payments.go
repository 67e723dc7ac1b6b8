package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tapsilat/tapsilat-go/internal/adapter/http/handlers"
)

const (
	PathCheckout      = "/checkout"
	PathSubscriptions = "/subscriptions"
	PathWebhooks      = "/webhooks"
	PathPing          = "/ping"
)

func addPaymentRoutes(rg *gin.RouterGroup, checkout *handlers.CheckoutHandler, subscriptions *handlers.SubscriptionHandler, webhooks *handlers.WebhookHandler) {
	co := rg.Group(PathCheckout)
	{
		co.POST("", checkout.CreateCheckout)
		co.GET("/:reference_id", checkout.GetCheckout)
		co.POST("/:reference_id/cancel", checkout.CancelCheckout)
		co.POST("/:reference_id/refund", checkout.RefundCheckout)
	}

	subs := rg.Group(PathSubscriptions)
	{
		subs.POST("", subscriptions.CreateSubscription)
		subs.GET("/:reference_id", subscriptions.GetSubscription)
		subs.POST("/:reference_id/cancel", subscriptions.CancelSubscription)
	}

	hooks := rg.Group(PathWebhooks)
	{
		hooks.POST("/tapsilat", webhooks.ReceiveTapsilatWebhook)
	}
}

func addPingRoutes(rg *gin.RouterGroup, ping *handlers.PingHandler) {
	rg.GET(PathPing, ping.Ping)
}
