package routes

import (
	"payler_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing         = "/ping"
	PathGateway      = "/gateway"
	PathOrders       = "/orders"
	PathNotification = "/wc-api/payler"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	rg.GET(PathGateway, paymentHandler.Gateway)

	orders := rg.Group(PathOrders)
	{
		orders.POST("/:order_id/session", paymentHandler.CreateSession)
		orders.POST("/:order_id/refunds", paymentHandler.Refund)
	}
}

// Payler posts callbacks to the storefront's API endpoint, outside /v1.
func addNotificationRoutes(r gin.IRoutes, notificationHandler *handlers.NotificationHandler) {
	r.POST(PathNotification, notificationHandler.Handle)
}
