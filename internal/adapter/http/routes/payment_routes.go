package routes

import (
	"quickgigs/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathPayments = "/payments"

func addPaymentRoutes(rg *gin.RouterGroup, deps Dependencies, requireAuth gin.HandlerFunc) {
	// Webhooks authenticate by signature, not by bearer token.
	rg.POST(PathPayments+"/webhook", deps.Payments.Webhook)

	// Checkout returns are browser redirects without a bearer token; the
	// signed state minted with the session authenticates them.
	callbacks := rg.Group(PathPayments, middleware.RequireCallbackAuth(deps.Tokens, deps.Callbacks))
	{
		callbacks.GET("/success/:gig_id", deps.Payments.PaymentSuccess)
		callbacks.GET("/cancel/:gig_id", deps.Payments.PaymentCancel)
	}

	payments := rg.Group(PathPayments, requireAuth)
	{
		payments.POST("/featured/:gig_id", middleware.RateLimit(deps.Limiter, "request_featuring"), deps.Payments.RequestFeaturing)
		payments.GET("/history", deps.Payments.PaymentHistory)
		payments.GET("/history/:payment_id", deps.Payments.PaymentTransitions)
	}
}
