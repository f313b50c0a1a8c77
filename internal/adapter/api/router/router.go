package router

import (
	"negobot/internal/adapter/api/handler"
	"negobot/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(
	e *echo.Echo,
	negotiationHandler *handler.NegotiationHandler,
	itemHandler *handler.ItemHandler,
	statusHandler *handler.StatusHandler,
	wsHandler *handler.WebSocketHandler,
	rateLimit *middleware.RateLimitMiddleware,
) {
	e.GET("/health", statusHandler.CheckHealth)

	v1 := e.Group("/v1")

	v1.POST("/negotiate", negotiationHandler.Negotiate, rateLimit.Limit("negotiate"))
	v1.POST("/offer", negotiationHandler.Offer, rateLimit.Limit("offer"))

	v1.GET("/items/:id", itemHandler.GetItem)
	v1.POST("/items", itemHandler.SetItem)

	v1.GET("/status", statusHandler.GetStatus)

	v1.GET("/conversations", negotiationHandler.ListConversations)
	v1.GET("/conversations/:buyer_id", negotiationHandler.GetConversation)

	e.GET("/ws/chat", wsHandler.HandleChat)
}
