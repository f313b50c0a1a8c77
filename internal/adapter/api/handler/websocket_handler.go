package handler

import (
	"net/http"

	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"negobot/internal/infrastructure/websocket"
	"negobot/internal/usecase"
	"negobot/pkg/logger"
)

type WebSocketHandler struct {
	manager            *websocket.Manager
	negotiationUseCase *usecase.NegotiationUseCase
	upgrader           gorilla.Upgrader
}

func NewWebSocketHandler(manager *websocket.Manager, negotiationUseCase *usecase.NegotiationUseCase) *WebSocketHandler {
	return &WebSocketHandler{
		manager:            manager,
		negotiationUseCase: negotiationUseCase,
		upgrader: gorilla.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleChat upgrades the connection and runs the chat transport pumps
// for one buyer.
func (h *WebSocketHandler) HandleChat(c echo.Context) error {
	buyerID := c.QueryParam("buyer_id")
	if buyerID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "buyer_id query parameter is required"})
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed for %s: %v", buyerID, err)
		return err
	}

	client := &websocket.Client{
		BuyerID: buyerID,
		Conn:    conn,
		Send:    make(chan []byte, 16),
	}

	h.manager.Register <- client

	go client.WritePump()
	go client.ReadPump(h.manager, h.negotiationUseCase)

	return nil
}
