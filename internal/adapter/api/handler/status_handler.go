package handler

import (
	"math"
	"net/http"
	"time"

	"negobot/internal/infrastructure/websocket"
	"negobot/internal/usecase"
	"negobot/pkg/response"

	"github.com/labstack/echo/v4"
)

type StatusHandler struct {
	stats              *usecase.StatsAggregator
	negotiationUseCase *usecase.NegotiationUseCase
	wsManager          *websocket.Manager
}

func NewStatusHandler(stats *usecase.StatsAggregator, negotiationUseCase *usecase.NegotiationUseCase, wsManager *websocket.Manager) *StatusHandler {
	return &StatusHandler{
		stats:              stats,
		negotiationUseCase: negotiationUseCase,
		wsManager:          wsManager,
	}
}

type statusResponse struct {
	TotalInquiries       int     `json:"total_inquiries"`
	OffersReceived       int     `json:"offers_received"`
	DealsMade            int     `json:"deals_made"`
	AverageFinalPrice    float64 `json:"average_final_price"`
	ActiveConversations  int     `json:"active_conversations"`
	ConnectedChatClients int     `json:"connected_chat_clients"`
	UptimeHours          float64 `json:"uptime_hours"`
	Timestamp            int64   `json:"timestamp"`
}

func (h *StatusHandler) GetStatus(c echo.Context) error {
	stats := h.stats.Snapshot()

	return response.Success(c, statusResponse{
		TotalInquiries:       stats.TotalInquiries,
		OffersReceived:       stats.OffersReceived,
		DealsMade:            stats.DealsMade,
		AverageFinalPrice:    math.Round(stats.AverageFinalPrice*100) / 100,
		ActiveConversations:  h.negotiationUseCase.ActiveConversations(c.Request().Context()),
		ConnectedChatClients: h.wsManager.Connected(),
		UptimeHours:          math.Round(h.stats.UptimeHours()*100) / 100,
		Timestamp:            time.Now().Unix(),
	})
}

func (h *StatusHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}
