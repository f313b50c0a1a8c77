package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	adapterrepo "negobot/internal/adapter/repository"
	"negobot/internal/domain/entity"
	"negobot/internal/infrastructure/sessionlock"
	"negobot/internal/infrastructure/websocket"
	"negobot/internal/usecase"
)

func TestGetStatusReportsCounters(t *testing.T) {
	item, err := entity.NewItem("ITEM_AAA111", "Mountain Bike", "Well maintained.", 100, 85, 70)
	assert.NoError(t, err)

	stats := usecase.NewStatsAggregator()
	uc := usecase.NewNegotiationUseCase(
		&fixedItemRepo{item: item},
		adapterrepo.NewMemorySessionStore(),
		fixedCompletion{},
		sessionlock.NewRegistry(),
		stats,
		time.Second,
	)
	stats.RecordInquiry()

	h := NewStatusHandler(stats, uc, websocket.NewManager())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, h.GetStatus(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total_inquiries":1`)
		assert.Contains(t, rec.Body.String(), `"connected_chat_clients":0`)
		assert.Contains(t, rec.Body.String(), `"active_conversations":0`)
	}
}

func TestCheckHealth(t *testing.T) {
	h := NewStatusHandler(usecase.NewStatsAggregator(), nil, websocket.NewManager())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, h.CheckHealth(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Server is running")
	}
}
