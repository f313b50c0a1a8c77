package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"negobot/internal/adapter/api"
	adapterrepo "negobot/internal/adapter/repository"
	"negobot/internal/domain/entity"
	"negobot/internal/infrastructure/sessionlock"
	"negobot/internal/usecase"
	"negobot/pkg/errors"
)

type fixedItemRepo struct {
	item *entity.Item
}

func (r *fixedItemRepo) Save(ctx context.Context, item *entity.Item) error {
	r.item = item
	return nil
}

func (r *fixedItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	if r.item == nil || r.item.ID != id {
		return nil, errors.NotFound("Product", nil)
	}
	return r.item, nil
}

type fixedCompletion struct{}

func (fixedCompletion) Complete(ctx context.Context, messages []entity.ChatMessage) (string, error) {
	return "Still available!", nil
}

func newHandlerFixture(t *testing.T) (*echo.Echo, *NegotiationHandler) {
	t.Helper()

	item, err := entity.NewItem("ITEM_AAA111", "Mountain Bike", "Well maintained.", 100, 85, 70)
	assert.NoError(t, err)

	uc := usecase.NewNegotiationUseCase(
		&fixedItemRepo{item: item},
		adapterrepo.NewMemorySessionStore(),
		fixedCompletion{},
		sessionlock.NewRegistry(),
		usecase.NewStatsAggregator(),
		time.Second,
	)

	e := echo.New()
	e.Validator = api.NewValidator()
	return e, NewNegotiationHandler(uc)
}

func TestNegotiateEndpoint(t *testing.T) {
	e, h := newHandlerFixture(t)

	body := `{"buyer_id":"buyer_1","message":"product id: ITEM_AAA111 I can pay $90"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/negotiate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, h.Negotiate(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"deal_status":"deal_made"`)
		assert.Contains(t, rec.Body.String(), `"success":true`)
	}
}

func TestNegotiateEndpointRequiresBuyerID(t *testing.T) {
	e, h := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/negotiate", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, h.Negotiate(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	}
}

func TestOfferEndpointRejectsZeroAmount(t *testing.T) {
	e, h := newHandlerFixture(t)

	body := `{"buyer_id":"buyer_1","offer_amount":0}`
	req := httptest.NewRequest(http.MethodPost, "/v1/offer", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, h.Offer(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestGetConversationEmpty(t *testing.T) {
	e, h := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/conversations/nobody", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("buyer_id")
	c.SetParamValues("nobody")

	if assert.NoError(t, h.GetConversation(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total":0`)
	}
}
