package handler

import (
	"negobot/internal/usecase"
	"negobot/pkg/response"
	"negobot/pkg/utils"

	"github.com/labstack/echo/v4"
)

type NegotiationHandler struct {
	negotiationUseCase *usecase.NegotiationUseCase
}

func NewNegotiationHandler(negotiationUseCase *usecase.NegotiationUseCase) *NegotiationHandler {
	return &NegotiationHandler{
		negotiationUseCase: negotiationUseCase,
	}
}

type negotiateRequest struct {
	Message string `json:"message" validate:"required"`
	BuyerID string `json:"buyer_id" validate:"required"`
}

type offerRequest struct {
	OfferAmount float64 `json:"offer_amount" validate:"required,gt=0"`
	Message     string  `json:"message"`
	BuyerID     string  `json:"buyer_id" validate:"required"`
}

func (h *NegotiationHandler) Negotiate(c echo.Context) error {
	var req negotiateRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.negotiationUseCase.HandleMessage(c.Request().Context(), req.BuyerID, req.Message)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *NegotiationHandler) Offer(c echo.Context) error {
	var req offerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.negotiationUseCase.HandleOffer(c.Request().Context(), req.BuyerID, req.OfferAmount, req.Message)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *NegotiationHandler) ListConversations(c echo.Context) error {
	summaries, err := h.negotiationUseCase.Conversations(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"total_conversations": len(summaries),
		"conversations":       summaries,
	})
}

func (h *NegotiationHandler) GetConversation(c echo.Context) error {
	buyerID := c.Param("buyer_id")
	params := utils.GetPaginationParams(c)

	messages, total, err := h.negotiationUseCase.Conversation(c.Request().Context(), buyerID, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, messages, total, params.Page, params.PageSize)
}
