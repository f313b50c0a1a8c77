package handler

import (
	"negobot/internal/usecase"
	"negobot/pkg/response"

	"github.com/labstack/echo/v4"
)

type ItemHandler struct {
	itemUseCase *usecase.ItemUseCase
}

func NewItemHandler(itemUseCase *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{
		itemUseCase: itemUseCase,
	}
}

type setItemRequest struct {
	ID           string  `json:"id"`
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Condition    string  `json:"condition"`
	ListingPrice float64 `json:"listing_price" validate:"required,gt=0"`
	TargetPrice  float64 `json:"target_price" validate:"gte=0"`
	MinimumPrice float64 `json:"minimum_price" validate:"gte=0"`
	Stock        int     `json:"stock" validate:"gte=0"`
	CreatedBy    string  `json:"created_by"`
}

func (h *ItemHandler) SetItem(c echo.Context) error {
	var req setItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	item, err := h.itemUseCase.SetItem(c.Request().Context(), usecase.SetItemInput{
		ID:           req.ID,
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Condition:    req.Condition,
		ListingPrice: req.ListingPrice,
		TargetPrice:  req.TargetPrice,
		MinimumPrice: req.MinimumPrice,
		Stock:        req.Stock,
		CreatedBy:    req.CreatedBy,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, item)
}

func (h *ItemHandler) GetItem(c echo.Context) error {
	item, err := h.itemUseCase.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}
