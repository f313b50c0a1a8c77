package usecase

import (
	"context"
	"strings"

	"github.com/oklog/ulid/v2"

	"negobot/internal/domain/entity"
	"negobot/internal/domain/repository"
	"negobot/pkg/logger"
)

type ItemUseCase struct {
	itemRepo     repository.ItemRepository
	sessionStore repository.SessionStore
	stats        *StatsAggregator
}

func NewItemUseCase(itemRepo repository.ItemRepository, sessionStore repository.SessionStore, stats *StatsAggregator) *ItemUseCase {
	return &ItemUseCase{
		itemRepo:     itemRepo,
		sessionStore: sessionStore,
		stats:        stats,
	}
}

type SetItemInput struct {
	ID           string
	Name         string
	Description  string
	Category     string
	Condition    string
	ListingPrice float64
	TargetPrice  float64
	MinimumPrice float64
	Stock        int
	CreatedBy    string
}

// SetItem creates or replaces the negotiated listing. Replacing the
// item invalidates everything: stats and every stored session are
// reset.
func (uc *ItemUseCase) SetItem(ctx context.Context, input SetItemInput) (*entity.Item, error) {
	id := input.ID
	if id == "" {
		id = generateItemID(input.Category)
	}

	item, err := entity.NewItem(id, input.Name, input.Description,
		input.ListingPrice, input.TargetPrice, input.MinimumPrice)
	if err != nil {
		return nil, err
	}

	item.Category = input.Category
	item.Condition = input.Condition
	item.CreatedBy = input.CreatedBy
	if input.Stock > 0 {
		item.Stock = input.Stock
	}

	if err := uc.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	uc.stats.Reset()
	uc.purgeSessions(ctx)

	logger.Info("Item replaced: %s (%s), negotiations reset", item.Name, item.ID)
	return item, nil
}

func (uc *ItemUseCase) GetItem(ctx context.Context, id string) (*entity.Item, error) {
	return uc.itemRepo.GetByID(ctx, id)
}

// purgeSessions drops every stored conversation record. Best effort: a
// failed delete only logs.
func (uc *ItemUseCase) purgeSessions(ctx context.Context) {
	for _, prefix := range []string{messagesKeyPrefix, lastProductKeyPrefix} {
		keys, err := uc.sessionStore.Keys(ctx, prefix)
		if err != nil {
			logger.Warn("Session purge scan failed: %v", err)
			continue
		}
		for _, key := range keys {
			if err := uc.sessionStore.Delete(ctx, key); err != nil {
				logger.Warn("Session purge delete failed for %s: %v", key, err)
			}
		}
	}
}

var categoryCodes = map[string]string{
	"motor":      "MTR",
	"mobil":      "CAR",
	"elektronik": "ELC",
	"furniture":  "FUR",
	"pakaian":    "CLT",
	"rumah":      "HMS",
}

// generateItemID builds a category-prefixed identifier.
func generateItemID(category string) string {
	code := "PRD"
	lowered := strings.ToLower(category)
	for key, val := range categoryCodes {
		if strings.Contains(lowered, key) {
			code = val
			break
		}
	}
	return code + "_" + ulid.Make().String()
}
