package repository

import (
	"context"

	"negobot/internal/domain/entity"
)

type ItemRepository interface {
	Save(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
}
