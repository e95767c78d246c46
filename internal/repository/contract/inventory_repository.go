package contract

import (
	"context"

	"dungeon-master-be/internal/entity"
	"dungeon-master-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByCharacter(ctx context.Context, characterId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InventoryItem, error)
}
