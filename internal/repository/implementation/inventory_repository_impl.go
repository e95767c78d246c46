package implementation

import (
	"context"

	"dungeon-master-be/internal/entity"
	"dungeon-master-be/internal/mapper"
	"dungeon-master-be/internal/model"
	"dungeon-master-be/internal/repository/contract"
	"dungeon-master-be/internal/repository/scope"
	"dungeon-master-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CharacterMapper
}

func NewInventoryRepository(db *gorm.DB) contract.InventoryRepository {
	return &InventoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewCharacterMapper(),
	}
}

func (r *InventoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InventoryRepositoryImpl) Create(ctx context.Context, item *entity.InventoryItem) error {
	m := r.mapper.InventoryItemToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.InventoryItemToEntity(m)
	return nil
}

func (r *InventoryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.InventoryItem{}).Error
}

func (r *InventoryRepositoryImpl) DeleteByCharacter(ctx context.Context, characterId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("character_id = ?", characterId).Delete(&model.InventoryItem{}).Error
}

// FindAll returns items oldest first so sheets list equipment in
// acquisition order.
func (r *InventoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InventoryItem, error) {
	var models []*model.InventoryItem
	query := r.applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedAsc), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.InventoryItemsToEntities(models), nil
}
