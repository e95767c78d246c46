package implementation

import (
	"context"
	"errors"

	"dungeon-master-be/internal/entity"
	"dungeon-master-be/internal/mapper"
	"dungeon-master-be/internal/model"
	"dungeon-master-be/internal/repository/contract"
	"dungeon-master-be/internal/repository/scope"
	"dungeon-master-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CharacterRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CharacterMapper
}

func NewCharacterRepository(db *gorm.DB) contract.CharacterRepository {
	return &CharacterRepositoryImpl{
		db:     db,
		mapper: mapper.NewCharacterMapper(),
	}
}

func (r *CharacterRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CharacterRepositoryImpl) Create(ctx context.Context, character *entity.Character) error {
	m := r.mapper.ToModel(character)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*character = *r.mapper.ToEntity(m)
	return nil
}

func (r *CharacterRepositoryImpl) Update(ctx context.Context, character *entity.Character) error {
	m := r.mapper.ToModel(character)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*character = *r.mapper.ToEntity(m)
	return nil
}

func (r *CharacterRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Character{}).Error
}

func (r *CharacterRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Character, error) {
	var m model.Character
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

// FindAll returns characters newest first.
func (r *CharacterRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Character, error) {
	var models []*model.Character
	query := r.applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedDesc), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *CharacterRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Character{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CharacterRepositoryImpl) UpdateAvatar(ctx context.Context, characterId uuid.UUID, avatarURL string) error {
	return r.db.WithContext(ctx).Model(&model.Character{}).Where("id = ?", characterId).Update("avatar_url", avatarURL).Error
}
