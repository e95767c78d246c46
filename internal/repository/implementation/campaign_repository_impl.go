package implementation

import (
	"context"
	"errors"

	"dungeon-master-be/internal/entity"
	"dungeon-master-be/internal/mapper"
	"dungeon-master-be/internal/model"
	"dungeon-master-be/internal/repository/contract"
	"dungeon-master-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CampaignRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CampaignMapper
}

func NewCampaignRepository(db *gorm.DB) contract.CampaignRepository {
	return &CampaignRepositoryImpl{
		db:     db,
		mapper: mapper.NewCampaignMapper(),
	}
}

func (r *CampaignRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CampaignRepositoryImpl) Create(ctx context.Context, campaign *entity.Campaign) error {
	m := r.mapper.ToModel(campaign)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*campaign = *r.mapper.ToEntity(m)
	return nil
}

func (r *CampaignRepositoryImpl) Update(ctx context.Context, campaign *entity.Campaign) error {
	m := r.mapper.ToModel(campaign)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*campaign = *r.mapper.ToEntity(m)
	return nil
}

func (r *CampaignRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Campaign{}).Error
}

func (r *CampaignRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Campaign, error) {
	var m model.Campaign
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *CampaignRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Campaign, error) {
	var models []*model.Campaign
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *CampaignRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Campaign{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
