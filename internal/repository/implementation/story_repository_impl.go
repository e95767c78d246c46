package implementation

import (
	"context"
	"encoding/json"
	"errors"

	"dungeon-master-be/internal/entity"
	"dungeon-master-be/internal/mapper"
	"dungeon-master-be/internal/model"
	"dungeon-master-be/internal/repository/contract"
	"dungeon-master-be/internal/repository/specification"
	"dungeon-master-be/pkg/narrator"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StoryMapper
}

func NewStoryRepository(db *gorm.DB) contract.StoryRepository {
	return &StoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewStoryMapper(),
	}
}

func (r *StoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StoryRepositoryImpl) Create(ctx context.Context, story *entity.Story) error {
	m := r.mapper.ToModel(story)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*story = *r.mapper.ToEntity(m)
	return nil
}

func (r *StoryRepositoryImpl) Update(ctx context.Context, story *entity.Story) error {
	m := r.mapper.ToModel(story)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*story = *r.mapper.ToEntity(m)
	return nil
}

func (r *StoryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Story{}).Error
}

func (r *StoryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Story, error) {
	var m model.Story
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *StoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Story, error) {
	var models []*model.Story
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *StoryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Story{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateTranscript writes the transcript column in one statement. The
// whole array is replaced, last writer wins.
func (r *StoryRepositoryImpl) UpdateTranscript(ctx context.Context, id uuid.UUID, transcript []narrator.Message) error {
	if transcript == nil {
		transcript = []narrator.Message{}
	}
	raw, err := json.Marshal(transcript)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&model.Story{}).
		Where("id = ?", id).
		Update("transcript", datatypes.JSON(raw)).Error
}
