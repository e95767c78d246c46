package mapper

import (
	"encoding/json"

	"dungeon-master-be/internal/entity"
	"dungeon-master-be/internal/model"
	"dungeon-master-be/pkg/narrator"

	"github.com/google/uuid"
)

type StoryMapper struct{}

func NewStoryMapper() *StoryMapper {
	return &StoryMapper{}
}

func (m *StoryMapper) ToEntity(s *model.Story) *entity.Story {
	if s == nil {
		return nil
	}
	var characterIds []uuid.UUID
	if len(s.CharacterIds) > 0 {
		_ = json.Unmarshal(s.CharacterIds, &characterIds)
	}
	var transcript []narrator.Message
	if len(s.Transcript) > 0 {
		_ = json.Unmarshal(s.Transcript, &transcript)
	}
	return &entity.Story{
		Id:           s.Id,
		UserId:       s.UserId,
		Title:        s.Title,
		CampaignId:   s.CampaignId,
		CharacterIds: characterIds,
		Content:      s.Content,
		Status:       entity.StoryStatus(s.Status),
		AiContext:    s.AiContext,
		Transcript:   transcript,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (m *StoryMapper) ToModel(s *entity.Story) *model.Story {
	if s == nil {
		return nil
	}
	return &model.Story{
		Id:           s.Id,
		UserId:       s.UserId,
		Title:        s.Title,
		CampaignId:   s.CampaignId,
		CharacterIds: mustJSON(emptyIfNilSlice(s.CharacterIds)),
		Content:      s.Content,
		Status:       string(s.Status),
		AiContext:    s.AiContext,
		Transcript:   mustJSON(emptyIfNilSlice(s.Transcript)),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (m *StoryMapper) ToEntities(stories []*model.Story) []*entity.Story {
	entities := make([]*entity.Story, len(stories))
	for i, s := range stories {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
