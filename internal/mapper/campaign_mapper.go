package mapper

import (
	"encoding/json"

	"dungeon-master-be/internal/entity"
	"dungeon-master-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CampaignMapper struct{}

func NewCampaignMapper() *CampaignMapper {
	return &CampaignMapper{}
}

func (m *CampaignMapper) ToEntity(c *model.Campaign) *entity.Campaign {
	if c == nil {
		return nil
	}
	var locations []entity.Location
	if len(c.Locations) > 0 {
		_ = json.Unmarshal(c.Locations, &locations)
	}
	var npcs []entity.NPC
	if len(c.NPCs) > 0 {
		_ = json.Unmarshal(c.NPCs, &npcs)
	}
	var characterIds []uuid.UUID
	if len(c.CharacterIds) > 0 {
		_ = json.Unmarshal(c.CharacterIds, &characterIds)
	}
	return &entity.Campaign{
		Id:               c.Id,
		UserId:           c.UserId,
		Name:             c.Name,
		Description:      c.Description,
		Setting:          c.Setting,
		WorldDescription: c.WorldDescription,
		Locations:        locations,
		NPCs:             npcs,
		CharacterIds:     characterIds,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func (m *CampaignMapper) ToModel(c *entity.Campaign) *model.Campaign {
	if c == nil {
		return nil
	}
	return &model.Campaign{
		Id:               c.Id,
		UserId:           c.UserId,
		Name:             c.Name,
		Description:      c.Description,
		Setting:          c.Setting,
		WorldDescription: c.WorldDescription,
		Locations:        mustJSON(emptyIfNilSlice(c.Locations)),
		NPCs:             mustJSON(emptyIfNilSlice(c.NPCs)),
		CharacterIds:     mustJSON(emptyIfNilSlice(c.CharacterIds)),
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func (m *CampaignMapper) ToEntities(campaigns []*model.Campaign) []*entity.Campaign {
	entities := make([]*entity.Campaign, len(campaigns))
	for i, c := range campaigns {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

// mustJSON marshals values destined for jsonb columns. The inputs are
// plain structs and slices, so marshalling cannot fail at runtime.
func mustJSON(v any) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}

// emptyIfNilSlice keeps jsonb columns as [] rather than null.
func emptyIfNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
