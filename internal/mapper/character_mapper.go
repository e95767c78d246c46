package mapper

import (
	"encoding/json"

	"dungeon-master-be/internal/entity"
	"dungeon-master-be/internal/model"
)

type CharacterMapper struct{}

func NewCharacterMapper() *CharacterMapper {
	return &CharacterMapper{}
}

func (m *CharacterMapper) ToEntity(c *model.Character) *entity.Character {
	if c == nil {
		return nil
	}
	var skills []string
	if len(c.Skills) > 0 {
		_ = json.Unmarshal(c.Skills, &skills)
	}
	return &entity.Character{
		Id:      c.Id,
		UserId:  c.UserId,
		Name:    c.Name,
		Race:    c.Race,
		Subrace: c.Subrace,
		Class:   c.Class,
		Level:   c.Level,
		Stats: entity.AbilityScores{
			Strength:     c.Strength,
			Dexterity:    c.Dexterity,
			Constitution: c.Constitution,
			Intelligence: c.Intelligence,
			Wisdom:       c.Wisdom,
			Charisma:     c.Charisma,
		},
		Skills:     skills,
		Background: c.Background,
		AvatarURL:  c.AvatarURL,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (m *CharacterMapper) ToModel(c *entity.Character) *model.Character {
	if c == nil {
		return nil
	}
	return &model.Character{
		Id:           c.Id,
		UserId:       c.UserId,
		Name:         c.Name,
		Race:         c.Race,
		Subrace:      c.Subrace,
		Class:        c.Class,
		Level:        c.Level,
		Strength:     c.Stats.Strength,
		Dexterity:    c.Stats.Dexterity,
		Constitution: c.Stats.Constitution,
		Intelligence: c.Stats.Intelligence,
		Wisdom:       c.Stats.Wisdom,
		Charisma:     c.Stats.Charisma,
		Skills:       mustJSON(emptyIfNilSlice(c.Skills)),
		Background:   c.Background,
		AvatarURL:    c.AvatarURL,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (m *CharacterMapper) ToEntities(characters []*model.Character) []*entity.Character {
	entities := make([]*entity.Character, len(characters))
	for i, c := range characters {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *CharacterMapper) InventoryItemToEntity(it *model.InventoryItem) *entity.InventoryItem {
	if it == nil {
		return nil
	}
	return &entity.InventoryItem{
		Id:          it.Id,
		UserId:      it.UserId,
		CharacterId: it.CharacterId,
		Name:        it.Name,
		CreatedAt:   it.CreatedAt,
	}
}

func (m *CharacterMapper) InventoryItemToModel(it *entity.InventoryItem) *model.InventoryItem {
	if it == nil {
		return nil
	}
	return &model.InventoryItem{
		Id:          it.Id,
		UserId:      it.UserId,
		CharacterId: it.CharacterId,
		Name:        it.Name,
		CreatedAt:   it.CreatedAt,
	}
}

func (m *CharacterMapper) InventoryItemsToEntities(items []*model.InventoryItem) []*entity.InventoryItem {
	entities := make([]*entity.InventoryItem, len(items))
	for i, it := range items {
		entities[i] = m.InventoryItemToEntity(it)
	}
	return entities
}
