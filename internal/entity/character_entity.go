package entity

import (
	"time"

	"github.com/google/uuid"
)

// AbilityScores holds the six named ability scores, each 1-20.
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

type Character struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	Name       string
	Race       string
	Subrace    string
	Class      string
	Level      int
	Stats      AbilityScores
	Skills     []string
	Background string
	AvatarURL  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// InventoryItem is a denormalized sibling record keyed by character id,
// one row per item name.
type InventoryItem struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	CharacterId uuid.UUID
	Name        string
	CreatedAt   time.Time
}
