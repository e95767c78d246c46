package dto

import (
	"time"

	"dungeon-master-be/internal/entity"

	"github.com/google/uuid"
)

type AbilityScoresPayload struct {
	Strength     int `json:"strength" validate:"min=1,max=20"`
	Dexterity    int `json:"dexterity" validate:"min=1,max=20"`
	Constitution int `json:"constitution" validate:"min=1,max=20"`
	Intelligence int `json:"intelligence" validate:"min=1,max=20"`
	Wisdom       int `json:"wisdom" validate:"min=1,max=20"`
	Charisma     int `json:"charisma" validate:"min=1,max=20"`
}

type CreateCharacterRequest struct {
	Name       string               `json:"name" validate:"required"`
	Race       string               `json:"race"`
	Subrace    string               `json:"subrace"`
	Class      string               `json:"class"`
	Level      int                  `json:"level" validate:"min=1,max=20"`
	Stats      AbilityScoresPayload `json:"stats"`
	Skills     []string             `json:"skills"`
	Inventory  []string             `json:"inventory"`
	Background string               `json:"background"`
}

type CreateCharacterResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateCharacterRequest struct {
	Id         uuid.UUID
	Name       string               `json:"name" validate:"required"`
	Race       string               `json:"race"`
	Subrace    string               `json:"subrace"`
	Class      string               `json:"class"`
	Level      int                  `json:"level" validate:"min=1,max=20"`
	Stats      AbilityScoresPayload `json:"stats"`
	Skills     []string             `json:"skills"`
	Inventory  []string             `json:"inventory"`
	Background string               `json:"background"`
}

type CharacterResponse struct {
	Id         uuid.UUID            `json:"id"`
	Name       string               `json:"name"`
	Race       string               `json:"race"`
	Subrace    string               `json:"subrace,omitempty"`
	Class      string               `json:"class"`
	Level      int                  `json:"level"`
	Stats      entity.AbilityScores `json:"stats"`
	Skills     []string             `json:"skills"`
	Inventory  []string             `json:"inventory"`
	Background string               `json:"background"`
	AvatarURL  string               `json:"avatar_url,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}
