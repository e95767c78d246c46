package dto

import (
	"time"

	"dungeon-master-be/pkg/narrator"

	"github.com/google/uuid"
)

type CreateStoryRequest struct {
	Title        string      `json:"title" validate:"required"`
	CampaignId   *uuid.UUID  `json:"campaign_id"`
	CharacterIds []uuid.UUID `json:"character_ids"`
	Content      string      `json:"content"`
	Status       string      `json:"status" validate:"omitempty,oneof=draft in-progress completed"`
	AiContext    string      `json:"ai_context"`
}

type CreateStoryResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateStoryRequest struct {
	Id           uuid.UUID
	Title        string      `json:"title" validate:"required"`
	CampaignId   *uuid.UUID  `json:"campaign_id"`
	CharacterIds []uuid.UUID `json:"character_ids"`
	Content      string      `json:"content"`
	Status       string      `json:"status" validate:"omitempty,oneof=draft in-progress completed"`
	AiContext    string      `json:"ai_context"`
}

type StoryResponse struct {
	Id           uuid.UUID          `json:"id"`
	Title        string             `json:"title"`
	CampaignId   *uuid.UUID         `json:"campaign_id"`
	CharacterIds []uuid.UUID        `json:"character_ids"`
	Content      string             `json:"content"`
	Status       string             `json:"status"`
	AiContext    string             `json:"ai_context"`
	Transcript   []narrator.Message `json:"transcript"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}
