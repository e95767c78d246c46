package dto

import (
	"time"

	"dungeon-master-be/internal/entity"

	"github.com/google/uuid"
)

type LocationPayload struct {
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type" validate:"omitempty,oneof=city town forest dungeon other"`
	Description string `json:"description"`
}

type NPCPayload struct {
	Name        string `json:"name" validate:"required"`
	Role        string `json:"role"`
	Description string `json:"description"`
}

type CreateCampaignRequest struct {
	Name             string            `json:"name" validate:"required"`
	Description      string            `json:"description"`
	Setting          string            `json:"setting"`
	WorldDescription string            `json:"world_description"`
	Locations        []LocationPayload `json:"locations" validate:"dive"`
	NPCs             []NPCPayload      `json:"npcs" validate:"dive"`
	CharacterIds     []uuid.UUID       `json:"character_ids"`
}

type CreateCampaignResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateCampaignRequest struct {
	Id               uuid.UUID
	Name             string            `json:"name" validate:"required"`
	Description      string            `json:"description"`
	Setting          string            `json:"setting"`
	WorldDescription string            `json:"world_description"`
	Locations        []LocationPayload `json:"locations" validate:"dive"`
	NPCs             []NPCPayload      `json:"npcs" validate:"dive"`
	CharacterIds     []uuid.UUID       `json:"character_ids"`
}

type CampaignResponse struct {
	Id               uuid.UUID         `json:"id"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	Setting          string            `json:"setting"`
	WorldDescription string            `json:"world_description"`
	Locations        []entity.Location `json:"locations"`
	NPCs             []entity.NPC      `json:"npcs"`
	CharacterIds     []uuid.UUID       `json:"character_ids"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}
