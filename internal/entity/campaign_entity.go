package entity

import (
	"time"

	"github.com/google/uuid"
)

type LocationType string

const (
	LocationTypeCity    LocationType = "city"
	LocationTypeTown    LocationType = "town"
	LocationTypeForest  LocationType = "forest"
	LocationTypeDungeon LocationType = "dungeon"
	LocationTypeOther   LocationType = "other"
)

// Location is embedded within a Campaign and has no independent lifecycle.
type Location struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// NPC is embedded within a Campaign.
type NPC struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description"`
}

type Campaign struct {
	Id               uuid.UUID
	UserId           uuid.UUID
	Name             string
	Description      string
	Setting          string
	WorldDescription string
	Locations        []Location
	NPCs             []NPC
	CharacterIds     []uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
