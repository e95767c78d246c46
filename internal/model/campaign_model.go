package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Campaign embeds its locations and NPCs as JSONB; they have no
// independent lifecycle. Character references are a JSONB list of soft
// identifiers.
type Campaign struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId           uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name             string         `gorm:"type:varchar(255);not null"`
	Description      string         `gorm:"type:text"`
	Setting          string         `gorm:"type:varchar(255)"`
	WorldDescription string         `gorm:"type:text"`
	Locations        datatypes.JSON `gorm:"type:jsonb"`
	NPCs             datatypes.JSON `gorm:"type:jsonb;column:npcs"`
	CharacterIds     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
}

func (Campaign) TableName() string {
	return "campaigns"
}
