package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Character struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name         string         `gorm:"type:varchar(255);not null"`
	Race         string         `gorm:"type:varchar(100)"`
	Subrace      string         `gorm:"type:varchar(100)"`
	Class        string         `gorm:"type:varchar(100)"`
	Level        int            `gorm:"not null;default:1"`
	Strength     int            `gorm:"not null;default:10"`
	Dexterity    int            `gorm:"not null;default:10"`
	Constitution int            `gorm:"not null;default:10"`
	Intelligence int            `gorm:"not null;default:10"`
	Wisdom       int            `gorm:"not null;default:10"`
	Charisma     int            `gorm:"not null;default:10"`
	Skills       datatypes.JSON `gorm:"type:jsonb"`
	Background   string         `gorm:"type:text"`
	AvatarURL    *string        `gorm:"type:text"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
}

func (Character) TableName() string {
	return "characters"
}

// InventoryItem is a denormalized sibling record: one row per item name,
// keyed by character id.
type InventoryItem struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	CharacterId uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}
