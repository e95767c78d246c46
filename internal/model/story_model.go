package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Story keeps campaign_id and character_ids as plain soft references
// (no foreign keys): deleting a campaign or character must never cascade
// into stories. The transcript is a JSONB array of {role, content}
// objects in chronological order.
type Story struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title        string         `gorm:"type:varchar(255);not null"`
	CampaignId   *uuid.UUID     `gorm:"type:uuid"`
	CharacterIds datatypes.JSON `gorm:"type:jsonb"`
	Content      string         `gorm:"type:text"`
	Status       string         `gorm:"type:varchar(50);not null;default:'draft'"`
	AiContext    string         `gorm:"type:text"`
	Transcript   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
}

func (Story) TableName() string {
	return "stories"
}
