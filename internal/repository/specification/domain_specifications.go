package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByCharacterID struct {
	CharacterID uuid.UUID
}

func (s ByCharacterID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("character_id = ?", s.CharacterID)
}

type ByCampaignID struct {
	CampaignID uuid.UUID
}

func (s ByCampaignID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("campaign_id = ?", s.CampaignID)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
