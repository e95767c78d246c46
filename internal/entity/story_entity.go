package entity

import (
	"time"

	"dungeon-master-be/pkg/narrator"

	"github.com/google/uuid"
)

type StoryStatus string

const (
	StoryStatusDraft      StoryStatus = "draft"
	StoryStatusInProgress StoryStatus = "in-progress"
	StoryStatusCompleted  StoryStatus = "completed"
)

// Story references its Campaign and Characters by soft reference: a
// deleted Campaign or Character never cascades into the Story, readers
// fall back to "unknown" instead.
type Story struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Title        string
	CampaignId   *uuid.UUID
	CharacterIds []uuid.UUID
	Content      string
	Status       StoryStatus
	AiContext    string
	Transcript   []narrator.Message
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
