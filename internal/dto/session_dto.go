package dto

import (
	"dungeon-master-be/pkg/narrator"

	"github.com/google/uuid"
)

type OpenSessionResponse struct {
	StoryId    uuid.UUID          `json:"story_id"`
	Transcript []narrator.Message `json:"transcript"`
	Resumed    bool               `json:"resumed"`
}

type SendTurnRequest struct {
	StoryId uuid.UUID
	Content string `json:"content" validate:"required"`
}

type SendTurnResponse struct {
	StoryId    uuid.UUID          `json:"story_id"`
	Transcript []narrator.Message `json:"transcript"`
	Reply      narrator.Message   `json:"reply"`
	Failed     bool               `json:"failed"`
}
