package service

import (
	"encoding/json"

	"dungeon-master-be/pkg/narrator"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// StoryTurnEvent travels over the in-process bus from the session
// service to the websocket broadcaster.
type StoryTurnEvent struct {
	UserId  uuid.UUID        `json:"user_id"`
	StoryId uuid.UUID        `json:"story_id"`
	User    narrator.Message `json:"user"`
	Reply   narrator.Message `json:"reply"`
}

type IPublisherService interface {
	PublishStoryTurn(event StoryTurnEvent) error
}

type publisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
}

func NewPublisherService(pubSub *gochannel.GoChannel, topicName string) IPublisherService {
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
	}
}

func (ps *publisherService) PublishStoryTurn(event StoryTurnEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	return ps.pubSub.Publish(ps.topicName, msg)
}
