package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dungeon-master-be/internal/dto"
	"dungeon-master-be/internal/entity"
	"dungeon-master-be/internal/pkg/logger"
	"dungeon-master-be/internal/repository/memory"
	"dungeon-master-be/internal/repository/specification"
	"dungeon-master-be/internal/repository/unitofwork"
	"dungeon-master-be/pkg/events"
	"dungeon-master-be/pkg/narrator"
	pktNats "dungeon-master-be/pkg/nats"
	"dungeon-master-be/pkg/prompt"
	"dungeon-master-be/pkg/session"

	"github.com/google/uuid"
)

// ErrTurnInFlight is returned when a turn is submitted while a previous
// narrator call for the same story is still pending.
var ErrTurnInFlight = errors.New("a turn is already in progress for this story")

// ErrEmptyTurn is returned for turn content that is empty or whitespace
// only; blank turns never enter the transcript.
var ErrEmptyTurn = errors.New("turn content cannot be empty")

const turnErrorPrefix = "Sorry, I encountered an error. Please try again."

type ISessionService interface {
	OpenSession(ctx context.Context, userId uuid.UUID, storyId uuid.UUID) (*dto.OpenSessionResponse, error)
	SendTurn(ctx context.Context, userId uuid.UUID, req *dto.SendTurnRequest) (*dto.SendTurnResponse, error)
}

type sessionService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessions       *memory.SessionRepository
	narrator       narrator.Narrator
	publisher      IPublisherService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
	seedOpening    bool
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.SessionRepository,
	n narrator.Narrator,
	publisher IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
	seedOpening bool,
) ISessionService {
	return &sessionService{
		uowFactory:     uowFactory,
		sessions:       sessions,
		narrator:       n,
		publisher:      publisher,
		eventPublisher: eventPublisher,
		logger:         log,
		seedOpening:    seedOpening,
	}
}

func (s *sessionService) loadStory(ctx context.Context, uow unitofwork.UnitOfWork, userId, storyId uuid.UUID) (*entity.Story, error) {
	story, err := uow.StoryRepository().FindOne(ctx,
		specification.ByID{ID: storyId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, fmt.Errorf("story not found")
	}
	return story, nil
}

// buildSystemMessage assembles the narrator's system prompt from the
// story and everything it references. Missing campaigns or characters
// degrade to fallback text, they never fail the build.
func (s *sessionService) buildSystemMessage(ctx context.Context, uow unitofwork.UnitOfWork, story *entity.Story) narrator.Message {
	var campaign *entity.Campaign
	if story.CampaignId != nil {
		campaign, _ = uow.CampaignRepository().FindOne(ctx, specification.ByID{ID: *story.CampaignId})
	}

	var sheets []prompt.CharacterSheet
	if len(story.CharacterIds) > 0 {
		characters, err := uow.CharacterRepository().FindAll(ctx, specification.ByIDs{IDs: story.CharacterIds})
		if err == nil {
			for _, c := range characters {
				items, _ := uow.InventoryRepository().FindAll(ctx,
					specification.ByCharacterID{CharacterID: c.Id},
				)
				inventory := make([]string, len(items))
				for i, it := range items {
					inventory[i] = it.Name
				}
				sheets = append(sheets, prompt.CharacterSheet{
					Character: c,
					Inventory: inventory,
				})
			}
		}
	}

	content := prompt.NewContextBuilder(story, campaign, sheets).Build()
	return narrator.Message{Role: narrator.RoleSystem, Content: content}
}

// OpenSession prepares a story for play. A non-empty persisted
// transcript is resumed untouched with no narrator call. An empty one
// gets the system message and, when seeding is enabled, one opening
// narration; if that call fails the session still opens with just the
// system message.
func (s *sessionService) OpenSession(ctx context.Context, userId uuid.UUID, storyId uuid.UUID) (*dto.OpenSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	story, err := s.loadStory(ctx, uow, userId, storyId)
	if err != nil {
		return nil, err
	}

	sess := session.New(storyId).Opening()

	if len(story.Transcript) > 0 {
		sess = sess.Opened(story.Transcript)
		s.sessions.Save(sess)
		return &dto.OpenSessionResponse{
			StoryId:    storyId,
			Transcript: sess.Transcript,
			Resumed:    true,
		}, nil
	}

	systemMsg := s.buildSystemMessage(ctx, uow, story)
	transcript := []narrator.Message{systemMsg}

	if s.seedOpening {
		reply, err := s.narrator.Complete(ctx, transcript)
		if err != nil {
			s.logger.Warn("session", "Opening narration failed, session opens without it", map[string]interface{}{
				"story_id": storyId.String(),
				"error":    err.Error(),
			})
		} else {
			transcript = append(transcript, reply)
		}
	}

	if err := uow.StoryRepository().UpdateTranscript(ctx, storyId, transcript); err != nil {
		return nil, err
	}

	sess = sess.Opened(transcript)
	s.sessions.Save(sess)

	s.publishSessionOpened(ctx, userId, storyId)

	return &dto.OpenSessionResponse{
		StoryId:    storyId,
		Transcript: sess.Transcript,
		Resumed:    false,
	}, nil
}

// SendTurn submits one player message. The persisted transcript is
// re-read as the authoritative base before the narrator call, so stale
// in-memory state never leaks into storage. A narrator failure persists
// the user's message together with a synthetic error reply; the turn is
// consumed either way.
func (s *sessionService) SendTurn(ctx context.Context, userId uuid.UUID, req *dto.SendTurnRequest) (*dto.SendTurnResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyTurn
	}

	if !s.sessions.TryAcquire(req.StoryId) {
		return nil, ErrTurnInFlight
	}
	defer s.sessions.Release(req.StoryId)

	uow := s.uowFactory.NewUnitOfWork(ctx)

	story, err := s.loadStory(ctx, uow, userId, req.StoryId)
	if err != nil {
		return nil, err
	}

	// The persisted transcript is the base, not whatever the in-memory
	// session last saw.
	base := story.Transcript
	if len(base) == 0 {
		// Turn sent against a never-opened story: assemble the system
		// message here rather than failing.
		base = []narrator.Message{s.buildSystemMessage(ctx, uow, story)}
	}

	userMsg := narrator.Message{Role: narrator.RoleUser, Content: content}

	sess, ok := s.sessions.Get(req.StoryId)
	if !ok {
		sess = session.New(req.StoryId).Opened(base)
	}
	sess = sess.Sending().WithUserMessage(content)
	s.sessions.Save(sess)

	outbound := append(append([]narrator.Message{}, base...), userMsg)

	reply, callErr := s.narrator.Complete(ctx, outbound)
	failed := callErr != nil
	if failed {
		reply = narrator.Message{
			Role:    narrator.RoleAssistant,
			Content: fmt.Sprintf("%s (%s)", turnErrorPrefix, callErr.Error()),
		}
		s.logger.Error("session", "Narrator call failed", map[string]interface{}{
			"story_id": req.StoryId.String(),
			"error":    callErr.Error(),
		})
	}

	final := append(outbound, reply)

	if err := uow.StoryRepository().UpdateTranscript(ctx, req.StoryId, final); err != nil {
		return nil, err
	}

	sess = sess.Reconciled(final)
	s.sessions.Save(sess)

	if !failed {
		s.publishTurnAppended(ctx, userId, req.StoryId, userMsg, reply)
	}

	return &dto.SendTurnResponse{
		StoryId:    req.StoryId,
		Transcript: final,
		Reply:      reply,
		Failed:     failed,
	}, nil
}

func (s *sessionService) publishSessionOpened(ctx context.Context, userId, storyId uuid.UUID) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type: events.TypeSessionOpened,
		Data: map[string]interface{}{
			"user_id":  userId,
			"story_id": storyId,
		},
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("session", "Failed to publish session open event", map[string]interface{}{
			"story_id": storyId.String(),
			"error":    err.Error(),
		})
	}
}

func (s *sessionService) publishTurnAppended(ctx context.Context, userId, storyId uuid.UUID, userMsg, reply narrator.Message) {
	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeStoryTurnAppended,
			Data: map[string]interface{}{
				"user_id":  userId,
				"story_id": storyId,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("session", "Failed to publish turn event", map[string]interface{}{
				"story_id": storyId.String(),
				"error":    err.Error(),
			})
		}
	}

	// In-process bus feeds the websocket broadcast
	if s.publisher != nil {
		payload := StoryTurnEvent{
			UserId:  userId,
			StoryId: storyId,
			User:    userMsg,
			Reply:   reply,
		}
		if err := s.publisher.PublishStoryTurn(payload); err != nil {
			s.logger.Warn("session", "Failed to enqueue turn broadcast", map[string]interface{}{
				"story_id": storyId.String(),
				"error":    err.Error(),
			})
		}
	}
}
