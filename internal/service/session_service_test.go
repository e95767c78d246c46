package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"dungeon-master-be/internal/dto"
	"dungeon-master-be/internal/entity"
	"dungeon-master-be/internal/repository/contract"
	"dungeon-master-be/internal/repository/memory"
	"dungeon-master-be/internal/repository/specification"
	"dungeon-master-be/internal/repository/unitofwork"
	"dungeon-master-be/pkg/narrator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type stubNarrator struct {
	mu    sync.Mutex
	calls [][]narrator.Message
	reply narrator.Message
	err   error
	block chan struct{}
}

func (n *stubNarrator) Complete(ctx context.Context, transcript []narrator.Message, options ...narrator.Option) (narrator.Message, error) {
	if n.block != nil {
		<-n.block
	}
	n.mu.Lock()
	cloned := make([]narrator.Message, len(transcript))
	copy(cloned, transcript)
	n.calls = append(n.calls, cloned)
	n.mu.Unlock()
	if n.err != nil {
		return narrator.Message{}, n.err
	}
	return n.reply, nil
}

func (n *stubNarrator) callCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

type fakeStoryRepo struct {
	mu    sync.Mutex
	story *entity.Story
}

func (r *fakeStoryRepo) Create(ctx context.Context, story *entity.Story) error { return nil }
func (r *fakeStoryRepo) Update(ctx context.Context, story *entity.Story) error { return nil }
func (r *fakeStoryRepo) Delete(ctx context.Context, id uuid.UUID) error        { return nil }

func (r *fakeStoryRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Story, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.story == nil {
		return nil, nil
	}
	clone := *r.story
	clone.Transcript = append([]narrator.Message{}, r.story.Transcript...)
	return &clone, nil
}

func (r *fakeStoryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Story, error) {
	return nil, nil
}

func (r *fakeStoryRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

func (r *fakeStoryRepo) UpdateTranscript(ctx context.Context, id uuid.UUID, transcript []narrator.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.story.Transcript = append([]narrator.Message{}, transcript...)
	return nil
}

func (r *fakeStoryRepo) persisted() []narrator.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]narrator.Message{}, r.story.Transcript...)
}

type fakeUow struct {
	stories *fakeStoryRepo
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository           { return nil }
func (u *fakeUow) CampaignRepository() contract.CampaignRepository   { return nil }
func (u *fakeUow) CharacterRepository() contract.CharacterRepository { return nil }
func (u *fakeUow) InventoryRepository() contract.InventoryRepository { return nil }
func (u *fakeUow) StoryRepository() contract.StoryRepository         { return u.stories }

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func newTestService(story *entity.Story, n narrator.Narrator, seedOpening bool) (ISessionService, *fakeStoryRepo) {
	repo := &fakeStoryRepo{story: story}
	factory := &fakeFactory{uow: &fakeUow{stories: repo}}
	svc := NewSessionService(factory, memory.NewSessionRepository(), n, nil, nil, noopLogger{}, seedOpening)
	return svc, repo
}

func testStory(userId uuid.UUID, transcript []narrator.Message) *entity.Story {
	return &entity.Story{
		Id:         uuid.New(),
		UserId:     userId,
		Title:      "The Drowned Bell",
		Status:     entity.StoryStatusInProgress,
		AiContext:  "A coastal mystery with a cursed chapel.",
		Transcript: transcript,
	}
}

// --- tests ---

func TestOpenSessionSeedsEmptyTranscript(t *testing.T) {
	userId := uuid.New()
	story := testStory(userId, nil)
	n := &stubNarrator{reply: narrator.Message{Role: narrator.RoleAssistant, Content: "The bell tolls over the bay."}}
	svc, repo := newTestService(story, n, true)

	res, err := svc.OpenSession(context.Background(), userId, story.Id)
	require.NoError(t, err)

	assert.False(t, res.Resumed)
	require.Len(t, res.Transcript, 2)
	assert.Equal(t, narrator.RoleSystem, res.Transcript[0].Role)
	assert.Equal(t, narrator.RoleAssistant, res.Transcript[1].Role)

	// The seed request carried only the system message
	require.Equal(t, 1, n.callCount())
	require.Len(t, n.calls[0], 1)
	assert.Equal(t, narrator.RoleSystem, n.calls[0][0].Role)

	assert.Equal(t, res.Transcript, repo.persisted())
}

func TestOpenSessionResumesWithoutNarratorCall(t *testing.T) {
	userId := uuid.New()
	existing := []narrator.Message{
		{Role: narrator.RoleSystem, Content: "You are the dungeon master."},
		{Role: narrator.RoleAssistant, Content: "The road forks ahead."},
		{Role: narrator.RoleUser, Content: "I take the left path."},
	}
	story := testStory(userId, existing)
	n := &stubNarrator{reply: narrator.Message{Role: narrator.RoleAssistant, Content: "unused"}}
	svc, repo := newTestService(story, n, true)

	res, err := svc.OpenSession(context.Background(), userId, story.Id)
	require.NoError(t, err)

	assert.True(t, res.Resumed)
	assert.Equal(t, existing, res.Transcript)
	assert.Equal(t, 0, n.callCount())
	assert.Equal(t, existing, repo.persisted())
}

func TestOpenSessionSeedFailureStillOpens(t *testing.T) {
	userId := uuid.New()
	story := testStory(userId, nil)
	n := &stubNarrator{err: assert.AnError}
	svc, repo := newTestService(story, n, true)

	res, err := svc.OpenSession(context.Background(), userId, story.Id)
	require.NoError(t, err)

	require.Len(t, res.Transcript, 1)
	assert.Equal(t, narrator.RoleSystem, res.Transcript[0].Role)
	assert.Equal(t, res.Transcript, repo.persisted())
}

func TestSendTurnAppendsUserAndReply(t *testing.T) {
	userId := uuid.New()
	existing := []narrator.Message{
		{Role: narrator.RoleSystem, Content: "You are the dungeon master."},
		{Role: narrator.RoleAssistant, Content: "Night falls on the vale."},
	}
	story := testStory(userId, existing)
	n := &stubNarrator{reply: narrator.Message{Role: narrator.RoleAssistant, Content: "A wolf howls in answer."}}
	svc, repo := newTestService(story, n, true)

	res, err := svc.SendTurn(context.Background(), userId, &dto.SendTurnRequest{
		StoryId: story.Id,
		Content: "I light a torch.",
	})
	require.NoError(t, err)

	assert.False(t, res.Failed)
	require.Len(t, res.Transcript, 4)
	assert.Equal(t, narrator.RoleUser, res.Transcript[2].Role)
	assert.Equal(t, "I light a torch.", res.Transcript[2].Content)
	assert.Equal(t, narrator.RoleAssistant, res.Transcript[3].Role)
	assert.Equal(t, res.Transcript, repo.persisted())

	// The outbound request was base + user, no reply yet
	require.Equal(t, 1, n.callCount())
	require.Len(t, n.calls[0], 3)
}

func TestSendTurnNarratorFailureSynthesizesErrorReply(t *testing.T) {
	userId := uuid.New()
	existing := []narrator.Message{
		{Role: narrator.RoleSystem, Content: "You are the dungeon master."},
	}
	story := testStory(userId, existing)
	n := &stubNarrator{err: assert.AnError}
	svc, repo := newTestService(story, n, true)

	res, err := svc.SendTurn(context.Background(), userId, &dto.SendTurnRequest{
		StoryId: story.Id,
		Content: "I open the door.",
	})
	require.NoError(t, err)

	assert.True(t, res.Failed)
	require.Len(t, res.Transcript, 3)
	assert.Equal(t, narrator.RoleUser, res.Transcript[1].Role)
	assert.Equal(t, narrator.RoleAssistant, res.Transcript[2].Role)
	assert.Contains(t, res.Transcript[2].Content, "Sorry, I encountered an error. Please try again.")
	assert.Contains(t, res.Transcript[2].Content, assert.AnError.Error())

	// The failed turn is persisted, not retried
	assert.Equal(t, res.Transcript, repo.persisted())
}

func TestSendTurnOnUnopenedStoryAssemblesSystemMessage(t *testing.T) {
	userId := uuid.New()
	story := testStory(userId, nil)
	n := &stubNarrator{reply: narrator.Message{Role: narrator.RoleAssistant, Content: "You stand at the gates."}}
	svc, repo := newTestService(story, n, true)

	res, err := svc.SendTurn(context.Background(), userId, &dto.SendTurnRequest{
		StoryId: story.Id,
		Content: "I approach the gates.",
	})
	require.NoError(t, err)

	require.Len(t, res.Transcript, 3)
	assert.Equal(t, narrator.RoleSystem, res.Transcript[0].Role)
	assert.Equal(t, narrator.RoleUser, res.Transcript[1].Role)
	assert.Equal(t, narrator.RoleAssistant, res.Transcript[2].Role)
	assert.Equal(t, res.Transcript, repo.persisted())
}

func TestSendTurnRejectsBlankContent(t *testing.T) {
	userId := uuid.New()
	existing := []narrator.Message{
		{Role: narrator.RoleSystem, Content: "You are the dungeon master."},
	}
	story := testStory(userId, existing)
	n := &stubNarrator{reply: narrator.Message{Role: narrator.RoleAssistant, Content: "unused"}}
	svc, repo := newTestService(story, n, true)

	for _, content := range []string{"", "   ", "\n\t "} {
		_, err := svc.SendTurn(context.Background(), userId, &dto.SendTurnRequest{
			StoryId: story.Id,
			Content: content,
		})
		assert.ErrorIs(t, err, ErrEmptyTurn)
	}

	assert.Equal(t, 0, n.callCount())
	assert.Equal(t, existing, repo.persisted())
}

func TestSendTurnTrimsContent(t *testing.T) {
	userId := uuid.New()
	existing := []narrator.Message{
		{Role: narrator.RoleSystem, Content: "You are the dungeon master."},
	}
	story := testStory(userId, existing)
	n := &stubNarrator{reply: narrator.Message{Role: narrator.RoleAssistant, Content: "The door creaks open."}}
	svc, _ := newTestService(story, n, true)

	res, err := svc.SendTurn(context.Background(), userId, &dto.SendTurnRequest{
		StoryId: story.Id,
		Content: "  I open the door.  \n",
	})
	require.NoError(t, err)

	assert.Equal(t, "I open the door.", res.Transcript[1].Content)
}

func TestSendTurnRejectsWhileInFlight(t *testing.T) {
	userId := uuid.New()
	existing := []narrator.Message{
		{Role: narrator.RoleSystem, Content: "You are the dungeon master."},
	}
	story := testStory(userId, existing)
	block := make(chan struct{})
	n := &stubNarrator{
		reply: narrator.Message{Role: narrator.RoleAssistant, Content: "done"},
		block: block,
	}
	svc, _ := newTestService(story, n, true)

	done := make(chan error, 1)
	go func() {
		_, err := svc.SendTurn(context.Background(), userId, &dto.SendTurnRequest{
			StoryId: story.Id,
			Content: "first",
		})
		done <- err
	}()

	// Wait for the first turn to reach the narrator call
	time.Sleep(50 * time.Millisecond)

	_, err := svc.SendTurn(context.Background(), userId, &dto.SendTurnRequest{
		StoryId: story.Id,
		Content: "second",
	})
	assert.ErrorIs(t, err, ErrTurnInFlight)

	close(block)
	require.NoError(t, <-done)

	// Once released, sending works again
	_, err = svc.SendTurn(context.Background(), userId, &dto.SendTurnRequest{
		StoryId: story.Id,
		Content: "third",
	})
	assert.NoError(t, err)
}
