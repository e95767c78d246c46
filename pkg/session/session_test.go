package session

import (
	"testing"

	"dungeon-master-be/pkg/narrator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLifecycleTransitions(t *testing.T) {
	s := New(uuid.New())
	assert.Equal(t, StatusUnopened, s.Status)

	s = s.Opening()
	assert.Equal(t, StatusOpening, s.Status)

	persisted := []narrator.Message{
		{Role: narrator.RoleSystem, Content: "You are the dungeon master."},
	}
	s = s.Opened(persisted)
	assert.Equal(t, StatusReady, s.Status)
	assert.Equal(t, persisted, s.Transcript)

	s = s.Sending()
	assert.True(t, s.InFlight())

	s = s.Reconciled(append(persisted, narrator.Message{Role: narrator.RoleUser, Content: "hi"}))
	assert.Equal(t, StatusReady, s.Status)
	assert.Len(t, s.Transcript, 2)
}

func TestWithUserMessageIsOptimistic(t *testing.T) {
	s := New(uuid.New()).Opened([]narrator.Message{
		{Role: narrator.RoleSystem, Content: "context"},
	})

	updated := s.WithUserMessage("I open the door.")

	assert.Len(t, updated.Transcript, 2)
	assert.Equal(t, narrator.RoleUser, updated.Transcript[1].Role)
	assert.Equal(t, "I open the door.", updated.Transcript[1].Content)

	// The original value is untouched; transitions are pure.
	assert.Len(t, s.Transcript, 1)
}

func TestReconciledReplacesOptimisticState(t *testing.T) {
	s := New(uuid.New()).Opened([]narrator.Message{
		{Role: narrator.RoleSystem, Content: "context"},
	})
	s = s.Sending().WithUserMessage("optimistic")

	authoritative := []narrator.Message{
		{Role: narrator.RoleSystem, Content: "context"},
		{Role: narrator.RoleUser, Content: "optimistic"},
		{Role: narrator.RoleAssistant, Content: "reply"},
	}
	s = s.Reconciled(authoritative)

	assert.Equal(t, authoritative, s.Transcript)
	assert.False(t, s.InFlight())
}
