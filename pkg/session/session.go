package session

import (
	"dungeon-master-be/pkg/narrator"

	"github.com/google/uuid"
)

// Status tracks where a story session is in its lifecycle.
// Unopened -> Opening -> Ready -> Sending -> Ready (loop). Failures land
// back in Ready with an error entry appended; there is no terminal
// failure state.
type Status string

const (
	StatusUnopened Status = "unopened"
	StatusOpening  Status = "opening"
	StatusReady    Status = "ready"
	StatusSending  Status = "sending"
)

// Session is the in-memory view of one story conversation. It mirrors
// the persisted transcript; the persisted copy stays authoritative and
// is reconciled back in after every write. All transitions are pure:
// they return a new value and never touch I/O.
type Session struct {
	StoryID    uuid.UUID
	Transcript []narrator.Message
	Status     Status
}

func New(storyID uuid.UUID) Session {
	return Session{
		StoryID: storyID,
		Status:  StatusUnopened,
	}
}

// Opening marks the session as loading its persisted transcript.
func (s Session) Opening() Session {
	s.Status = StatusOpening
	return s
}

// Opened adopts a transcript as-is and settles into Ready.
func (s Session) Opened(transcript []narrator.Message) Session {
	s.Transcript = cloneTranscript(transcript)
	s.Status = StatusReady
	return s
}

// Sending marks a turn submission as in flight.
func (s Session) Sending() Session {
	s.Status = StatusSending
	return s
}

// InFlight reports whether a turn submission is currently outstanding.
func (s Session) InFlight() bool {
	return s.Status == StatusSending
}

// WithUserMessage applies the optimistic local update: the user's text is
// appended immediately, before the network round-trip completes.
func (s Session) WithUserMessage(text string) Session {
	s.Transcript = append(cloneTranscript(s.Transcript), narrator.Message{
		Role:    narrator.RoleUser,
		Content: text,
	})
	return s
}

// Reconciled replaces the in-memory transcript with the authoritative
// persisted one and settles back into Ready.
func (s Session) Reconciled(transcript []narrator.Message) Session {
	s.Transcript = cloneTranscript(transcript)
	s.Status = StatusReady
	return s
}

func cloneTranscript(transcript []narrator.Message) []narrator.Message {
	if transcript == nil {
		return nil
	}
	out := make([]narrator.Message, len(transcript))
	copy(out, transcript)
	return out
}
