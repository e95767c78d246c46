package memory

import (
	"time"

	"dungeon-master-be/pkg/session"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps live play sessions in process memory, keyed
// by story id. It also tracks which stories have a narrator call in
// flight so a second submit can be rejected instead of queued.
type SessionRepository struct {
	cache    *cache.Cache
	inFlight *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Sessions idle for an hour are dropped; expired items are purged
	// every 10 minutes.
	return &SessionRepository{
		cache:    cache.New(1*time.Hour, 10*time.Minute),
		inFlight: cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (r *SessionRepository) Save(s session.Session) {
	r.cache.Set(s.StoryID.String(), s, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(storyID uuid.UUID) (session.Session, bool) {
	if x, found := r.cache.Get(storyID.String()); found {
		return x.(session.Session), true
	}
	return session.Session{}, false
}

func (r *SessionRepository) Delete(storyID uuid.UUID) {
	r.cache.Delete(storyID.String())
}

// TryAcquire marks a story as having an in-flight narrator call. It
// returns false when a call is already pending for that story.
func (r *SessionRepository) TryAcquire(storyID uuid.UUID) bool {
	err := r.inFlight.Add(storyID.String(), struct{}{}, cache.DefaultExpiration)
	return err == nil
}

func (r *SessionRepository) Release(storyID uuid.UUID) {
	r.inFlight.Delete(storyID.String())
}
