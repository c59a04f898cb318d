package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"hostelnexus-be/pkg/dialog"
)

// DialogRepository keeps per-conversation dialogue state in process memory.
// Capture drafts are short-lived by nature, so expiry doubles as abandonment
// cleanup.
type DialogRepository struct {
	cache *cache.Cache
}

func NewDialogRepository() *DialogRepository {
	// Default expiration of 1 hour, purge sweep every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &DialogRepository{
		cache: c,
	}
}

func (r *DialogRepository) Save(session *dialog.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *DialogRepository) Get(sessionID string) (*dialog.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*dialog.Session), true
	}
	return nil, false
}

func (r *DialogRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
