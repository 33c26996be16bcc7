package cart

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"
)

const (
	DefaultMaxSessions = 10000
	DefaultSessionIdle = 30 * time.Minute
)

// Sessions hands out one Store per shopper session. All stores share the
// same Storage, each under its own key. Stores left idle for longer than
// the idle window, or pushed out by the size cap, are dropped from memory
// and rehydrated from Storage when the session comes back.
type Sessions struct {
	mu      sync.Mutex
	stores  *expirable.LRU[string, *Store]
	storage Storage
	log     logrus.FieldLogger
}

// NewSessions keeps at most maxStores stores, each for idle after its last
// use. Non-positive values select the defaults.
func NewSessions(storage Storage, log logrus.FieldLogger, maxStores int, idle time.Duration) *Sessions {
	if maxStores <= 0 {
		maxStores = DefaultMaxSessions
	}
	if idle <= 0 {
		idle = DefaultSessionIdle
	}
	return &Sessions{
		stores:  expirable.NewLRU[string, *Store](maxStores, nil, idle),
		storage: storage,
		log:     log.WithField("module", "cart"),
	}
}

// SessionKey is the storage key of a session's cart.
func SessionKey(sessionID string) string { return DefaultKey + ":" + sessionID }

// Get returns the session's store, rehydrating it on first use or after
// eviction. Every call restarts the idle window.
func (s *Sessions) Get(ctx context.Context, sessionID string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stores.Get(sessionID)
	if !ok {
		st = NewStore(ctx, s.storage, SessionKey(sessionID), s.log.WithField("session", sessionID))
	}
	s.stores.Add(sessionID, st)
	return st
}

// Len is the number of stores currently held in memory.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stores.Len()
}
