package access

import (
	"crypto/rand"
	"encoding/hex"
	"sync"

	"github.com/pmlaogao/portal/internal/domain"
)

// Sessions is the in-memory browsing-session registry. Sessions are not
// persisted and never expire mid-session: a lapsed membership window only
// takes effect on the next login. The state machine per session is
// Anonymous -> Authenticated -> (explicit logout) -> Anonymous.
type Sessions struct {
	mu      sync.RWMutex
	byToken map[string]domain.Identity
}

// NewSessions creates an empty registry.
func NewSessions() *Sessions {
	return &Sessions{byToken: make(map[string]domain.Identity)}
}

// Start registers an authenticated identity and returns its opaque token.
func (s *Sessions) Start(id domain.Identity) string {
	token := newToken()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byToken[token] = id

	return token
}

// Lookup resolves a token to its identity.
func (s *Sessions) Lookup(token string) (domain.Identity, bool) {
	if token == "" {
		return domain.Identity{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byToken[token]
	return id, ok
}

// End removes a session. Ending an unknown token is a no-op.
func (s *Sessions) End(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byToken, token)
}

// Count returns the number of live sessions.
func (s *Sessions) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byToken)
}

func newToken() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
