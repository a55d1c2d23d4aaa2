package memory

import (
	"sync"

	"capbot/internal/core/domain"
)

// SessionStore keeps per-user sessions in process memory. Sessions are
// created lazily on first interaction and never expire.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*domain.Session),
	}
}

func (s *SessionStore) Get(userID int64) *domain.Session {
	s.mu.RLock()
	sess, ok := s.sessions[userID]
	s.mu.RUnlock()

	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[userID]; ok {
		return sess
	}

	sess = &domain.Session{
		Platform:     domain.DefaultPlatform,
		EditingIndex: domain.NoEditing,
	}
	s.sessions[userID] = sess

	return sess
}
