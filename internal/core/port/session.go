package port

import "capbot/internal/core/domain"

type SessionStore interface {
	// Get returns the session for a user id, creating it lazily on first
	// interaction. Sessions live for the process lifetime.
	Get(userID int64) *domain.Session
}
