package core

import "context"

// SessionStore owns session lifecycle. Get creates the initial state when absent.
type SessionStore interface {
	Get(ctx context.Context, userID int64) (*Session, error)
	Save(ctx context.Context, userID int64, s *Session) error
}
