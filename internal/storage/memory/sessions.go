package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sandevgo/relaybot/internal/core"
)

// Sessions keeps sessions in process memory. Stored values are snapshots,
// callers never share a *core.Session with the store.
type Sessions struct {
	mu              sync.RWMutex
	historyCapacity int
	data            map[int64][]byte
}

func NewSessions(historyCapacity int) *Sessions {
	return &Sessions{
		historyCapacity: historyCapacity,
		data:            make(map[int64][]byte),
	}
}

func (s *Sessions) Get(ctx context.Context, userID int64) (*core.Session, error) {
	s.mu.RLock()
	raw, ok := s.data[userID]
	s.mu.RUnlock()

	sess := core.NewSession(s.historyCapacity)
	if !ok {
		return sess, nil
	}
	if err := json.Unmarshal(raw, sess); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return sess, nil
}

func (s *Sessions) Save(ctx context.Context, userID int64, sess *core.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = raw
	return nil
}

func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
