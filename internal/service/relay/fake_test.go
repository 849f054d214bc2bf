package relay

import (
	"context"
	"sync"
	"time"

	"github.com/sandevgo/relaybot/internal/core"
)

const (
	sendContent = "content"
	sendText    = "text"
	sendNotify  = "notify"
)

type sent struct {
	to     int64
	op     string
	item   core.ContentItem
	text   string
	action *core.ControlAction
}

// fakeTransport records every outbound call. Sends to a chat listed in
// fail return that error.
type fakeTransport struct {
	mu     sync.Mutex
	sent   []sent
	fail   map[int64]error
	nextID int
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{fail: make(map[int64]error)}
}

func (f *fakeTransport) record(s sent) (core.MessageRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, s)
	if err := f.fail[s.to]; err != nil {
		return core.MessageRef{}, err
	}
	f.nextID++
	return core.MessageRef{ChatID: s.to, MessageID: f.nextID}, nil
}

func (f *fakeTransport) Send(ctx context.Context, to int64, item core.ContentItem, caption string, action *core.ControlAction) (core.MessageRef, error) {
	return f.record(sent{to: to, op: sendContent, item: item, text: caption, action: action})
}

func (f *fakeTransport) SendText(ctx context.Context, to int64, text string, action *core.ControlAction) (core.MessageRef, error) {
	return f.record(sent{to: to, op: sendText, text: text, action: action})
}

func (f *fakeTransport) Notify(ctx context.Context, to int64, text string) error {
	_, err := f.record(sent{to: to, op: sendNotify, text: text})
	return err
}

func (f *fakeTransport) to(id int64) []sent {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []sent
	for _, s := range f.sent {
		if s.to == id {
			out = append(out, s)
		}
	}
	return out
}

func (f *fakeTransport) all() []sent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sent(nil), f.sent...)
}

func (f *fakeTransport) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = nil
}

type testConfig struct {
	operator    int64
	historySize int
	maxFileSize int64
}

func (c testConfig) GetOperatorID() int64        { return c.operator }
func (c testConfig) GetServiceName() string      { return "FromGood" }
func (c testConfig) GetHistorySize() int         { return c.historySize }
func (c testConfig) GetMaxFileSize() int64       { return c.maxFileSize }
func (c testConfig) GetLocation() *time.Location { return time.UTC }

// mapStore is a minimal SessionStore that hands out the same pointer per user.
type mapStore struct {
	mu       sync.Mutex
	capacity int
	sessions map[int64]*core.Session
	saves    int
}

func newMapStore(capacity int) *mapStore {
	return &mapStore{capacity: capacity, sessions: make(map[int64]*core.Session)}
}

func (s *mapStore) Get(ctx context.Context, userID int64) (*core.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		sess = core.NewSession(s.capacity)
		s.sessions[userID] = sess
	}
	return sess, nil
}

func (s *mapStore) Save(ctx context.Context, userID int64, sess *core.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = sess
	s.saves++
	return nil
}

func (s *mapStore) peek(userID int64) (*core.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	return sess, ok
}
