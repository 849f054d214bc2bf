package core

// Session is the per-user conversation state.
// Both flags only ever move from false to true.
type Session struct {
	AckSent         bool     `json:"ack_sent"`
	DialogueStarted bool     `json:"dialogue_started"`
	History         *History `json:"history"`
}

func NewSession(historyCapacity int) *Session {
	return &Session{History: NewHistory(historyCapacity)}
}

func (s *Session) MarkAckSent() { s.AckSent = true }

func (s *Session) MarkDialogueStarted() { s.DialogueStarted = true }
