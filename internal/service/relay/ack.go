package relay

import "github.com/sandevgo/relaybot/internal/core"

// ShouldAck reports whether the one-time acknowledgment is still due.
func ShouldAck(s *core.Session) bool {
	return !s.AckSent
}

func FireAck(s *core.Session) {
	s.MarkAckSent()
}
