package core

import (
	"encoding/json"
	"strings"
)

const (
	DefaultHistoryCapacity = 5
	HistoryDivider         = "———"
)

type ConversationEntry struct {
	Author    string `json:"author"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

func (e ConversationEntry) String() string {
	return e.Author + " (" + e.Timestamp + "): " + e.Content
}

// History is a fixed-capacity ring of conversation entries.
// The oldest entry is evicted once capacity is reached.
type History struct {
	buf   []ConversationEntry
	start int
	n     int
}

func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	return &History{buf: make([]ConversationEntry, capacity)}
}

func (h *History) Cap() int { return len(h.buf) }

func (h *History) Len() int { return h.n }

func (h *History) Append(e ConversationEntry) {
	if h.n < len(h.buf) {
		h.buf[(h.start+h.n)%len(h.buf)] = e
		h.n++
		return
	}
	h.buf[h.start] = e
	h.start = (h.start + 1) % len(h.buf)
}

// Entries returns a chronological copy.
func (h *History) Entries() []ConversationEntry {
	out := make([]ConversationEntry, h.n)
	for i := 0; i < h.n; i++ {
		out[i] = h.buf[(h.start+i)%len(h.buf)]
	}
	return out
}

// Render formats the transcript oldest first. Empty history renders as "".
func (h *History) Render() string {
	entries := h.Entries()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return strings.Join(lines, "\n"+HistoryDivider+"\n")
}

func (h *History) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Entries())
}

// UnmarshalJSON keeps the current capacity and replays entries through Append,
// so a stored transcript longer than the capacity keeps only its tail.
func (h *History) UnmarshalJSON(data []byte) error {
	var entries []ConversationEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	if len(h.buf) == 0 {
		h.buf = make([]ConversationEntry, DefaultHistoryCapacity)
	}
	h.start, h.n = 0, 0
	for _, e := range entries {
		h.Append(e)
	}
	return nil
}
