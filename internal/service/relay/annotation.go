package relay

import (
	"strings"
	"unicode/utf16"

	"github.com/sandevgo/relaybot/internal/core"
)

// Platform limits in UTF-16 code units.
const (
	maxTextLen    = 4096
	maxCaptionLen = 1024
)

const ellipsis = "…"

// Annotation is the text that accompanies relayed content.
// The header carries the user marker and is never trimmed.
type Annotation struct {
	Header      string
	History     []core.ConversationEntry
	ShowHistory bool
	QuoteBody   bool
}

// Render joins the annotation with body and fits the result into limit,
// dropping the oldest history entries first and cutting the body last.
// A non-positive limit disables fitting.
func (a Annotation) Render(body string, limit int) string {
	history := a.History
	out := a.compose(body, history)
	if limit <= 0 {
		return out
	}
	for textLen(out) > limit && len(history) > 0 {
		history = history[1:]
		out = a.compose(body, history)
	}
	if textLen(out) <= limit {
		return out
	}
	rest := limit - textLen(a.compose("", history))
	if a.QuoteBody {
		rest -= textLen(messageTitle) + textLen("\n\n\n\"\"")
	} else {
		rest -= textLen("\n\n")
	}
	return a.compose(truncate(body, rest), history)
}

func (a Annotation) compose(body string, history []core.ConversationEntry) string {
	parts := make([]string, 0, 3)
	if a.Header != "" {
		parts = append(parts, a.Header)
	}
	if a.ShowHistory {
		if len(history) == 0 {
			parts = append(parts, historyEmpty)
		} else {
			lines := make([]string, len(history))
			for i, e := range history {
				lines[i] = e.String()
			}
			parts = append(parts, historyTitle+"\n"+strings.Join(lines, "\n"+core.HistoryDivider+"\n"))
		}
	}
	if body != "" {
		if a.QuoteBody {
			parts = append(parts, messageTitle+"\n\""+body+"\"")
		} else {
			parts = append(parts, body)
		}
	}
	return strings.Join(parts, "\n\n")
}

func textLen(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// truncate cuts s to at most limit UTF-16 units including the ellipsis.
func truncate(s string, limit int) string {
	if textLen(s) <= limit {
		return s
	}
	if limit <= textLen(ellipsis) {
		return ""
	}
	budget := limit - textLen(ellipsis)
	var b strings.Builder
	for _, r := range s {
		n := utf16.RuneLen(r)
		if n < 0 {
			n = 1
		}
		if budget-n < 0 {
			break
		}
		budget -= n
		b.WriteRune(r)
	}
	return b.String() + ellipsis
}
