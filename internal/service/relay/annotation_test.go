package relay

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sandevgo/relaybot/internal/core"
	"github.com/stretchr/testify/assert"
)

func historyOf(n int) []core.ConversationEntry {
	out := make([]core.ConversationEntry, n)
	for i := range out {
		out[i] = core.ConversationEntry{
			Author:    "Ира",
			Content:   fmt.Sprintf("сообщение %d %s", i, strings.Repeat("x", 100)),
			Timestamp: "01.01.2026 10:00",
		}
	}
	return out
}

func TestAnnotation_RenderLayout(t *testing.T) {
	ann := Annotation{
		Header:      "📩 ID: `42`\nНовое сообщение от Ира",
		ShowHistory: true,
		QuoteBody:   true,
	}

	want := "📩 ID: `42`\nНовое сообщение от Ира\n\n" +
		historyEmpty + "\n\n" +
		messageTitle + "\n\"Здравствуйте\""
	assert.Equal(t, want, ann.Render("Здравствуйте", maxTextLen))
}

func TestAnnotation_RenderWithHistory(t *testing.T) {
	ann := Annotation{
		Header:      "header",
		ShowHistory: true,
		History: []core.ConversationEntry{
			{Author: "Ира", Content: "[стикер]", Timestamp: "01.01.2026 10:00"},
			{Author: "Ира", Content: "Здравствуйте", Timestamp: "01.01.2026 10:01"},
		},
	}

	want := "header\n\n" + historyTitle + "\n" +
		"Ира (01.01.2026 10:00): [стикер]\n" + core.HistoryDivider + "\n" +
		"Ира (01.01.2026 10:01): Здравствуйте"
	assert.Equal(t, want, ann.Render("", 0))
}

func TestAnnotation_ReplyLayout(t *testing.T) {
	ann := Annotation{Header: "Ответ от FromGood:"}
	assert.Equal(t, "Ответ от FromGood:\n\nДобрый день!", ann.Render("Добрый день!", maxTextLen))
	assert.Equal(t, "Ответ от FromGood:", ann.Render("", maxTextLen))
}

func TestAnnotation_FitDropsOldestHistoryFirst(t *testing.T) {
	history := historyOf(5)
	ann := Annotation{Header: "hdr ID: `42`", History: history, ShowHistory: true, QuoteBody: true}

	out := ann.Render("короткий текст", 400)

	assert.LessOrEqual(t, textLen(out), 400)
	assert.True(t, strings.HasPrefix(out, "hdr ID: `42`"))
	assert.Contains(t, out, "\"короткий текст\"")
	assert.Contains(t, out, "сообщение 4")
	assert.NotContains(t, out, "сообщение 0")
}

func TestAnnotation_FitTruncatesBodyKeepsHeader(t *testing.T) {
	ann := Annotation{Header: "hdr ID: `42`", History: historyOf(2), ShowHistory: true, QuoteBody: true}
	body := strings.Repeat("я", 2000)

	out := ann.Render(body, maxCaptionLen)

	assert.LessOrEqual(t, textLen(out), maxCaptionLen)
	assert.True(t, strings.HasPrefix(out, "hdr ID: `42`"))
	assert.Contains(t, out, historyEmpty)
	assert.True(t, strings.HasSuffix(out, ellipsis+"\""))

	id, err := DecodeMarker(out)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestTextLen_CountsUTF16Units(t *testing.T) {
	assert.Equal(t, 3, textLen("abc"))
	assert.Equal(t, 2, textLen("Ир"))
	assert.Equal(t, 2, textLen("😀"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "ab"+ellipsis, truncate("abcdef", 3))
	assert.Equal(t, "", truncate("abcdef", 1))
	// a surrogate pair never gets split
	assert.Equal(t, "a"+ellipsis, truncate("a😀b", 3))
}
