package relay

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sandevgo/relaybot/internal/core"
)

const controlPrefix = "u"

var markerRe = regexp.MustCompile("ID: `(\\d+)`")

// EncodeControl produces the inline button payload for a user.
func EncodeControl(id int64) (string, error) {
	if id <= 0 {
		return "", fmt.Errorf("encode %d: %w", id, core.ErrIdentityOutOfRange)
	}
	return controlPrefix + strconv.FormatInt(id, 36), nil
}

func DecodeControl(payload string) (int64, error) {
	raw, ok := strings.CutPrefix(payload, controlPrefix)
	if !ok || raw == "" {
		return 0, core.ErrInvalidReference
	}
	id, err := strconv.ParseInt(raw, 36, 64)
	if err != nil || id <= 0 {
		return 0, core.ErrInvalidReference
	}
	// one canonical token per id: no sign, no leading zeros, lower case
	if strconv.FormatInt(id, 36) != raw {
		return 0, core.ErrInvalidReference
	}
	return id, nil
}

// EncodeMarker renders the text marker operators see, e.g. ID: `123`.
func EncodeMarker(id int64) string {
	return "ID: `" + strconv.FormatInt(id, 10) + "`"
}

func DecodeMarker(text string) (int64, error) {
	m := markerRe.FindStringSubmatch(text)
	if m == nil {
		return 0, core.ErrReferenceNotFound
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || id <= 0 {
		return 0, core.ErrReferenceNotFound
	}
	return id, nil
}

// plainName keeps user-chosen names from forging a marker in annotations.
func plainName(name string) string {
	return strings.ReplaceAll(name, "`", "'")
}

// Resolve recovers the user a quoted message refers to.
// The inline payload wins over the text marker.
func Resolve(q *core.Quoted) (int64, error) {
	if q == nil {
		return 0, core.ErrReferenceNotFound
	}
	if q.ControlPayload != "" {
		if id, err := DecodeControl(q.ControlPayload); err == nil {
			return id, nil
		}
	}
	return DecodeMarker(q.Text)
}
