package core

import (
	"strings"
)

const (
	RelayName    = "RelayBot"
	RelayVersion = "0.1.0"
)

const defaultDisplayName = "Пользователь"

// Identity is the platform user as read from an inbound update.
type Identity struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
}

// DisplayName falls back from the handle to the given name to a placeholder.
func (i Identity) DisplayName() string {
	if i.Username != "" {
		return "@" + i.Username
	}
	name := strings.TrimSpace(i.FirstName + " " + i.LastName)
	if name != "" {
		return name
	}
	return defaultDisplayName
}

type ContentKind int

const (
	KindUnsupported ContentKind = iota
	KindText
	KindPhoto
	KindDocument
	KindVideo
	KindAnimation
	KindAudio
	KindVoice
	KindSticker
	KindVideoNote
)

func (k ContentKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindPhoto:
		return "photo"
	case KindDocument:
		return "document"
	case KindVideo:
		return "video"
	case KindAnimation:
		return "animation"
	case KindAudio:
		return "audio"
	case KindVoice:
		return "voice"
	case KindSticker:
		return "sticker"
	case KindVideoNote:
		return "video_note"
	default:
		return "unsupported"
	}
}

// HasCaption reports whether the kind can carry the annotation in the same send.
func (k ContentKind) HasCaption() bool {
	switch k {
	case KindText, KindPhoto, KindDocument, KindVideo, KindAnimation, KindAudio, KindVoice:
		return true
	default:
		return false
	}
}

// SizeBounded reports whether the kind references an uploaded file.
func (k ContentKind) SizeBounded() bool {
	switch k {
	case KindPhoto, KindDocument, KindVideo, KindAnimation, KindAudio, KindVoice, KindSticker, KindVideoNote:
		return true
	default:
		return false
	}
}

// ContentItem is a single piece of inbound content.
// FileID is set for file kinds, Text only for KindText.
type ContentItem struct {
	Kind    ContentKind
	FileID  string
	Text    string
	Caption string
	Size    int64
}

// Quoted describes the message an update replies to.
type Quoted struct {
	Text           string // text or caption as the platform returns it
	ControlPayload string // payload of the inline reply button, if any
}

type Update struct {
	Sender  Identity
	Item    ContentItem
	ReplyTo *Quoted
	Control string // set for inline button presses, no content then
}

// ControlAction is an inline button attached to an outbound message.
type ControlAction struct {
	Label   string
	Payload string
}

type MessageRef struct {
	ChatID    int64
	MessageID int
}
