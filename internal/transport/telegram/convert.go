package telegram

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/relaybot/internal/core"
	tele "gopkg.in/telebot.v3"
)

const replyUnique = "reply"

// itemFromMessage maps an inbound message onto the closed set of content kinds.
func itemFromMessage(m *tele.Message) core.ContentItem {
	switch {
	case m == nil:
		return core.ContentItem{Kind: core.KindUnsupported}
	case m.Photo != nil:
		return fileItem(core.KindPhoto, m.Photo.File, m.Caption)
	case m.Animation != nil:
		// animations also carry a document, check them first
		return fileItem(core.KindAnimation, m.Animation.File, m.Caption)
	case m.Document != nil:
		return fileItem(core.KindDocument, m.Document.File, m.Caption)
	case m.Video != nil:
		return fileItem(core.KindVideo, m.Video.File, m.Caption)
	case m.Audio != nil:
		return fileItem(core.KindAudio, m.Audio.File, m.Caption)
	case m.Voice != nil:
		return fileItem(core.KindVoice, m.Voice.File, m.Caption)
	case m.Sticker != nil:
		return fileItem(core.KindSticker, m.Sticker.File, "")
	case m.VideoNote != nil:
		return fileItem(core.KindVideoNote, m.VideoNote.File, "")
	case m.Text != "":
		return core.ContentItem{Kind: core.KindText, Text: m.Text}
	default:
		return core.ContentItem{Kind: core.KindUnsupported}
	}
}

func fileItem(kind core.ContentKind, f tele.File, caption string) core.ContentItem {
	return core.ContentItem{
		Kind:    kind,
		FileID:  f.FileID,
		Caption: caption,
		Size:    f.FileSize,
	}
}

func identityFromUser(u *tele.User) core.Identity {
	if u == nil {
		return core.Identity{}
	}
	return core.Identity{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func quotedFromMessage(m *tele.Message) *core.Quoted {
	if m == nil {
		return nil
	}
	text := m.Text
	if text == "" {
		text = m.Caption
	}
	return &core.Quoted{
		Text:           text,
		ControlPayload: controlPayload(m.ReplyMarkup),
	}
}

// controlPayload extracts our reply button payload from an inline keyboard.
// Raw callback data has the form "\f<unique>|<payload>".
func controlPayload(markup *tele.ReplyMarkup) string {
	if markup == nil {
		return ""
	}
	prefix := "\f" + replyUnique + "|"
	for _, row := range markup.InlineKeyboard {
		for _, btn := range row {
			if payload, ok := strings.CutPrefix(btn.Data, prefix); ok {
				return payload
			}
		}
	}
	return ""
}

func updateFromMessage(m *tele.Message) core.Update {
	return core.Update{
		Sender:  identityFromUser(m.Sender),
		Item:    itemFromMessage(m),
		ReplyTo: quotedFromMessage(m.ReplyTo),
	}
}

func updateFromCallback(cb *tele.Callback) core.Update {
	return core.Update{
		Sender:  identityFromUser(cb.Sender),
		Control: cb.Data,
	}
}

// sendable builds the telebot value for a single content send.
func sendable(item core.ContentItem, caption string) (interface{}, error) {
	file := tele.File{FileID: item.FileID}
	switch item.Kind {
	case core.KindText:
		return item.Text, nil
	case core.KindPhoto:
		return &tele.Photo{File: file, Caption: caption}, nil
	case core.KindDocument:
		return &tele.Document{File: file, Caption: caption}, nil
	case core.KindVideo:
		return &tele.Video{File: file, Caption: caption}, nil
	case core.KindAnimation:
		return &tele.Animation{File: file, Caption: caption}, nil
	case core.KindAudio:
		return &tele.Audio{File: file, Caption: caption}, nil
	case core.KindVoice:
		return &tele.Voice{File: file, Caption: caption}, nil
	case core.KindSticker:
		return &tele.Sticker{File: file}, nil
	case core.KindVideoNote:
		return &tele.VideoNote{File: file}, nil
	}
	return nil, fmt.Errorf("kind %s: %w", item.Kind, core.ErrUnsupportedContent)
}

// mapError translates Bot API rejections into core delivery errors.
func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tele.ErrBlockedByUser):
		return fmt.Errorf("%w: %v", core.ErrRecipientBlocked, err)
	case errors.Is(err, tele.ErrUserIsDeactivated):
		return fmt.Errorf("%w: %v", core.ErrRecipientDeactivated, err)
	case errors.Is(err, tele.ErrChatNotFound), errors.Is(err, tele.ErrNotStartedByUser):
		return fmt.Errorf("%w: %v", core.ErrRecipientNotFound, err)
	}
	return err
}

// isFlood reports a 429 rejection. Nothing was delivered in that case,
// so the send is safe to repeat.
func isFlood(err error) bool {
	var flood tele.FloodError
	if errors.As(err, &flood) {
		return true
	}
	var floodPtr *tele.FloodError
	return errors.As(err, &floodPtr)
}

// floodWait is the delay Telegram asked for, zero when it did not say.
func floodWait(err error) time.Duration {
	var flood tele.FloodError
	if errors.As(err, &flood) {
		return time.Duration(flood.RetryAfter) * time.Second
	}
	var floodPtr *tele.FloodError
	if errors.As(err, &floodPtr) && floodPtr != nil {
		return time.Duration(floodPtr.RetryAfter) * time.Second
	}
	return 0
}
