package relay

import (
	"context"

	"github.com/sandevgo/relaybot/internal/core"
)

// DefaultMaxFileSize is the Bot API download limit.
const DefaultMaxFileSize int64 = 20 << 20

// Dispatcher mirrors a content item to a target chat.
type Dispatcher struct {
	transport core.Transport
}

func NewDispatcher(transport core.Transport) *Dispatcher {
	return &Dispatcher{transport: transport}
}

// Describe returns the label stored in conversation history.
func Describe(item core.ContentItem) string {
	var label string
	switch item.Kind {
	case core.KindText:
		return item.Text
	case core.KindPhoto:
		label = "[фото]"
	case core.KindDocument:
		label = "[документ]"
	case core.KindVideo:
		label = "[видео]"
	case core.KindAnimation:
		label = "[GIF]"
	case core.KindAudio:
		label = "[аудио]"
	case core.KindVoice:
		label = "[голосовое сообщение]"
	case core.KindSticker:
		label = "[стикер]"
	case core.KindVideoNote:
		label = "[видеосообщение]"
	default:
		label = "[неподдерживаемое сообщение]"
	}
	if item.Caption != "" {
		return label + " " + item.Caption
	}
	return label
}

// CheckSize reports whether item fits into limit. Items without a file always fit.
func CheckSize(item core.ContentItem, limit int64) bool {
	if !item.Kind.SizeBounded() || limit <= 0 {
		return true
	}
	return item.Size <= limit
}

// RelayOut sends item to target with the annotation attached. It issues exactly
// one content send, plus one annotation message for kinds without a caption.
// Nothing is retried.
func (d *Dispatcher) RelayOut(
	ctx context.Context,
	target int64,
	item core.ContentItem,
	ann Annotation,
	action *core.ControlAction,
) ([]core.MessageRef, error) {
	switch item.Kind {
	case core.KindText:
		ref, err := d.transport.SendText(ctx, target, ann.Render(item.Text, maxTextLen), action)
		if err != nil {
			return nil, &core.DeliveryError{Target: target, Err: err}
		}
		return []core.MessageRef{ref}, nil

	case core.KindPhoto, core.KindDocument, core.KindVideo, core.KindAnimation, core.KindAudio, core.KindVoice:
		ref, err := d.transport.Send(ctx, target, item, ann.Render(item.Caption, maxCaptionLen), action)
		if err != nil {
			return nil, &core.DeliveryError{Target: target, Err: err}
		}
		return []core.MessageRef{ref}, nil

	case core.KindSticker, core.KindVideoNote:
		ref, err := d.transport.Send(ctx, target, item, "", nil)
		if err != nil {
			return nil, &core.DeliveryError{Target: target, Err: err}
		}
		refs := []core.MessageRef{ref}
		note, err := d.transport.SendText(ctx, target, ann.Render("", maxTextLen), action)
		if err != nil {
			return refs, &core.DeliveryError{Target: target, Err: err}
		}
		return append(refs, note), nil

	case core.KindUnsupported:
		return nil, core.ErrUnsupportedContent
	}
	return nil, core.ErrUnsupportedContent
}
