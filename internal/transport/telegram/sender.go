package telegram

import (
	"context"
	"fmt"

	"github.com/sandevgo/relaybot/internal/core"
	"github.com/sandevgo/relaybot/pkg/log"
	"github.com/sandevgo/relaybot/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

// messenger is the part of *tele.Bot the sender needs.
type messenger interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Sender implements core.Transport on top of the Bot API.
type Sender struct {
	api     messenger
	retrier *retry.Retrier
}

func NewSender(api messenger) *Sender {
	cfg := retry.NewDefaultConfig()
	cfg.MaxRetries = 3
	cfg.Retryable = isFlood
	cfg.Wait = floodWait
	return newSender(api, retry.NewRetrier(cfg))
}

func newSender(api messenger, retrier *retry.Retrier) *Sender {
	return &Sender{api: api, retrier: retrier}
}

func (s *Sender) Send(
	ctx context.Context,
	to int64,
	item core.ContentItem,
	caption string,
	action *core.ControlAction,
) (core.MessageRef, error) {
	what, err := sendable(item, caption)
	if err != nil {
		return core.MessageRef{}, err
	}
	return s.send(ctx, to, what, action)
}

func (s *Sender) SendText(ctx context.Context, to int64, text string, action *core.ControlAction) (core.MessageRef, error) {
	return s.send(ctx, to, text, action)
}

func (s *Sender) Notify(ctx context.Context, to int64, text string) error {
	_, err := s.send(ctx, to, text, nil)
	return err
}

func (s *Sender) send(ctx context.Context, to int64, what interface{}, action *core.ControlAction) (core.MessageRef, error) {
	logger := log.FromCtx(ctx)

	var opts []interface{}
	if action != nil {
		opts = append(opts, inlineMarkup(action))
	}

	var msg *tele.Message
	err := s.retrier.Do(ctx, func() error {
		var err error
		msg, err = s.api.Send(tele.ChatID(to), what, opts...)
		if isFlood(err) {
			logger.Warn().Err(err).Int64("to", to).Msg("telegram flood control, retrying")
		}
		return err
	})
	if err != nil {
		logger.Debug().Err(err).Int64("to", to).Msg("telegram send failed")
		return core.MessageRef{}, mapError(err)
	}
	if msg == nil {
		return core.MessageRef{}, fmt.Errorf("telegram returned no message for chat %d", to)
	}

	ref := core.MessageRef{MessageID: msg.ID}
	if msg.Chat != nil {
		ref.ChatID = msg.Chat.ID
	}
	return ref, nil
}

func inlineMarkup(action *core.ControlAction) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	btn := markup.Data(action.Label, replyUnique, action.Payload)
	markup.Inline(markup.Row(btn))
	return markup
}
