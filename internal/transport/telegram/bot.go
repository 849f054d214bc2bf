package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sandevgo/relaybot/internal/core"
	"github.com/sandevgo/relaybot/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

const (
	greetingText  = "Привет! Напиши нам сообщение или выбери одну из кнопок ниже, чтобы получить нужную информацию."
	siteButton    = "Перейти на сайт"
	contactButton = "Наши контакты"
	siteFmt       = "Отлично! Вот ссылка на наш сайт: %s"
	contactsFmt   = "Наши контакты: %s"
)

// handler is implemented by relay.Router.
type handler interface {
	Handle(ctx context.Context, u core.Update) error
}

type Bot struct {
	bot    *tele.Bot
	menu   *tele.ReplyMarkup
	relay  handler
	sender *Sender
	cfg    core.MenuConfig
}

func NewBot(
	ctx context.Context,
	tgCfg core.TelegramConfig,
	menuCfg core.MenuConfig,
) (*Bot, error) {
	b, err := tele.NewBot(settings(ctx, tgCfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:    b,
		sender: NewSender(b),
		cfg:    menuCfg,
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	return bot, nil
}

// settings keeps updates synchronous: telebot otherwise runs each handler
// in its own goroutine and two messages from one user may swap places.
func settings(ctx context.Context, tgCfg core.TelegramConfig) tele.Settings {
	return tele.Settings{
		Token:       tgCfg.GetTelegramToken(),
		Poller:      &tele.LongPoller{Timeout: 10 * time.Second},
		Synchronous: true,
		OnError:     onError(ctx),
	}
}

// Sender exposes the outbound side for the relay router.
func (b *Bot) Sender() *Sender {
	return b.sender
}

// Bind registers handlers. Must be called before Start.
func (b *Bot) Bind(relay handler) {
	b.relay = relay

	b.menu = &tele.ReplyMarkup{ResizeKeyboard: true}
	btnSite := b.menu.Text(siteButton)
	btnContacts := b.menu.Text(contactButton)
	b.menu.Reply(b.menu.Row(btnSite), b.menu.Row(btnContacts))

	b.bot.Handle("/start", b.handleStart)
	b.bot.Handle(&btnSite, b.handleSite)
	b.bot.Handle(&btnContacts, b.handleContacts)

	btnReply := tele.Btn{Unique: replyUnique}
	b.bot.Handle(&btnReply, b.handleCallback)

	for _, endpoint := range []string{
		tele.OnText,
		tele.OnPhoto,
		tele.OnDocument,
		tele.OnVideo,
		tele.OnAnimation,
		tele.OnAudio,
		tele.OnVoice,
		tele.OnSticker,
		tele.OnVideoNote,
		// no outbound mirror, the router answers with a notice
		tele.OnLocation,
		tele.OnContact,
		tele.OnVenue,
		tele.OnPoll,
		tele.OnDice,
	} {
		b.bot.Handle(endpoint, b.handleMessage)
	}
}

func (b *Bot) Start(ctx context.Context) error {
	if b.relay == nil {
		return errors.New("telegram bot started without relay handler")
	}
	log.FromCtx(ctx).Info().Str("bot", b.bot.Me.Username).Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleStart(c tele.Context) error {
	return c.Send(greetingText, b.menu)
}

func (b *Bot) handleSite(c tele.Context) error {
	return c.Send(fmt.Sprintf(siteFmt, b.cfg.GetSiteURL()), tele.NoPreview)
}

func (b *Bot) handleContacts(c tele.Context) error {
	return c.Send(fmt.Sprintf(contactsFmt, b.cfg.GetContacts()))
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := baseContext(c)
	msg := c.Message()
	if msg == nil || msg.Sender == nil {
		return nil
	}
	// channel posts and group chatter are not ours to relay
	if !msg.Private() {
		log.FromCtx(ctx).Debug().Int64("chat_id", msg.Chat.ID).Msg("ignoring non-private message")
		return nil
	}
	return b.relay.Handle(ctx, updateFromMessage(msg))
}

func (b *Bot) handleCallback(c tele.Context) error {
	ctx := baseContext(c)
	cb := c.Callback()
	if cb == nil {
		return nil
	}
	if err := c.Respond(); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("failed to answer callback")
	}
	return b.relay.Handle(ctx, updateFromCallback(cb))
}

func baseContext(c tele.Context) context.Context {
	if ctx, ok := c.Get(baseContextKey).(context.Context); ok {
		return ctx
	}
	return context.Background()
}

// onError is the last stop for handler errors, the bot keeps polling.
func onError(ctx context.Context) func(error, tele.Context) {
	return func(err error, c tele.Context) {
		logger := log.FromCtx(ctx)
		var updateID int
		if c != nil {
			updateID = c.Update().ID
		}

		var apiErr *tele.Error
		switch {
		case errors.As(err, &apiErr):
			logger.Error().Err(err).Int("update_id", updateID).Int("code", apiErr.Code).Msg("telegram request failed")
		case isFlood(err):
			logger.Error().Err(err).Int("update_id", updateID).Msg("telegram flood control")
		default:
			logger.Error().Err(err).Int("update_id", updateID).Msg("error while handling update")
		}
	}
}
