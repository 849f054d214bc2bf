package relay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sandevgo/relaybot/internal/core"
	"github.com/sandevgo/relaybot/internal/metrics"
	"github.com/sandevgo/relaybot/pkg/log"
)

const timestampLayout = "02.01.2006 15:04"

type Route int

const (
	RouteControl Route = iota
	RouteOperatorReply
	RouteOperatorOther
	RouteUserMessage
)

func (r Route) String() string {
	switch r {
	case RouteControl:
		return "control"
	case RouteOperatorReply:
		return "operator_reply"
	case RouteOperatorOther:
		return "operator_other"
	default:
		return "user_message"
	}
}

// Router routes inbound updates between users and the operator.
type Router struct {
	cfg        core.RelayConfig
	sessions   core.SessionStore
	transport  core.Transport
	dispatcher *Dispatcher
	locker     *Locker
	metrics    *metrics.Relay
	now        func() time.Time
}

func NewRouter(
	cfg core.RelayConfig,
	sessions core.SessionStore,
	transport core.Transport,
	m *metrics.Relay,
) *Router {
	return &Router{
		cfg:        cfg,
		sessions:   sessions,
		transport:  transport,
		dispatcher: NewDispatcher(transport),
		locker:     NewLocker(),
		metrics:    m,
		now:        time.Now,
	}
}

// Classify decides how an update is handled. The order is fixed:
// control action, operator reply, other operator traffic, user message.
func (r *Router) Classify(u core.Update) Route {
	isOperator := u.Sender.ID == r.cfg.GetOperatorID()
	switch {
	case u.Control != "":
		return RouteControl
	case isOperator && u.ReplyTo != nil:
		return RouteOperatorReply
	case isOperator:
		return RouteOperatorOther
	default:
		return RouteUserMessage
	}
}

// Handle processes one update to completion. Delivery problems are reported
// to the affected party and logged; only session store failures are returned.
func (r *Router) Handle(ctx context.Context, u core.Update) error {
	route := r.Classify(u)
	r.metrics.Update(route.String())

	logger := log.FromCtx(ctx).With().
		Int64("user_id", u.Sender.ID).
		Str("route", route.String()).
		Str("kind", u.Item.Kind.String()).
		Logger()
	ctx = logger.WithContext(ctx)
	logger.Debug().Msg("handling update")

	switch route {
	case RouteControl:
		return r.handleControl(ctx, u)
	case RouteOperatorReply:
		r.handleOperatorReply(ctx, u)
		return nil
	case RouteOperatorOther:
		r.notify(ctx, r.cfg.GetOperatorID(), operatorHintText)
		return nil
	default:
		return r.handleUserMessage(ctx, u)
	}
}

func (r *Router) handleControl(ctx context.Context, u core.Update) error {
	logger := log.FromCtx(ctx)
	operator := r.cfg.GetOperatorID()

	if u.Sender.ID != operator {
		logger.Warn().Msg("ignoring control action from non-operator")
		return nil
	}

	target, err := DecodeControl(u.Control)
	if err != nil {
		logger.Warn().Err(err).Str("payload", u.Control).Msg("bad control payload")
		r.metrics.Rejected("reference_not_found")
		r.notify(ctx, operator, referenceNotFoundText)
		return nil
	}

	unlock := r.locker.Lock(target)
	defer unlock()

	sess, err := r.sessions.Get(ctx, target)
	if err != nil {
		return fmt.Errorf("failed to load session %d: %w", target, err)
	}

	if !sess.DialogueStarted {
		if err := r.transport.Notify(ctx, target, readReceiptText); err != nil {
			logger.Warn().Err(err).Int64("target", target).Msg("failed to send read receipt")
		}
		sess.MarkDialogueStarted()
		if err := r.sessions.Save(ctx, target, sess); err != nil {
			return fmt.Errorf("failed to save session %d: %w", target, err)
		}
	}

	prompt := fmt.Sprintf(replyPromptFmt, EncodeMarker(target))
	if _, err := r.transport.SendText(ctx, operator, prompt, nil); err != nil {
		r.metrics.DeliveryFailed("operator")
		logger.Error().Err(err).Msg("failed to prompt operator")
	}
	return nil
}

func (r *Router) handleOperatorReply(ctx context.Context, u core.Update) {
	logger := log.FromCtx(ctx)
	operator := r.cfg.GetOperatorID()

	target, err := Resolve(u.ReplyTo)
	if err != nil {
		logger.Info().Err(err).Msg("operator reply without user reference")
		r.metrics.Rejected("reference_not_found")
		r.notify(ctx, operator, referenceNotFoundText)
		return
	}

	if u.Item.Kind == core.KindUnsupported {
		r.metrics.Rejected("unsupported")
		r.notify(ctx, operator, operatorUnsupportedText)
		return
	}

	ann := Annotation{Header: fmt.Sprintf(replyHeaderFmt, r.cfg.GetServiceName())}
	if _, err := r.dispatcher.RelayOut(ctx, target, u.Item, ann, nil); err != nil {
		r.metrics.DeliveryFailed("user")
		logger.Warn().Err(err).Int64("target", target).Msg("failed to deliver operator reply")
		r.notify(ctx, operator, fmt.Sprintf(deliveryFailedFmt, EncodeMarker(target), failureReason(err)))
		return
	}

	r.metrics.Relayed("to_user", u.Item.Kind.String())
	logger.Info().Int64("target", target).Msg("operator reply delivered")
	r.notify(ctx, operator, fmt.Sprintf(replySentFmt, EncodeMarker(target)))
}

func (r *Router) handleUserMessage(ctx context.Context, u core.Update) error {
	logger := log.FromCtx(ctx)
	sender := u.Sender

	unlock := r.locker.Lock(sender.ID)
	defer unlock()

	if u.Item.Kind == core.KindUnsupported {
		r.metrics.Rejected("unsupported")
		r.notify(ctx, sender.ID, unsupportedUserText)
		return nil
	}

	sess, err := r.sessions.Get(ctx, sender.ID)
	if err != nil {
		return fmt.Errorf("failed to load session %d: %w", sender.ID, err)
	}

	if ShouldAck(sess) {
		r.notify(ctx, sender.ID, ackText)
		FireAck(sess)
	}

	previous := sess.History.Entries()
	sess.History.Append(core.ConversationEntry{
		Author:    sender.DisplayName(),
		Content:   Describe(u.Item),
		Timestamp: r.now().In(r.location()).Format(timestampLayout),
	})

	if err := r.sessions.Save(ctx, sender.ID, sess); err != nil {
		return fmt.Errorf("failed to save session %d: %w", sender.ID, err)
	}

	if limit := r.cfg.GetMaxFileSize(); !CheckSize(u.Item, limit) {
		logger.Info().Err(core.ErrSizeLimitExceeded).Int64("size", u.Item.Size).Msg("item not relayed")
		r.metrics.Rejected("size_limit")
		r.notify(ctx, sender.ID, fmt.Sprintf(sizeLimitText,
			humanize.IBytes(uint64(u.Item.Size)), humanize.IBytes(uint64(limit))))
		return nil
	}

	var action *core.ControlAction
	if payload, err := EncodeControl(sender.ID); err == nil {
		action = &core.ControlAction{Label: replyButtonLabel, Payload: payload}
	}

	ann := Annotation{
		Header:      fmt.Sprintf(relayHeaderFmt, EncodeMarker(sender.ID), plainName(sender.DisplayName())),
		History:     previous,
		ShowHistory: true,
		QuoteBody:   true,
	}

	if _, err := r.dispatcher.RelayOut(ctx, r.cfg.GetOperatorID(), u.Item, ann, action); err != nil {
		r.metrics.DeliveryFailed("operator")
		logger.Error().Err(err).Msg("failed to relay message to operator")
		r.notify(ctx, sender.ID, apologyText)
		return nil
	}

	r.metrics.Relayed("to_operator", u.Item.Kind.String())
	logger.Debug().Msg("message relayed to operator")
	return nil
}

// notify is best-effort: failures are logged and swallowed.
func (r *Router) notify(ctx context.Context, to int64, text string) {
	if err := r.transport.Notify(ctx, to, text); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Int64("to", to).Msg("notification not delivered")
	}
}

func (r *Router) location() *time.Location {
	if loc := r.cfg.GetLocation(); loc != nil {
		return loc
	}
	return time.Local
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, core.ErrRecipientBlocked):
		return reasonBlocked
	case errors.Is(err, core.ErrRecipientNotFound):
		return reasonNotFound
	case errors.Is(err, core.ErrRecipientDeactivated):
		return reasonDeactivated
	case errors.Is(err, core.ErrUnsupportedContent):
		return reasonUnsupported
	default:
		return reasonOther
	}
}
