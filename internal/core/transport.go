package core

import "context"

// Transport is the outbound side of the messaging platform.
type Transport interface {
	// Send issues exactly one content send. caption is ignored for kinds
	// without a caption channel.
	Send(ctx context.Context, to int64, item ContentItem, caption string, action *ControlAction) (MessageRef, error)
	SendText(ctx context.Context, to int64, text string, action *ControlAction) (MessageRef, error)
	// Notify is best-effort plain text.
	Notify(ctx context.Context, to int64, text string) error
}
