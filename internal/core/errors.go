package core

import (
	"errors"
	"fmt"
)

var (
	ErrReferenceNotFound  = errors.New("user reference not found")
	ErrInvalidReference   = errors.New("invalid user reference")
	ErrIdentityOutOfRange = errors.New("identity out of range")
	ErrSizeLimitExceeded  = errors.New("size limit exceeded")
	ErrUnsupportedContent = errors.New("unsupported content kind")

	ErrRecipientBlocked     = errors.New("recipient blocked the bot")
	ErrRecipientNotFound    = errors.New("recipient chat not found")
	ErrRecipientDeactivated = errors.New("recipient account is deactivated")
)

// DeliveryError is returned when an outbound send to Target failed.
type DeliveryError struct {
	Target int64
	Err    error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery to %d failed: %v", e.Target, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }
