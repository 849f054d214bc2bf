package srv

import "context"

// cleanupService runs fn on shutdown and does nothing on start.
type cleanupService struct {
	fn func() error
}

func (c *cleanupService) Start(ctx context.Context) error {
	return nil
}

func (c *cleanupService) Shutdown(ctx context.Context) error {
	if c.fn == nil {
		return nil
	}
	return c.fn()
}

func NewCleanup(fn func() error) Service {
	return &cleanupService{fn: fn}
}
