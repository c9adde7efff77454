package notify

import "context"

// Notifier publishes the outcome of an admin action. Publishing is
// fire-and-forget: failures are logged, never returned to the caller.
type Notifier interface {
	Success(ctx context.Context, action, message string)
	Failure(ctx context.Context, action, message string)
}

// Nop discards every notification, used when no stream backend is
// configured.
type Nop struct{}

func (Nop) Success(ctx context.Context, action, message string) {}

func (Nop) Failure(ctx context.Context, action, message string) {}
