package notify

import "context"

// Sender delivers a drafted message. Implementations own channel mechanics;
// the core never depends on delivery semantics.
type Sender interface {
	Send(ctx context.Context, d Draft) error
}

// NopSender swallows drafts. Used when no delivery channel is configured.
type NopSender struct{}

func (NopSender) Send(context.Context, Draft) error {
	return nil
}
