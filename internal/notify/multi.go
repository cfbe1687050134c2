package notify

import (
	"context"
	"log/slog"

	"github.com/sofienekhiari/midlandproject/internal/contact"
)

var _ contact.Notifier = (*Multi)(nil)

// Multi fans a contact message out to every registered notifier. One
// failing channel never blocks the others.
type Multi struct {
	notifiers []contact.Notifier
}

func NewMulti(notifiers ...contact.Notifier) *Multi {
	return &Multi{notifiers: notifiers}
}

func (m *Multi) SendContactMessage(ctx context.Context, msg contact.Message) error {
	for _, n := range m.notifiers {
		if err := n.SendContactMessage(ctx, msg); err != nil {
			slog.Error("multi-notifier: contact notification failed", "error", err)
		}
	}
	return nil
}
