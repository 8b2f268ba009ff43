package notification

import (
	"context"
	"log/slog"

	"github.com/quillon/stocksentry/internal/service/store"
)

// Dispatcher fans one rendered alert out to every channel the user has
// a handle for. Delivery is best effort: a failure on one channel is
// logged and swallowed so it can never block the other channel or the
// scan. There is no retry; the next cycle's trigger produces a fresh
// attempt if the condition still holds.
type Dispatcher struct {
	messenger MessengerService
	email     EmailService
}

func NewDispatcher(messenger MessengerService, email EmailService) *Dispatcher {
	return &Dispatcher{
		messenger: messenger,
		email:     email,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, user store.User, subject, body string) {
	if user.TelegramID != "" && d.messenger != nil {
		if err := d.messenger.SendText(ctx, user.TelegramID, body); err != nil {
			slog.Error("telegram send failed", "user", user.Name, "error", err)
		}
	}
	if user.Email != "" && d.email != nil {
		if err := d.email.SendText(ctx, user.Email, subject, body); err != nil {
			slog.Error("email send failed", "user", user.Name, "error", err)
		}
	}
}
