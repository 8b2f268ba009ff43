package notification

import "context"

type MessengerService interface {
	SendText(ctx context.Context, to, text string) error
}

type EmailService interface {
	SendText(ctx context.Context, to, subject, body string) error
}
