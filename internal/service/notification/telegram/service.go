package telegram

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/quillon/stocksentry/internal/service/notification"
)

const defaultBaseURL = "https://api.telegram.org"

var _ notification.MessengerService = (*Service)(nil)

// Service sends plain-text messages through the Telegram bot API.
type Service struct {
	cli   *resty.Client
	token string
}

type Option func(s *Service)

// WithBaseURL overrides the API host, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(s *Service) {
		s.cli.SetBaseURL(baseURL)
	}
}

func NewService(token string, opts ...Option) *Service {
	s := &Service{
		cli: resty.New().
			SetBaseURL(defaultBaseURL).
			SetTimeout(10 * time.Second),
		token: token,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) SendText(ctx context.Context, chatID, text string) error {
	resp, err := s.cli.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"chat_id": chatID,
			"text":    text,
		}).
		Post(fmt.Sprintf("/bot%s/sendMessage", s.token))
	if err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("telegram send: status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
