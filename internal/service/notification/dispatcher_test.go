package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/quillon/stocksentry/internal/service/store"
	"github.com/stretchr/testify/assert"
)

type recordingMessenger struct {
	sent []string
	err  error
}

func (m *recordingMessenger) SendText(ctx context.Context, to, text string) error {
	m.sent = append(m.sent, to)
	return m.err
}

type recordingEmail struct {
	sent []string
	err  error
}

func (m *recordingEmail) SendText(ctx context.Context, to, subject, body string) error {
	m.sent = append(m.sent, to)
	return m.err
}

func TestDispatch_BothChannels(t *testing.T) {
	im := &recordingMessenger{}
	em := &recordingEmail{}
	d := NewDispatcher(im, em)

	d.Dispatch(context.Background(), store.User{
		Name:       "ravi",
		TelegramID: "42",
		Email:      "ravi@example.com",
	}, "BUY ALERT for TCS", "body")

	assert.Equal(t, []string{"42"}, im.sent)
	assert.Equal(t, []string{"ravi@example.com"}, em.sent)
}

func TestDispatch_ChannelFailureIsIsolated(t *testing.T) {
	im := &recordingMessenger{err: errors.New("telegram down")}
	em := &recordingEmail{}
	d := NewDispatcher(im, em)

	d.Dispatch(context.Background(), store.User{
		Name:       "ravi",
		TelegramID: "42",
		Email:      "ravi@example.com",
	}, "subject", "body")

	assert.Len(t, im.sent, 1)
	assert.Len(t, em.sent, 1, "email must still go out when telegram fails")
}

func TestDispatch_MissingHandlesAreNoOps(t *testing.T) {
	im := &recordingMessenger{}
	em := &recordingEmail{}
	d := NewDispatcher(im, em)

	d.Dispatch(context.Background(), store.User{Name: "ghost"}, "subject", "body")

	assert.Empty(t, im.sent)
	assert.Empty(t, em.sent)
}
