package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendText(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := NewService("123:token", WithBaseURL(srv.URL))
	err := svc.SendText(context.Background(), "42", "BUY ALERT for TCS")

	require.NoError(t, err)
	assert.Equal(t, "/bot123:token/sendMessage", gotPath)
	assert.Equal(t, "42", gotBody["chat_id"])
	assert.Equal(t, "BUY ALERT for TCS", gotBody["text"])
}

func TestSendText_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ok":false,"description":"chat not found"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	svc := NewService("123:token", WithBaseURL(srv.URL))
	err := svc.SendText(context.Background(), "42", "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}
