package yahoo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quillon/stocksentry/internal/service/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewService(Config{BaseURL: srv.URL, Suffix: ".NS"})
}

func TestLastClose(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v8/finance/chart/TCS.NS", r.URL.Path)
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		fmt.Fprint(w, `{"chart":{"result":[{"meta":{"regularMarketPrice":4120.0},
			"indicators":{"quote":[{"close":[4100.5,4150.25,null]}]}}],"error":null}}`)
	})

	price, err := svc.LastClose(context.Background(), "tcs")
	require.NoError(t, err)
	assert.Equal(t, "4150.25", price.String(), "last non-null close wins")
}

func TestLastClose_FallsBackToMeta(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[{"meta":{"regularMarketPrice":512.3},
			"indicators":{"quote":[{"close":[null]}]}}],"error":null}}`)
	})

	price, err := svc.LastClose(context.Background(), "WIPRO")
	require.NoError(t, err)
	assert.Equal(t, "512.3", price.String())
}

func TestLastClose_EmptyResult(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[],"error":null}}`)
	})

	_, err := svc.LastClose(context.Background(), "GHOST")
	assert.True(t, errors.Is(err, market.ErrNoQuote))
}

func TestLastClose_ProviderError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`)
	})

	_, err := svc.LastClose(context.Background(), "GHOST")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No data found")
}

func TestLastClose_BadStatus(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := svc.LastClose(context.Background(), "TCS")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
