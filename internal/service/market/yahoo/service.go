package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/quillon/stocksentry/internal/service/market"
	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

type Config struct {
	BaseURL string        `mapstructure:"base_url"`
	Suffix  string        `mapstructure:"suffix"` // exchange suffix appended to every symbol, e.g. ".NS"
	Timeout time.Duration `mapstructure:"timeout"`
}

var _ market.QuoteService = (*Service)(nil)

// Service fetches daily close prices from the Yahoo Finance chart API.
type Service struct {
	cli    *resty.Client
	suffix string
}

func NewService(cfg Config) *Service {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	cli := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", "Mozilla/5.0 (compatible; stocksentry)")
	return &Service{
		cli:    cli,
		suffix: cfg.Suffix,
	}
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func (s *Service) LastClose(ctx context.Context, symbol string) (decimal.Decimal, error) {
	full := strings.ToUpper(symbol) + s.suffix

	var out chartResponse
	resp, err := s.cli.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"interval": "1d",
			"range":    "1d",
		}).
		SetResult(&out).
		Get("/v8/finance/chart/" + url.PathEscape(full))
	if err != nil {
		return decimal.Zero, fmt.Errorf("quote request for %s: %w", full, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return decimal.Zero, market.ErrNoQuote
	}
	if resp.StatusCode() != http.StatusOK {
		return decimal.Zero, fmt.Errorf("quote request for %s: status %d", full, resp.StatusCode())
	}
	if out.Chart.Error != nil {
		return decimal.Zero, fmt.Errorf("quote request for %s: %s (%s)",
			full, out.Chart.Error.Description, out.Chart.Error.Code)
	}
	if len(out.Chart.Result) == 0 {
		return decimal.Zero, market.ErrNoQuote
	}

	result := out.Chart.Result[0]
	for _, quote := range result.Indicators.Quote {
		for i := len(quote.Close) - 1; i >= 0; i-- {
			if quote.Close[i] != nil {
				return decimal.NewFromFloat(*quote.Close[i]), nil
			}
		}
	}
	if result.Meta.RegularMarketPrice > 0 {
		return decimal.NewFromFloat(result.Meta.RegularMarketPrice), nil
	}
	return decimal.Zero, market.ErrNoQuote
}
