package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/quillon/stocksentry/internal/entity"
	"github.com/quillon/stocksentry/internal/repo"
	"github.com/quillon/stocksentry/internal/service/alert"
	"github.com/quillon/stocksentry/internal/service/market"
	"github.com/quillon/stocksentry/internal/service/notification"
	"github.com/quillon/stocksentry/internal/service/store"
	"github.com/quillon/stocksentry/internal/service/strategy"
	"github.com/samber/lo"
)

// StockMonitor orchestrates one scan cycle. Reference data is re-read
// from the store every cycle; the only state carried across cycles is
// the in-memory alert limiter.
type StockMonitor struct {
	refStore   store.ReferenceStore
	quoteSvc   market.QuoteService
	dispatcher *notification.Dispatcher
	limiter    *alert.Limiter

	buyEval  strategy.BuyEvaluator
	sellEval strategy.SellEvaluator

	history repo.AlertRepo
	now     func() time.Time
}

type Option func(m *StockMonitor)

// WithHistory enables best-effort persistence of every sent alert.
func WithHistory(history repo.AlertRepo) Option {
	return func(m *StockMonitor) {
		m.history = history
	}
}

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(m *StockMonitor) {
		m.now = now
	}
}

func NewStockMonitor(refStore store.ReferenceStore, quoteSvc market.QuoteService,
	dispatcher *notification.Dispatcher, limiter *alert.Limiter, opts ...Option) *StockMonitor {
	m := &StockMonitor{
		refStore:   refStore,
		quoteSvc:   quoteSvc,
		dispatcher: dispatcher,
		limiter:    limiter,
		buyEval:    strategy.NewBuyEvaluator(),
		sellEval:   strategy.NewSellEvaluator(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var _ ScanService = (*StockMonitor)(nil)

func (m *StockMonitor) Scan(ctx context.Context) error {
	users, err := m.refStore.Users(ctx)
	if err != nil {
		return fmt.Errorf("load user directory: %w", err)
	}

	if err := m.scanBuySignals(ctx, users); err != nil {
		return fmt.Errorf("buy phase: %w", err)
	}
	if err := m.scanSellSignals(ctx, users); err != nil {
		return fmt.Errorf("sell phase: %w", err)
	}
	return nil
}

// scanBuySignals broadcasts a buy alert to every directory user for
// each watched stock trading strictly above its ATH reference, gated by
// the monthly suppression log and the per-day counter.
func (m *StockMonitor) scanBuySignals(ctx context.Context, users []store.User) error {
	watchlist, err := m.refStore.Watchlist(ctx)
	if err != nil {
		return err
	}
	suppressions, err := m.refStore.Suppressions(ctx)
	if err != nil {
		return err
	}
	suppressed := store.NewSuppressionSet(suppressions)

	now := m.now()
	yearMonth := alert.YearMonth(now)

	symbols := lo.Map(watchlist, func(w store.WatchedStock, _ int) string {
		return w.Symbol
	})
	prices := market.FetchAll(ctx, m.quoteSvc, symbols)
	slog.Info("buy phase prices fetched", "requested", len(symbols), "resolved", len(prices))

	for _, watched := range watchlist {
		live, ok := prices[watched.Symbol]
		if !ok {
			slog.Debug("no live price, skipping", "symbol", watched.Symbol)
			continue
		}

		sig := m.buyEval.Evaluate(live, watched.ATH)
		if !sig.Triggered {
			continue
		}

		for _, user := range users {
			if suppressed.Contains(user.Name, watched.Symbol, yearMonth) {
				continue
			}

			key := alert.BuyKey(user.Name, watched.Symbol, watched.ATH, now)
			if !m.limiter.ShouldSend(key) {
				continue
			}
			count := m.limiter.RecordSent(key)

			body := fmt.Sprintf("📈 BUY ALERT for %s\nLive: ₹%s\nATH: ₹%s (x%d)",
				watched.Symbol, live, watched.ATH, count)
			m.dispatcher.Dispatch(ctx, user, "BUY ALERT for "+watched.Symbol, body)
			m.recordHistory(ctx, entity.SentAlert{
				Kind:    entity.AlertKindBuy,
				User:    user.Name,
				Symbol:  watched.Symbol,
				Price:   live.String(),
				Reason:  sig.Reason,
				Ordinal: count,
			})

			// Daily cap reached: block this user/stock pair for the
			// rest of the month. Appended exactly once, at the
			// transition to the cap.
			if count == m.limiter.Max() {
				sup := store.Suppression{
					User:      user.Name,
					Symbol:    watched.Symbol,
					YearMonth: yearMonth,
				}
				if err := m.refStore.AppendSuppression(ctx, sup); err != nil {
					slog.Error("failed to append suppression row",
						"user", user.Name, "symbol", watched.Symbol, "error", err)
				}
			}
		}
	}
	return nil
}

// scanSellSignals evaluates each active holding against its owner's
// trailing stop. No monthly suppression here: only the in-memory
// per-key counter applies.
func (m *StockMonitor) scanSellSignals(ctx context.Context, users []store.User) error {
	holdings, err := m.refStore.Holdings(ctx)
	if err != nil {
		return err
	}

	userByName := lo.KeyBy(users, func(u store.User) string {
		return u.Name
	})

	symbols := lo.Map(holdings, func(h store.Holding, _ int) string {
		return h.Symbol
	})
	prices := market.FetchAll(ctx, m.quoteSvc, symbols)
	slog.Info("sell phase prices fetched", "requested", len(symbols), "resolved", len(prices))

	for _, holding := range holdings {
		live, ok := prices[holding.Symbol]
		if !ok {
			slog.Debug("no live price, skipping", "symbol", holding.Symbol)
			continue
		}

		sig := m.sellEval.Evaluate(live, holding.BuyPrice, holding.SMAShort, holding.SMALong)
		if !sig.Triggered {
			continue
		}

		// An owner missing from the directory still goes through
		// evaluation and counting; dispatch is a no-op without handles.
		owner, ok := userByName[holding.Owner]
		if !ok {
			owner = store.User{Name: holding.Owner}
		}

		key := alert.SellKey(holding.Owner, holding.Symbol, sig.Reason)
		if !m.limiter.ShouldSend(key) {
			continue
		}
		count := m.limiter.RecordSent(key)

		body := fmt.Sprintf("🚨 SELL ALERT for %s\nLive: ₹%s\nBuy Price: ₹%s\n%s (x%d)",
			holding.Symbol, live, holding.BuyPrice, sig.Reason, count)
		m.dispatcher.Dispatch(ctx, owner, "SELL ALERT for "+holding.Symbol, body)
		m.recordHistory(ctx, entity.SentAlert{
			Kind:    entity.AlertKindSell,
			User:    holding.Owner,
			Symbol:  holding.Symbol,
			Price:   live.String(),
			Reason:  sig.Reason,
			Ordinal: count,
		})
		slog.Info("sell alert sent", "symbol", holding.Symbol, "user", holding.Owner, "reason", sig.Reason)
	}
	return nil
}

func (m *StockMonitor) recordHistory(ctx context.Context, a entity.SentAlert) {
	if m.history == nil {
		return
	}
	if _, err := m.history.Create(ctx, a); err != nil {
		slog.Error("failed to record alert history", "symbol", a.Symbol, "error", err)
	}
}
