package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/quillon/stocksentry/internal/service/store"
	"github.com/quillon/stocksentry/pkg/decimalx"
	"google.golang.org/api/sheets/v4"
)

// Column names as they appear in the spreadsheet header rows.
const (
	colStock      = "Stock"
	colATHCurrent = "ATH_Current_Month"
	colATH        = "ATH"
	colBuyPrice   = "Buy Price"
	colSMAShort   = "SMA_10M"
	colSMALong    = "SMA_20M"
	colName       = "Name"
	colTelegramID = "Telegram ID"
	colEmail      = "Email"
	colUser       = "User"
	colYearMonth  = "YearMonth"
	colAlertType  = "AlertType"
)

type Config struct {
	SpreadsheetID  string `mapstructure:"spreadsheet_id"`
	WatchlistSheet string `mapstructure:"watchlist_sheet"`
	HoldingsSheet  string `mapstructure:"holdings_sheet"`
	UsersSheet     string `mapstructure:"users_sheet"`
	AlertLogSheet  string `mapstructure:"alert_log_sheet"`
}

func (c *Config) applyDefaults() {
	if c.WatchlistSheet == "" {
		c.WatchlistSheet = "Monthly ATH Stocks"
	}
	if c.HoldingsSheet == "" {
		c.HoldingsSheet = "Active Holdings"
	}
	if c.UsersSheet == "" {
		c.UsersSheet = "UserDirectory"
	}
	if c.AlertLogSheet == "" {
		c.AlertLogSheet = "Alert_Log"
	}
}

var _ store.ReferenceStore = (*Service)(nil)

// Service reads the reference sheets through the Google Sheets API.
// Rows are keyed by header name, so column order in the sheet does not
// matter and optional columns may be missing entirely.
type Service struct {
	srv *sheets.Service
	cfg Config
}

func NewService(srv *sheets.Service, cfg Config) *Service {
	cfg.applyDefaults()
	return &Service{
		srv: srv,
		cfg: cfg,
	}
}

func (s *Service) Watchlist(ctx context.Context) ([]store.WatchedStock, error) {
	rows, err := s.readRows(ctx, s.cfg.WatchlistSheet)
	if err != nil {
		return nil, fmt.Errorf("read watchlist: %w", err)
	}
	return parseWatchlist(rows), nil
}

func (s *Service) Holdings(ctx context.Context) ([]store.Holding, error) {
	rows, err := s.readRows(ctx, s.cfg.HoldingsSheet)
	if err != nil {
		return nil, fmt.Errorf("read holdings: %w", err)
	}
	return parseHoldings(rows), nil
}

func (s *Service) Users(ctx context.Context) ([]store.User, error) {
	rows, err := s.readRows(ctx, s.cfg.UsersSheet)
	if err != nil {
		return nil, fmt.Errorf("read user directory: %w", err)
	}
	return parseUsers(rows), nil
}

func (s *Service) Suppressions(ctx context.Context) ([]store.Suppression, error) {
	rows, err := s.readRows(ctx, s.cfg.AlertLogSheet)
	if err != nil {
		return nil, fmt.Errorf("read alert log: %w", err)
	}
	return parseSuppressions(rows), nil
}

func (s *Service) AppendSuppression(ctx context.Context, sup store.Suppression) error {
	row := []any{
		sup.User,
		sup.Symbol,
		sup.YearMonth,
		"buy",
		time.Now().Format("2006-01-02 15:04:05"),
	}
	_, err := s.srv.Spreadsheets.Values.
		Append(s.cfg.SpreadsheetID, s.cfg.AlertLogSheet, &sheets.ValueRange{Values: [][]any{row}}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append alert log row: %w", err)
	}
	return nil
}

// readRows fetches a whole sheet and turns every data row into a map
// keyed by the header row. Cells to the right of the header are dropped,
// missing trailing cells are simply absent from the map.
func (s *Service) readRows(ctx context.Context, sheetName string) ([]map[string]any, error) {
	resp, err := s.srv.Spreadsheets.Values.
		Get(s.cfg.SpreadsheetID, sheetName).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	return mapRows(resp.Values), nil
}

func mapRows(values [][]any) []map[string]any {
	if len(values) < 2 {
		return nil
	}
	header := make([]string, len(values[0]))
	for i, h := range values[0] {
		header[i] = strings.TrimSpace(fmt.Sprint(h))
	}

	rows := make([]map[string]any, 0, len(values)-1)
	for _, raw := range values[1:] {
		row := make(map[string]any, len(header))
		for i, cell := range raw {
			if i >= len(header) || header[i] == "" {
				continue
			}
			row[header[i]] = cell
		}
		rows = append(rows, row)
	}
	return rows
}

func parseWatchlist(rows []map[string]any) []store.WatchedStock {
	out := make([]store.WatchedStock, 0, len(rows))
	for _, row := range rows {
		symbol := cellString(row, colStock)
		if symbol == "" {
			continue
		}
		athCell, ok := row[colATHCurrent]
		if !ok || cellString(row, colATHCurrent) == "" {
			athCell = row[colATH]
		}
		ath, err := decimalx.FromCell(athCell)
		if err != nil {
			slog.Warn("skipping watchlist row", "symbol", symbol, "error", err)
			continue
		}
		out = append(out, store.WatchedStock{Symbol: symbol, ATH: ath})
	}
	return out
}

func parseHoldings(rows []map[string]any) []store.Holding {
	out := make([]store.Holding, 0, len(rows))
	for _, row := range rows {
		symbol := cellString(row, colStock)
		if symbol == "" {
			continue
		}
		buyPrice, err := decimalx.FromCell(row[colBuyPrice])
		if err != nil {
			slog.Warn("skipping holding row", "symbol", symbol, "error", err)
			continue
		}
		smaShort, errShort := decimalx.FromCellOrZero(row[colSMAShort])
		smaLong, errLong := decimalx.FromCellOrZero(row[colSMALong])
		if errShort != nil || errLong != nil {
			slog.Warn("bad moving average on holding row",
				"symbol", symbol,
				"sma_10m", row[colSMAShort],
				"sma_20m", row[colSMALong])
			continue
		}
		out = append(out, store.Holding{
			Symbol:   symbol,
			Owner:    cellString(row, colName),
			BuyPrice: buyPrice,
			SMAShort: smaShort,
			SMALong:  smaLong,
		})
	}
	return out
}

func parseUsers(rows []map[string]any) []store.User {
	out := make([]store.User, 0, len(rows))
	for _, row := range rows {
		name := cellString(row, colName)
		if name == "" {
			continue
		}
		out = append(out, store.User{
			Name:       name,
			TelegramID: cellString(row, colTelegramID),
			Email:      cellString(row, colEmail),
		})
	}
	return out
}

func parseSuppressions(rows []map[string]any) []store.Suppression {
	out := make([]store.Suppression, 0, len(rows))
	for _, row := range rows {
		if cellString(row, colAlertType) != "buy" {
			continue
		}
		sup := store.Suppression{
			User:      cellString(row, colUser),
			Symbol:    cellString(row, colStock),
			YearMonth: cellString(row, colYearMonth),
		}
		if sup.User == "" || sup.Symbol == "" || sup.YearMonth == "" {
			continue
		}
		out = append(out, sup)
	}
	return out
}

func cellString(row map[string]any, col string) string {
	v, ok := row[col]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}
