package monitor

import "context"

// ScanService runs one full evaluation pass: buy phase over the
// watchlist, then sell phase over active holdings.
type ScanService interface {
	Scan(ctx context.Context) error
}
