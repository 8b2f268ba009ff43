package monitor

import (
	"context"

	"github.com/quillon/stocksentry/internal/schedule"
)

type scanTask struct {
	svc ScanService
}

func NewScanTask(svc ScanService) schedule.Task {
	return &scanTask{
		svc: svc,
	}
}

func (t *scanTask) Run(ctx context.Context) error {
	return t.svc.Scan(ctx)
}

func (t *scanTask) Name() string {
	return "stock alert scan"
}
