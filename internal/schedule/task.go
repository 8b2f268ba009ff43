package schedule

import (
	"context"
	"log/slog"
	"time"
)

type Task interface {
	Run(ctx context.Context) error
	Name() string
}

// RunEvery runs task immediately and then forever on a fixed cadence.
// The interval is measured from the end of one run to the start of the
// next, so a slow run pushes the following one back instead of piling
// up overlapping runs. Errors and panics inside a run are logged and
// the loop keeps going; only ctx cancellation stops it.
func RunEvery(ctx context.Context, task Task, interval time.Duration) {
	for {
		runOnce(ctx, task)
		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
	}
}

func runOnce(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("task panicked", "task", task.Name(), "panic", r)
		}
	}()

	start := time.Now()
	if err := task.Run(ctx); err != nil {
		slog.Error("task failed", "task", task.Name(), "error", err)
		return
	}
	slog.Info("task finished", "task", task.Name(), "elapsed", time.Since(start))
}
