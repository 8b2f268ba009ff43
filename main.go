package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quillon/stocksentry/internal/repo"
	"github.com/quillon/stocksentry/internal/schedule"
	"github.com/quillon/stocksentry/internal/service/alert"
	"github.com/quillon/stocksentry/internal/service/monitor"
	"github.com/quillon/stocksentry/internal/service/notification"
	"github.com/quillon/stocksentry/internal/web"
	"github.com/quillon/stocksentry/ioc"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func initViper() {

	// --config=./config/xxx.yaml
	file := pflag.String("config", "./config/config.yaml", "specify config file")
	pflag.Parse()

	viper.SetConfigFile(*file)
	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("fatal error config file: %s \n", err))
	}
}

func main() {
	initViper()

	db := ioc.InitDB()
	if err := repo.InitTables(db); err != nil {
		panic(err)
	}
	alertRepo := repo.NewAlertRepo(db)

	refStore := ioc.InitReferenceStore()
	quoteSvc := ioc.InitQuoteService()
	dispatcher := notification.NewDispatcher(ioc.InitTelegramService(), ioc.InitMailService())
	limiter := alert.NewLimiter(viper.GetInt("monitor.max_alerts_per_trigger"))

	interval := viper.GetDuration("monitor.interval")
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	addr := viper.GetString("server.addr")
	if addr == "" {
		addr = ":8080"
	}
	web.NewServer(addr, alertRepo).Start()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		slog.Info("shutdown signal received")
		cancel()
	}()

	stockMonitor := monitor.NewStockMonitor(refStore, quoteSvc, dispatcher, limiter,
		monitor.WithHistory(alertRepo))
	task := monitor.NewScanTask(stockMonitor)

	slog.Info("starting scan loop", "interval", interval)
	schedule.RunEvery(ctx, task, interval)
	slog.Info("scan loop stopped")
}
