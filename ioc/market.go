package ioc

import (
	"github.com/quillon/stocksentry/internal/service/market/yahoo"
	"github.com/spf13/viper"
)

func InitQuoteService() *yahoo.Service {
	var cfg yahoo.Config
	if err := viper.UnmarshalKey("market", &cfg); err != nil {
		panic(err)
	}
	if cfg.Suffix == "" {
		cfg.Suffix = ".NS"
	}

	return yahoo.NewService(cfg)
}
