package ioc

import (
	"os"

	"github.com/quillon/stocksentry/internal/service/notification/telegram"
	"github.com/spf13/viper"
)

func InitTelegramService() *telegram.Service {
	type Config struct {
		BotToken string `mapstructure:"bot_token"`
	}

	var cfg Config
	if err := viper.UnmarshalKey("telegram", &cfg); err != nil {
		panic(err)
	}
	if cfg.BotToken == "" {
		cfg.BotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	}
	if cfg.BotToken == "" {
		panic("no telegram bot token set")
	}

	return telegram.NewService(cfg.BotToken)
}
