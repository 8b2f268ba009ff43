package ioc

import (
	"os"

	"github.com/quillon/stocksentry/internal/service/notification/mail"
	"github.com/spf13/viper"
)

func InitMailService() *mail.Service {
	var cfg mail.Config
	if err := viper.UnmarshalKey("mail", &cfg); err != nil {
		panic(err)
	}
	if cfg.Username == "" {
		cfg.Username = os.Getenv("GMAIL_USER")
	}
	if cfg.Password == "" {
		cfg.Password = os.Getenv("GMAIL_APP_PASSWORD")
	}
	if cfg.Username == "" || cfg.Password == "" {
		panic("no mail credentials set")
	}

	return mail.NewService(cfg)
}
