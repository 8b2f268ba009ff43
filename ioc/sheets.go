package ioc

import (
	"context"
	"os"

	sheetstore "github.com/quillon/stocksentry/internal/service/store/sheets"
	"github.com/spf13/viper"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

func InitReferenceStore() *sheetstore.Service {
	type Config struct {
		CredentialsFile  string `mapstructure:"credentials_file"`
		sheetstore.Config `mapstructure:",squash"`
	}

	var cfg Config
	if err := viper.UnmarshalKey("sheets", &cfg); err != nil {
		panic(err)
	}
	if cfg.CredentialsFile == "" {
		cfg.CredentialsFile = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	}
	if cfg.CredentialsFile == "" {
		cfg.CredentialsFile = "creds.json"
	}
	if cfg.SpreadsheetID == "" {
		panic("no spreadsheet id set")
	}

	srv, err := sheets.NewService(context.Background(),
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		panic(err)
	}
	return sheetstore.NewService(srv, cfg.Config)
}
