// internal/config/config.go
//
// Package config 讀取執行設定：先由環境變數（含 env-default）填值，
// 再以命令列旗標覆寫。
package config

import (
	"flag"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	DataDir  string `env:"ATM_DATA_DIR" env-default:"."`
	FileExt  string `env:"ATM_FILE_EXT" env-default:".acc"`
	LogLevel string `env:"ATM_LOG_LEVEL" env-default:"info"`
	LogFile  string `env:"ATM_LOG_FILE" env-default:"atm.log"`
}

// Load 解析環境變數與 args（不含程式名稱）。
func Load(args []string) (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("couldn't read environment variables: %w", err)
	}

	fs := flag.NewFlagSet("atm", flag.ContinueOnError)
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "帳戶檔案所在目錄")
	fs.StringVar(&cfg.FileExt, "e", cfg.FileExt, "帳戶檔案副檔名")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "日誌等級 (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFile, "o", cfg.LogFile, "日誌輸出路徑或 stderr")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("couldn't parse flags: %w", err)
	}

	return cfg, nil
}
