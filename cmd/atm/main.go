// cmd/atm/main.go

// 本程式為文字選單 ATM：登入帳戶檔案後可查詢餘額或提款。
// 此檔案負責初始化模組（config, logger, storage, console），
// 並執行一次 session；不論正常離開或中止皆以結束碼 0 結束。

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"atm/internal/config"
	"atm/internal/console"
	"atm/internal/logger"
	"atm/internal/storage"
)

func main() {
	// .env 不存在時直接使用環境變數
	_ = godotenv.Load()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	if err = logger.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
		log.Fatalf("error starting logger: %v", err)
	}
	defer logger.Sync()

	logger.Log.Info("starting atm",
		logger.String("data_dir", cfg.DataDir),
		logger.String("file_ext", cfg.FileExt),
	)

	store := storage.NewFileStore(cfg.DataDir, cfg.FileExt)
	s := console.NewSession(store, os.Stdin, os.Stdout)

	// 中止時診斷訊息已由 session 輸出
	if err := s.Run(); err != nil {
		fmt.Println("\nSession ended.")
		logger.Log.Info("session ended", logger.Error(err))
		return
	}
	logger.Log.Info("session finished")
}
