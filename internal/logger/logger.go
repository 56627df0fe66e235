// internal/logger/logger.go
//
// Package logger 提供全域的 zap 結構化日誌。
// 未呼叫 Initialize 前 Log 為 no-op，測試與函式庫程式碼可直接使用。
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log 為全域 logger。
var Log = zap.NewNop()

// Initialize 依等級與輸出路徑建立 production 設定的 logger 並取代 Log。
// output 可為檔案路徑或 "stderr" / "stdout"。
func Initialize(level, output string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{output}
	cfg.ErrorOutputPaths = []string{output}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	Log = l
	return nil
}

// Sync 清空緩衝；忽略 stderr 等不支援 sync 的輸出所回傳的錯誤。
func Sync() {
	_ = Log.Sync()
}

func String(key, val string) zap.Field {
	return zap.String(key, val)
}

func Int(key string, val int) zap.Field {
	return zap.Int(key, val)
}

func Int64(key string, val int64) zap.Field {
	return zap.Int64(key, val)
}

func Bool(key string, val bool) zap.Field {
	return zap.Bool(key, val)
}

func Error(err error) zap.Field {
	return zap.Error(err)
}
