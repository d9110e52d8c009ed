package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config アプリケーション設定
type Config struct {
	// Server
	ServerPort int

	// Data sources（起動時に一度だけ読み込むCSV）
	BarsCSVPath   string
	DrinksCSVPath string

	// Logging
	LogLevel string
	LogDir   string // 空ならファイル出力なし
}

// Load 環境変数から設定を読み込む
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:    getEnvInt("PORT", 8080),
		BarsCSVPath:   getEnv("BARS_CSV_PATH", "data/bars.csv"),
		DrinksCSVPath: getEnv("DRINKS_CSV_PATH", "data/drinks.csv"),
		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		LogDir:        getEnv("LOG_DIRECTORY", ""),
	}

	if cfg.ServerPort <= 0 || cfg.ServerPort > 65535 {
		return nil, fmt.Errorf("invalid PORT: %d", cfg.ServerPort)
	}
	return cfg, nil
}

// getEnv 環境変数を取得する。未設定なら defaultValue
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt 整数の環境変数を取得する。未設定・不正な値なら defaultValue
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
