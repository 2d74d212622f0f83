package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config はアプリケーション設定を表す
type Config struct {
	Env      string
	Storage  StorageConfig
	Autosave AutosaveConfig
}

// StorageConfig は永続化ファイルの設定
type StorageConfig struct {
	DataDir      string
	HomestayFile string
	TourFile     string
	BookingFile  string
}

// AutosaveConfig は自動保存ワーカーの設定
type AutosaveConfig struct {
	Enabled  bool
	Interval time.Duration
}

// Load は環境変数から設定を読み込む
func Load() *Config {
	return &Config{
		Env: getEnv("APP_ENV", "development"),
		Storage: StorageConfig{
			DataDir:      getEnv("DATA_DIR", "data"),
			HomestayFile: getEnv("HOMESTAY_FILE", "Homestays.txt"),
			TourFile:     getEnv("TOUR_FILE", "Tours.txt"),
			BookingFile:  getEnv("BOOKING_FILE", "Bookings.txt"),
		},
		Autosave: AutosaveConfig{
			Enabled:  getBoolEnv("AUTOSAVE_ENABLED", true),
			Interval: getDurationEnv("AUTOSAVE_INTERVAL", 30*time.Second),
		},
	}
}

// HomestayPath はホームステイファイルのパスを返す
func (c *StorageConfig) HomestayPath() string {
	return filepath.Join(c.DataDir, c.HomestayFile)
}

// TourPath はツアーファイルのパスを返す
func (c *StorageConfig) TourPath() string {
	return filepath.Join(c.DataDir, c.TourFile)
}

// BookingPath は予約ファイルのパスを返す
func (c *StorageConfig) BookingPath() string {
	return filepath.Join(c.DataDir, c.BookingFile)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
