package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Виды поверхностей
const (
	SurfaceHighGUI = "highgui"
	SurfaceFyne    = "fyne"
	SurfaceMemory  = "memory"
)

type Config struct {
	TelegramToken string
	PresetPath    string
	Surface       string
	LogLevel      zerolog.Level
	PreviewImage  string
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	level, err := zerolog.ParseLevel(getenv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		PresetPath:    getenv("BOARD_PRESET", "board.yaml"),
		Surface:       strings.ToLower(getenv("SURFACE", SurfaceHighGUI)),
		LogLevel:      level,
		PreviewImage:  os.Getenv("PREVIEW_IMAGE"),
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
