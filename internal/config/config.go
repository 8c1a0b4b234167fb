package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort           string
	TrustedProxies    []string
	StorageDriver     string
	StoragePath       string
	StorageKey        string
	KeyPrefix         string
	InsertPolicy      string
	WIPLimitDoing     int
	IDStrategy        string
	LogLevel          string
	LogFile           string
	TranslationFolder string
}

const (
	StorageDriverFile   = "file"
	StorageDriverSQLite = "sqlite"
	StorageDriverMemory = "memory"
)

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		TrustedProxies:    parseList(os.Getenv("TRUSTED_PROXIES")),
		StorageDriver:     strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverFile)),
		StoragePath:       getEnv("STORAGE_PATH", "./data"),
		StorageKey:        getEnv("STORAGE_KEY", "kanban_board_v1"),
		KeyPrefix:         getEnv("KEY_PREFIX", "KB"),
		InsertPolicy:      getEnv("INSERT_POLICY", "head"),
		WIPLimitDoing:     getEnvInt("WIP_LIMIT_DOING", 3),
		IDStrategy:        strings.ToLower(getEnv("ID_STRATEGY", "uuid")),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFile:           os.Getenv("LOG_FILE"),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
