// Env loader
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv             string
	Port               string
	LogFormat          string
	LogLevel           string
	DBPath             string
	QuranAPIBaseURL    string
	TextEdition        string
	SearchEdition      string
	HTTPTimeout        time.Duration
	CatalogRefreshTime time.Duration
}

// LoadConfig loads environment variables from the .env file
func LoadConfig() *Config {

	appEnv := os.Getenv("APP_ENV")

	switch appEnv {
	case "production":
		if err := godotenv.Load(".env.production"); err == nil {
			fmt.Println("Loaded .env.production")
		}
	default:
		if err := godotenv.Load(".env.development"); err == nil {
			fmt.Println("Loaded .env.development")
		}
	}

	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		DBPath:             getEnv("READER_DB_PATH", "quran-reader.db"),
		QuranAPIBaseURL:    getEnv("QURAN_API_BASE_URL", "https://api.alquran.cloud/v1"),
		TextEdition:        getEnv("QURAN_TEXT_EDITION", "quran-uthmani"),
		SearchEdition:      getEnv("QURAN_SEARCH_EDITION", "id.indonesian"),
		HTTPTimeout:        getDurationEnv("QURAN_API_TIMEOUT", 15*time.Second),
		CatalogRefreshTime: getDurationEnv("CATALOG_REFRESH_INTERVAL", 24*time.Hour),
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func GetAppEnv() string {
	if value, exists := os.LookupEnv("APP_ENV"); exists {
		return value
	}
	return "development"
}
