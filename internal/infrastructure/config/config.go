// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

// Notifier drivers
const (
	NotifierLog   = "log"
	NotifierGmail = "gmail"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Snapshot storage
	StorageDriver string
	DataDir       string
	SQLitePath    string

	// Screening analysis
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	GeminiTimeout time.Duration

	// Notifications
	NotifierDriver    string
	NotifyFrom        string
	GmailClientID     string
	GmailClientSecret string
	GmailRefreshToken string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		StorageDriver: getEnv("STORAGE_DRIVER", StorageFile),
		DataDir:       getEnv("DATA_DIR", "./data"),
		SQLitePath:    getEnv("SQLITE_PATH", "./data/personalityai.db"),

		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", ""),
		GeminiTimeout: time.Duration(getEnvAsInt("GEMINI_TIMEOUT", 30)) * time.Second,

		NotifierDriver:    getEnv("NOTIFIER_DRIVER", NotifierLog),
		NotifyFrom:        getEnv("NOTIFY_FROM", "clinic@personalityai.dev"),
		GmailClientID:     getEnv("GMAIL_CLIENT_ID", ""),
		GmailClientSecret: getEnv("GMAIL_CLIENT_SECRET", ""),
		GmailRefreshToken: getEnv("GMAIL_REFRESH_TOKEN", ""),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
