package config

import (
	"os"
)

type Config struct {
	DatabasePath    string
	AnthropicAPIKey string
	VerseModel      string
	LogLevel        string
	Port            string
}

// Load reads configuration from the environment. The Anthropic key is
// optional; without it the verse generation endpoint answers 500.
func Load() (Config, error) {
	config := Config{
		DatabasePath:    envOrDefault("DATABASE_PATH", "./data/life-dashboard.db"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		VerseModel:      envOrDefault("VERSE_MODEL", "claude-3-5-haiku-latest"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		Port:            envOrDefault("PORT", "8080"),
	}
	return config, nil
}

func envOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
