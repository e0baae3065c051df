package config

import "os"

// Config holds everything the service reads from the environment. It is
// loaded once in main and passed down explicitly, so tests can build their
// own values instead of touching ambient env state.
type Config struct {
	ListenAddr string

	AnthropicAPIKey string
	Model           string
	MaxTokens       int

	TelegramBotToken string
	TelegramChatID   string

	DatabaseURL string
}

const (
	defaultModel     = "claude-3-haiku-20240307"
	defaultMaxTokens = 4096
)

func Load() Config {
	cfg := Config{
		ListenAddr:       ":8080",
		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		Model:            defaultModel,
		MaxTokens:        defaultMaxTokens,
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
	}

	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}
	if model := os.Getenv("ANTHROPIC_MODEL"); model != "" {
		cfg.Model = model
	}

	return cfg
}
