package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	// Time policy: one fixed IANA zone for slot resolution and all triggers.
	Timezone string `env:"TIMEZONE,required"`

	// LLM settings
	LLMProvider      string `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string `env:"OPENAI_BASE_URL"`
	OpenAIModel      string `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	YandexOAuthToken string `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string `env:"YANDEX_FOLDER_ID"`

	// Delivery
	WebhookURL       string `env:"WEBHOOK_URL,required"`
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   int64  `env:"TELEGRAM_CHAT_ID"`

	// Triggers (hours of day in the fixed zone)
	GenerationHour int   `env:"GENERATION_HOUR" envDefault:"0"`
	NotifyHours    []int `env:"NOTIFY_HOURS" envSeparator:":" envDefault:"8:13:19"`

	// Storage
	SQLiteDir string `env:"SQLITE_DIR" envDefault:"data"`

	// Server
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	if cfg.LLMProvider == "openai" && cfg.OpenAIAPIKey == "" {
		log.Fatalf("OPENAI_API_KEY environment variable is not set")
	}
	if cfg.LLMProvider == "yandex" && (cfg.YandexOAuthToken == "" || cfg.YandexFolderID == "") {
		log.Fatalf("YANDEX_OAUTH_TOKEN and YANDEX_FOLDER_ID must be set for the yandex provider")
	}
	return cfg
}
