// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	//Telegram reporting is optional; when the token is empty no reports
	//are sent
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`

	//Vacancy filtering
	ExcludeKeywords []string `yaml:"exclude_keywords"`

	//Paths
	CoverLetterPath string `yaml:"cover_letter_path"`

	//Run tunables
	Limit          int     `yaml:"limit"`
	ScrollPauseMs  float64 `yaml:"scroll_pause_ms"`
	MaxScrolls     int     `yaml:"max_scrolls"`
	StableRounds   int     `yaml:"stable_rounds"`
	PollTimeoutSec float64 `yaml:"poll_timeout_sec"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if cfg.Limit <= 0 {
		cfg.Limit = 10
	}

	if cfg.ScrollPauseMs <= 0 {
		cfg.ScrollPauseMs = 900
	}

	if cfg.MaxScrolls <= 0 {
		cfg.MaxScrolls = 50
	}

	if cfg.StableRounds <= 0 {
		cfg.StableRounds = 3
	}

	if cfg.PollTimeoutSec <= 0 {
		cfg.PollTimeoutSec = 6
	}

	//Validate: a token without a chat id cannot report anywhere
	if cfg.TelegramToken != "" && cfg.TelegramChatID == 0 {
		log.Fatal("TELEGRAM_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}

	return cfg
}
