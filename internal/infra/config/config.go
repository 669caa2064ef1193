package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ErrMissingCredentials marks a configuration that lacks one of the three required secrets.
var ErrMissingCredentials = errors.New("required credentials are not set")

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken    string        `envconfig:"PRACTICUM_TOKEN" required:"true"`
	TelegramToken     string        `envconfig:"TELEGRAM_TOKEN" required:"true"`
	TelegramChatID    string        `envconfig:"TELEGRAM_CHAT_ID" required:"true"`
	PracticumEndpoint string        `envconfig:"PRACTICUM_ENDPOINT" default:"https://practicum.yandex.ru/api/user_api/homework_statuses/"`
	PollSchedule      string        `envconfig:"POLL_SCHEDULE" default:"@every 10m"`
	RequestTimeout    time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	DatabaseURL       string        `envconfig:"DATABASE_URL"` // optional, enables the notification journal
	BotCommands       bool          `envconfig:"BOT_COMMANDS_ENABLED" default:"false"`
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"info"`
	Environment       string        `envconfig:"ENVIRONMENT" default:"development"`
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	if err := envconfig.Process("", cfg); err != nil {
		// envconfig only reports unset required keys; empty values are caught below.
		if strings.Contains(err.Error(), "required key") {
			return nil, errors.Mark(errors.Wrap(err, "failed to process env config"), ErrMissingCredentials)
		}
		return nil, errors.Wrap(err, "failed to process env config")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.Environment = strings.ToLower(cfg.Environment)
	return cfg, nil
}

func (c *AppConfig) validate() error {
	var missing []string
	if c.PracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if c.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if c.TelegramChatID == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		return errors.Mark(errors.Newf("%s is not set", strings.Join(missing, ", ")), ErrMissingCredentials)
	}

	if c.PracticumEndpoint == "" {
		return errors.New("PRACTICUM_ENDPOINT must not be empty")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT must be positive")
	}
	return nil
}
