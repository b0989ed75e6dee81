package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	APIURL          string   `env:"API_URL" envDefault:"http://localhost:3001/api"`
	TeamID          int      `env:"TEAM_ID" envDefault:"1"`
	HistoryLimit    int      `env:"HISTORY_LIMIT" envDefault:"10"`
	ListenAddr      string   `env:"LISTEN_ADDR" envDefault:":8080"`
	LogLevel        string   `env:"LOG_LEVEL" envDefault:"info"`
	RequestTimeout  int      `env:"REQUEST_TIMEOUT" envDefault:"30"` // seconds
	RequestsPerSec  int      `env:"REQUESTS_PER_SEC" envDefault:"5"`
	MaxRetries      int      `env:"MAX_RETRIES" envDefault:"0"`
	LabelResetMS    int      `env:"LABEL_RESET_MS" envDefault:"2000"`
	BarDelayMS      int      `env:"BAR_DELAY_MS" envDefault:"100"`
	DisplayTZ       string   `env:"DISPLAY_TZ" envDefault:"Local"`
	RefreshSchedule string   `env:"REFRESH_SCHEDULE" envDefault:""` // cron spec, empty disables
	CORSOrigins     []string `env:"CORS_ORIGINS" envDefault:"*"`
	TelegramToken   string   `env:"TELEGRAM_BOT_TOKEN" envDefault:""`
	TelegramChatID  int64    `env:"TELEGRAM_CHAT_ID" envDefault:"0"`
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	var cfg Config

	cfg.APIURL = strings.TrimRight(getEnvWithDefault("API_URL", "http://localhost:3001/api"), "/")
	cfg.TeamID = getEnvIntWithDefault("TEAM_ID", 1)
	cfg.HistoryLimit = getEnvIntWithDefault("HISTORY_LIMIT", 10)
	cfg.ListenAddr = getEnvWithDefault("LISTEN_ADDR", ":8080")
	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")
	cfg.RequestTimeout = getEnvIntWithDefault("REQUEST_TIMEOUT", 30)
	cfg.RequestsPerSec = getEnvIntWithDefault("REQUESTS_PER_SEC", 5)
	cfg.MaxRetries = getEnvIntWithDefault("MAX_RETRIES", 0)
	cfg.LabelResetMS = getEnvIntWithDefault("LABEL_RESET_MS", 2000)
	cfg.BarDelayMS = getEnvIntWithDefault("BAR_DELAY_MS", 100)
	cfg.DisplayTZ = getEnvWithDefault("DISPLAY_TZ", "Local")
	cfg.RefreshSchedule = os.Getenv("REFRESH_SCHEDULE")
	cfg.CORSOrigins = getEnvListWithDefault("CORS_ORIGINS", []string{"*"})
	cfg.TelegramToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	cfg.TelegramChatID = getEnvInt64WithDefault("TELEGRAM_CHAT_ID", 0)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the dashboard cannot run with.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return eris.New("config: API_URL is empty")
	}
	if c.TeamID <= 0 {
		return eris.Errorf("config: TEAM_ID must be positive, got %d", c.TeamID)
	}
	if c.HistoryLimit <= 0 {
		return eris.Errorf("config: HISTORY_LIMIT must be positive, got %d", c.HistoryLimit)
	}
	if c.MaxRetries < 0 {
		return eris.Errorf("config: MAX_RETRIES must not be negative, got %d", c.MaxRetries)
	}
	if c.LabelResetMS < 0 || c.BarDelayMS < 0 {
		return eris.New("config: delays must not be negative")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return eris.Wrapf(err, "config: LOG_LEVEL %q", c.LogLevel)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.RefreshSchedule != "" {
		if _, err := cron.ParseStandard(c.RefreshSchedule); err != nil {
			return eris.Wrapf(err, "config: REFRESH_SCHEDULE %q", c.RefreshSchedule)
		}
	}
	return nil
}

// Location resolves DisplayTZ.
func (c *Config) Location() (*time.Location, error) {
	if c.DisplayTZ == "" || c.DisplayTZ == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.DisplayTZ)
	if err != nil {
		return nil, eris.Wrapf(err, "config: DISPLAY_TZ %q", c.DisplayTZ)
	}
	return loc, nil
}

func (c *Config) RequestTimeoutDuration() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

func (c *Config) LabelResetDelay() time.Duration {
	return time.Duration(c.LabelResetMS) * time.Millisecond
}

func (c *Config) BarDelay() time.Duration {
	return time.Duration(c.BarDelayMS) * time.Millisecond
}

// TelegramEnabled reports whether both bot token and chat are configured.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64WithDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvListWithDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
