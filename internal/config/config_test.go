package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"API_URL", "TEAM_ID", "HISTORY_LIMIT", "LISTEN_ADDR", "LOG_LEVEL",
		"REQUEST_TIMEOUT", "REQUESTS_PER_SEC", "MAX_RETRIES", "LABEL_RESET_MS",
		"BAR_DELAY_MS", "DISPLAY_TZ", "REFRESH_SCHEDULE", "CORS_ORIGINS",
		"TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3001/api", cfg.APIURL)
	assert.Equal(t, 1, cfg.TeamID)
	assert.Equal(t, 10, cfg.HistoryLimit)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 0, cfg.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.LabelResetDelay())
	assert.Equal(t, 100*time.Millisecond, cfg.BarDelay())
	assert.Equal(t, 30*time.Second, cfg.RequestTimeoutDuration())
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.False(t, cfg.TelegramEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_URL", "https://outlook.example.com/api/")
	t.Setenv("TEAM_ID", "7")
	t.Setenv("HISTORY_LIMIT", "not-a-number")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("TELEGRAM_CHAT_ID", "-100123")
	t.Setenv("DISPLAY_TZ", "UTC")
	t.Setenv("REFRESH_SCHEDULE", "*/5 * * * *")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://outlook.example.com/api", cfg.APIURL)
	assert.Equal(t, 7, cfg.TeamID)
	assert.Equal(t, 10, cfg.HistoryLimit, "unparsable values fall back to the default")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.TelegramEnabled())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			APIURL:       "http://localhost:3001/api",
			TeamID:       1,
			HistoryLimit: 10,
			LogLevel:     "info",
			DisplayTZ:    "Local",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty api url", mutate: func(c *Config) { c.APIURL = "" }, wantErr: "API_URL"},
		{name: "zero team", mutate: func(c *Config) { c.TeamID = 0 }, wantErr: "TEAM_ID"},
		{name: "zero limit", mutate: func(c *Config) { c.HistoryLimit = 0 }, wantErr: "HISTORY_LIMIT"},
		{name: "negative retries", mutate: func(c *Config) { c.MaxRetries = -1 }, wantErr: "MAX_RETRIES"},
		{name: "negative delay", mutate: func(c *Config) { c.BarDelayMS = -5 }, wantErr: "delays"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "LOG_LEVEL"},
		{name: "bad tz", mutate: func(c *Config) { c.DisplayTZ = "Mars/Olympus" }, wantErr: "DISPLAY_TZ"},
		{name: "bad schedule", mutate: func(c *Config) { c.RefreshSchedule = "every tuesday" }, wantErr: "REFRESH_SCHEDULE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
