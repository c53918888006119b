package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	UFCStats UFCStatsConfig `yaml:"ufcstats"`
	Report   ReportConfig   `yaml:"report"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type UFCStatsConfig struct {
	BaseURL   string   `yaml:"base_url"`
	UserAgent string   `yaml:"user_agent"`
	Timeout   Duration `yaml:"timeout"`
	// UseBrowser switches page fetching from plain HTTP to a headless Chrome
	// session, for when ufcstats.com sits behind a JS challenge.
	UseBrowser bool `yaml:"use_browser"`
}

// Duration accepts "30s"-style values; yaml.v3 has no built-in handling for
// time.Duration.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}
	*d = Duration(n)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type ReportConfig struct {
	// ChartPath is where the likelihood bar chart PNG is written.
	// Empty disables chart rendering.
	ChartPath string `yaml:"chart_path"`

	// Telegram notification settings (optional). Token and chat ID can also be
	// set via TELEGRAM_BOT_TOKEN / TELEGRAM_CHAT_ID environment variables.
	TelegramBotToken string `yaml:"telegram_bot_token"`
	TelegramChatID   int64  `yaml:"telegram_chat_id"`
}

type LoggingConfig struct {
	// Level is the minimum level logged (DEBUG, INFO, WARN, ERROR). Default INFO.
	Level string `yaml:"level"`
}

func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}
