package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// envOverrides lists the settings that can be set from the environment.
// Unset variables leave the loaded value untouched.
type envOverrides struct {
	Addr           string  `env:"CARDGALLERY_ADDR"`
	Workbook       string  `env:"CARDGALLERY_WORKBOOK"`
	TemplatesDir   string  `env:"CARDGALLERY_TEMPLATES_DIR"`
	BaseURL        string  `env:"CARDGALLERY_BASE_URL"`
	RateLimitRPS   float64 `env:"CARDGALLERY_RATE_LIMIT_RPS"`
	RateLimitBurst int     `env:"CARDGALLERY_RATE_LIMIT_BURST"`
	LogLevel       string  `env:"CARDGALLERY_LOG_LEVEL"`
}

func (c *Config) applyEnvOverrides() error {
	var env envOverrides
	if err := envdecode.Decode(&env); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return nil
		}
		return fmt.Errorf("failed to read environment: %w", err)
	}

	if env.Addr != "" {
		c.Addr = env.Addr
	}
	if env.Workbook != "" {
		c.Workbook = env.Workbook
	}
	if env.TemplatesDir != "" {
		c.TemplatesDir = env.TemplatesDir
	}
	if env.BaseURL != "" {
		c.BaseURL = env.BaseURL
	}
	if env.RateLimitRPS != 0 {
		c.RateLimit.RPS = env.RateLimitRPS
	}
	if env.RateLimitBurst != 0 {
		c.RateLimit.Burst = env.RateLimitBurst
	}
	if env.LogLevel != "" {
		c.Logging.Level = env.LogLevel
	}
	return nil
}

// LoadDotEnv loads KEY=value pairs from the given files into the process
// environment without overriding variables that are already set. Missing
// files are skipped when optional is true.
func LoadDotEnv(optional bool, files ...string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if optional && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}
