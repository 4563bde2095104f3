package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"intury/internal/document"
	"intury/internal/game"
	"intury/internal/logger"
)

type Config struct {
	// Document engine configuration
	Document DocumentConfig `envPrefix:"DOC_"`

	// Reaction game configuration
	Game GameConfig `envPrefix:"GAME_"`

	// Logging Configuration
	LogLevel      string `env:"LOG_LEVEL"       envDefault:"warn"`
	LogFormat     string `env:"LOG_FORMAT"      envDefault:"console"`
	LogTimeFormat string `env:"LOG_TIME_FORMAT" envDefault:"2006-01-02T15:04:05Z07:00"`
	LogOutput     string `env:"LOG_OUTPUT"      envDefault:"stderr"`
}

type DocumentConfig struct {
	DueDays        int    `env:"DUE_DAYS"        envDefault:"14"`
	AdvancePercent int    `env:"ADVANCE_PERCENT" envDefault:"50"`
	PaymentMethod  string `env:"PAYMENT_METHOD"  envDefault:"Bankovní převod"`
}

type GameConfig struct {
	Countdown     time.Duration `env:"COUNTDOWN"      envDefault:"10s"`
	TargetOffset  time.Duration `env:"TARGET_OFFSET"  envDefault:"100ms"`
	Tick          time.Duration `env:"TICK"           envDefault:"10ms"`
	ArmDelay      time.Duration `env:"ARM_DELAY"      envDefault:"1s"`
	Grace         time.Duration `env:"GRACE"          envDefault:"500ms"`
	OvertimeFloor time.Duration `env:"OVERTIME_FLOOR" envDefault:"2s"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.Document.DueDays < 0 {
		return fmt.Errorf("DOC_DUE_DAYS must not be negative, got %d", c.Document.DueDays)
	}
	if c.Document.AdvancePercent < 1 || c.Document.AdvancePercent > 100 {
		return fmt.Errorf("DOC_ADVANCE_PERCENT must be between 1 and 100, got %d", c.Document.AdvancePercent)
	}
	if strings.TrimSpace(c.Document.PaymentMethod) == "" {
		return fmt.Errorf("DOC_PAYMENT_METHOD is required")
	}
	if err := c.GetGameSettings().Validate(); err != nil {
		return fmt.Errorf("GAME_*: %w", err)
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

// GetDocumentOptions returns the document session options
func (c *Config) GetDocumentOptions() document.Options {
	opts := document.DefaultOptions()
	opts.DueDays = c.Document.DueDays
	opts.AdvancePercent = c.Document.AdvancePercent
	opts.PaymentMethod = c.Document.PaymentMethod
	return opts
}

// GetGameSettings returns the game rules, overriding the defaults with the
// configured timings
func (c *Config) GetGameSettings() game.Settings {
	s := game.DefaultSettings()
	s.Countdown = c.Game.Countdown
	s.TargetOffset = c.Game.TargetOffset
	s.TickInterval = c.Game.Tick
	s.ArmDelay = c.Game.ArmDelay
	s.BothPressedGrace = c.Game.Grace
	s.OvertimeFloor = c.Game.OvertimeFloor
	return s
}
