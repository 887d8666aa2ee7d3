// Package config loads the session configuration: a yaml document with
// environment variable overrides. The core reads it once at start and
// never writes it back.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/nova-strike/parameter"
)

// Config carries the difficulty-affecting and environment parameters for
// one session
type Config struct {
	// TickRateHz is the fixed simulation rate
	TickRateHz int `yaml:"tick_rate_hz" env:"NOVA_TICK_RATE_HZ"`

	// InitialLives the player starts with
	InitialLives int `yaml:"initial_lives" env:"NOVA_INITIAL_LIVES"`

	// DifficultyMultiplier scales enemy and boss durability
	DifficultyMultiplier float64 `yaml:"difficulty_multiplier" env:"NOVA_DIFFICULTY"`

	// PauseCooldownMs rejects pause toggles closer together than this
	PauseCooldownMs int `yaml:"pause_cooldown_ms" env:"NOVA_PAUSE_COOLDOWN_MS"`

	// AudioEnabled toggles the beep cue service
	AudioEnabled bool `yaml:"audio_enabled" env:"NOVA_AUDIO"`

	// LogPath receives zap output; empty disables logging
	LogPath string `yaml:"log_path" env:"NOVA_LOG_PATH"`

	// Debug lowers the log level to debug
	Debug bool `yaml:"debug" env:"NOVA_DEBUG"`

	// Seed fixes the RNG for reproducible sessions; zero seeds from time
	Seed int64 `yaml:"seed" env:"NOVA_SEED"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		TickRateHz:           parameter.DefaultTickRateHz,
		InitialLives:         parameter.PlayerInitialLives,
		DifficultyMultiplier: 1.0,
		PauseCooldownMs:      int(parameter.PauseToggleCooldown / time.Millisecond),
		AudioEnabled:         true,
	}
}

// Load reads path (when it exists), applies env overrides and validates.
// A missing file is not an error; env overrides still apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("env overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with
func (c Config) Validate() error {
	if c.TickRateHz < 1 || c.TickRateHz > 240 {
		return fmt.Errorf("tick_rate_hz %d outside [1,240]", c.TickRateHz)
	}
	if c.InitialLives < 1 {
		return fmt.Errorf("initial_lives %d below 1", c.InitialLives)
	}
	if c.DifficultyMultiplier < 0 {
		return fmt.Errorf("difficulty_multiplier %g negative", c.DifficultyMultiplier)
	}
	if c.PauseCooldownMs < 0 {
		return fmt.Errorf("pause_cooldown_ms %d negative", c.PauseCooldownMs)
	}
	return nil
}

// TickInterval returns the fixed step duration
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRateHz)
}

// PauseCooldown returns the toggle cooldown window
func (c Config) PauseCooldown() time.Duration {
	return time.Duration(c.PauseCooldownMs) * time.Millisecond
}
