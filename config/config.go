package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/luca-patrignani/preflop-trainer/storage"
)

type Config struct {
	DataDir     string `env:"TRAINER_DATA_DIR" env-default:".poker-trainer" env-description:"directory holding the file and sqlite backends"`
	Storage     string `env:"TRAINER_STORAGE" env-default:"file" env-description:"storage backend: file, sqlite or memory"`
	QuotaBytes  int64  `env:"TRAINER_QUOTA_BYTES" env-default:"5242880" env-description:"storage quota in bytes, 0 disables it"`
	DrillLength int    `env:"TRAINER_DRILL_LENGTH" env-default:"10" env-description:"default number of drill questions"`
	Seed        uint64 `env:"TRAINER_SEED" env-default:"0" env-description:"drill random seed, 0 picks one at random"`
	LogLevel    string `env:"TRAINER_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
}

// Load reads envFile, when it exists, into the process environment and then
// fills a Config from the environment.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values cleanenv cannot.
func (c *Config) Validate() error {
	switch c.Storage {
	case storage.KindFile, storage.KindSQLite, storage.KindMemory:
	default:
		return fmt.Errorf("invalid TRAINER_STORAGE %q", c.Storage)
	}
	if c.DrillLength <= 0 {
		return fmt.Errorf("TRAINER_DRILL_LENGTH must be positive, got %d", c.DrillLength)
	}
	if c.QuotaBytes < 0 {
		return fmt.Errorf("TRAINER_QUOTA_BYTES must not be negative, got %d", c.QuotaBytes)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid TRAINER_LOG_LEVEL %q", c.LogLevel)
	}
	return l, nil
}

// Usage describes the environment variables understood by Load.
func Usage() (string, error) {
	return cleanenv.GetDescription(&Config{}, nil)
}
