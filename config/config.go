/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/suparena/kindstore/errors"
)

// Backend names understood by kindstore.Open.
const (
	BackendDynamoDB = "dynamodb"
	BackendMemory   = "memory"
)

// Config holds configuration for a kindstore process.
type Config struct {
	// Backend selects the datastore client.
	// Default: "dynamodb"
	Backend string `yaml:"backend" env:"KINDSTORE_BACKEND"`

	// DefaultLimit is the page size used when List is called without one.
	// Default: 10
	DefaultLimit int `yaml:"defaultLimit" env:"KINDSTORE_DEFAULT_LIMIT"`

	// LogLevel is one of debug, info, warn, error.
	// Default: "info"
	LogLevel string `yaml:"logLevel" env:"KINDSTORE_LOG_LEVEL"`

	DynamoDB DynamoDBConfig `yaml:"dynamodb"`
}

// DynamoDBConfig configures the dynamodb backend. Environment names match
// the ones the integration tests read.
type DynamoDBConfig struct {
	Region        string `yaml:"region" env:"AWS_REGION"`
	AccessKey     string `yaml:"accessKey" env:"AWS_ACCESS_KEY"`
	SecretKey     string `yaml:"secretKey" env:"AWS_SECRET_KEY"`
	Table         string `yaml:"table" env:"AWS_DDB_TABLE"`
	Endpoint      string `yaml:"endpoint" env:"AWS_DDB_ENDPOINT"`
	AllocatorKind string `yaml:"allocatorKind" env:"KINDSTORE_ALLOCATOR_KIND"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Backend:      BackendDynamoDB,
		DefaultLimit: 10,
		LogLevel:     "info",
		DynamoDB: DynamoDBConfig{
			AllocatorKind: "_ids",
		},
	}
}

// Load builds a Config from defaults, then the YAML file at path (skipped
// when path is empty), then a .env file in the working directory if one
// exists, then the process environment. Later sources win.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendDynamoDB:
		if c.DynamoDB.Table == "" {
			return errors.NewValidationError("dynamodb.table", "required for the dynamodb backend")
		}
	case BackendMemory:
	default:
		return errors.NewValidationError("backend", fmt.Sprintf("unknown backend %q", c.Backend))
	}
	if c.DefaultLimit < 0 {
		return errors.NewValidationError("defaultLimit", "must not be negative")
	}
	if _, err := c.SlogLevel(); err != nil {
		return errors.NewValidationError("logLevel", err.Error())
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}
