// Copyright 2025 go-bitintr Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix is the prefix of every environment variable read by the command.
const envPrefix = "BITINTR"

// Config holds the command settings. Every field can be set from the
// environment (BITINTR_LOG_LEVEL and so on) and overridden by a flag.
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`

	// Verification settings.
	Workers     int           `envconfig:"WORKERS" default:"0"` // 0 means GOMAXPROCS
	Samples     int           `envconfig:"SAMPLES" default:"10000"`
	Partners    int           `envconfig:"PARTNERS" default:"16"`
	Seed        uint64        `envconfig:"SEED" default:"1"`
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"0"` // 0 means no limit
	MetricsFile string        `envconfig:"METRICS_FILE"`
}

// Config validation errors
var (
	ErrInvalidLogFormat = errors.New("log_format must be 'json' or 'console'")
	ErrInvalidLogLevel  = errors.New("log_level must be debug, info, warn, or error")
	ErrInvalidWorkers   = errors.New("workers must not be negative")
	ErrInvalidSamples   = errors.New("samples must be positive")
	ErrInvalidPartners  = errors.New("partners must be positive")
	ErrInvalidTimeout   = errors.New("timeout must not be negative")
)

// LoadConfig reads the configuration from the environment. If envFile is not
// empty its variables are loaded first; variables already set in the
// environment take precedence over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}
	return cfg, nil
}

// ValidateConfig validates the configuration and returns an error if invalid
func ValidateConfig(cfg *Config) error {
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return ErrInvalidLogFormat
	}
	if cfg.LogLevel != "debug" && cfg.LogLevel != "info" && cfg.LogLevel != "warn" && cfg.LogLevel != "error" {
		return ErrInvalidLogLevel
	}
	if cfg.Workers < 0 {
		return ErrInvalidWorkers
	}
	if cfg.Samples <= 0 {
		return ErrInvalidSamples
	}
	if cfg.Partners <= 0 {
		return ErrInvalidPartners
	}
	if cfg.Timeout < 0 {
		return ErrInvalidTimeout
	}
	return nil
}
