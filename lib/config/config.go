// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the variable that points at the config file
// when no --config flag is given.
const EnvironmentVariable = "GHREACT_CONFIG"

// DefaultTokenEnv is the environment variable read for the API token
// when the config does not name another.
const DefaultTokenEnv = "GITHUB_TOKEN"

// Config is the ghreact configuration. Field names are shared between
// the YAML and JSON encodings.
type Config struct {
	// BaseURL is the GitHub API root. Empty means the public API.
	BaseURL string `yaml:"base_url" json:"base_url"`

	// TokenEnv is the name of the environment variable holding the
	// API token. The token itself never lives in the config file.
	TokenEnv string `yaml:"token_env" json:"token_env"`

	// Timeout is the default per-request deadline as a Go duration
	// string ("30s", "1m"). Empty or "0" disables it.
	Timeout string `yaml:"timeout" json:"timeout"`

	// UserAgent overrides the User-Agent request header.
	UserAgent string `yaml:"user_agent" json:"user_agent"`

	// PerPage is the page size used by list when --per-page is not
	// given. Zero leaves the server default (30).
	PerPage int `yaml:"per_page" json:"per_page"`
}

// Default returns the configuration used when no file is named.
func Default() *Config {
	return &Config{
		TokenEnv: DefaultTokenEnv,
		Timeout:  "30s",
	}
}

// Resolve returns the config file path to load: flagPath if set,
// otherwise the GHREACT_CONFIG environment variable. An empty result
// means no file was requested.
func Resolve(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvironmentVariable)
}

// Load reads the file at path over the defaults and validates the
// result. An empty path returns Default(). Files ending in .json or
// .jsonc are parsed as JSON with comments and trailing commas allowed;
// everything else is parsed as YAML.
func Load(path string) (*Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		err = json.Unmarshal(jsonc.ToJSON(data), config)
	default:
		err = yaml.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if config.TokenEnv == "" {
		config.TokenEnv = DefaultTokenEnv
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.BaseURL != "" && !strings.HasPrefix(c.BaseURL, "https://") {
		errs = append(errs, fmt.Errorf("base_url must use https, got %q", c.BaseURL))
	}
	if _, err := c.TimeoutDuration(); err != nil {
		errs = append(errs, err)
	}
	if c.PerPage < 0 || c.PerPage > 100 {
		errs = append(errs, fmt.Errorf("per_page must be between 1 and 100, got %d", c.PerPage))
	}
	if strings.ContainsAny(c.TokenEnv, "= \t") {
		errs = append(errs, fmt.Errorf("token_env %q is not a valid variable name", c.TokenEnv))
	}

	return errors.Join(errs...)
}

// TimeoutDuration parses Timeout. An empty string is zero.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	duration, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("timeout: %w", err)
	}
	if duration < 0 {
		return 0, fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	return duration, nil
}

// Token returns the API token from the configured environment variable.
func (c *Config) Token() (string, error) {
	name := c.TokenEnv
	if name == "" {
		name = DefaultTokenEnv
	}
	token := strings.TrimSpace(os.Getenv(name))
	if token == "" {
		return "", fmt.Errorf("no API token: set %s", name)
	}
	return token, nil
}
