// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/arpeggio-project/arpeggio/lib/spotify"
)

// Config holds user-level settings loaded from the config file. Every field
// is optional; environment variables override file values.
type Config struct {
	// ClientID is the Spotify application client ID.
	ClientID string `yaml:"client_id"`

	// ClientSecret is the Spotify application client secret.
	ClientSecret string `yaml:"client_secret"`

	// RedirectURI is the OAuth redirect URI registered with the
	// application. Defaults to a localhost loopback address.
	RedirectURI string `yaml:"redirect_uri"`

	// Market is the default market (ISO 3166-1 alpha-2 country code)
	// applied to commands that accept one.
	Market string `yaml:"market"`

	// CacheFile overrides the token cache location.
	CacheFile string `yaml:"cache_file"`
}

// DefaultRedirectURI is used when neither the config file nor the
// environment provides one. The port is arbitrary but must match the
// redirect URI registered in the Spotify developer dashboard.
const DefaultRedirectURI = "http://127.0.0.1:8888/callback"

// ConfigFilePath returns the config file location. Checks the
// ARPEGGIO_CONFIG environment variable, then XDG_CONFIG_HOME, then
// ~/.config/arpeggio/config.yaml.
func ConfigFilePath() string {
	if path := os.Getenv("ARPEGGIO_CONFIG"); path != "" {
		return path
	}
	if configDir := os.Getenv("XDG_CONFIG_HOME"); configDir != "" {
		return filepath.Join(configDir, "arpeggio", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("/tmp", "arpeggio", "config.yaml")
	}
	return filepath.Join(home, ".config", "arpeggio", "config.yaml")
}

// LoadConfig reads the config file at ConfigFilePath and applies environment
// overrides. A missing file is not an error: everything can come from the
// environment.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(ConfigFilePath())
}

// LoadConfigFrom reads and parses the config file at path, expands ${VAR}
// references in its values, and applies environment overrides.
func LoadConfigFrom(path string) (*Config, error) {
	config := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No config file; environment-only operation.
	case err != nil:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	config.ClientID = expandVars(config.ClientID)
	config.ClientSecret = expandVars(config.ClientSecret)
	config.RedirectURI = expandVars(config.RedirectURI)
	config.CacheFile = expandVars(config.CacheFile)

	if id := os.Getenv("SPOTIFY_CLIENT_ID"); id != "" {
		config.ClientID = id
	}
	if secret := os.Getenv("SPOTIFY_CLIENT_SECRET"); secret != "" {
		config.ClientSecret = secret
	}
	if uri := os.Getenv("SPOTIFY_REDIRECT_URI"); uri != "" {
		config.RedirectURI = uri
	}
	if cacheFile := os.Getenv("ARPEGGIO_CACHE_FILE"); cacheFile != "" {
		config.CacheFile = cacheFile
	}

	if config.RedirectURI == "" {
		config.RedirectURI = DefaultRedirectURI
	}
	return config, nil
}

// Credentials validates and returns the application credentials.
func (c *Config) Credentials() (spotify.Credentials, error) {
	var errs []error
	if c.ClientID == "" {
		errs = append(errs, errors.New("client_id is not set (config file or SPOTIFY_CLIENT_ID)"))
	}
	if c.ClientSecret == "" {
		errs = append(errs, errors.New("client_secret is not set (config file or SPOTIFY_CLIENT_SECRET)"))
	}
	if len(errs) > 0 {
		return spotify.Credentials{}, errors.Join(errs...)
	}
	return spotify.Credentials{ID: c.ClientID, Secret: c.ClientSecret}, nil
}

// TokenCachePath returns the token cache location, honoring the config
// override before falling back to the library default.
func (c *Config) TokenCachePath() string {
	if c.CacheFile != "" {
		return c.CacheFile
	}
	return spotify.DefaultTokenCachePath()
}

// ResolveMarket picks the market for a command: the --market flag value
// when given, otherwise the configured default. Empty means no market
// filtering.
func ResolveMarket(flagValue string, config *Config) (spotify.Market, error) {
	value := flagValue
	if value == "" {
		value = config.Market
	}
	if value == "" {
		return "", nil
	}
	return spotify.ParseMarket(value)
}

// varPattern matches ${VAR} and ${VAR:-default} references.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars replaces ${VAR} references with environment values. The
// ${VAR:-default} form substitutes default when VAR is unset or empty.
func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		groups := varPattern.FindStringSubmatch(match)
		name, fallback := groups[1], groups[2]
		if value := os.Getenv(name); value != "" {
			return value
		}
		return fallback
	})
}
