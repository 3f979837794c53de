// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func clearSpotifyEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SPOTIFY_CLIENT_ID", "")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "")
	t.Setenv("SPOTIFY_REDIRECT_URI", "")
	t.Setenv("ARPEGGIO_CACHE_FILE", "")
}

func TestLoadConfigFrom(t *testing.T) {
	clearSpotifyEnv(t)
	path := writeConfigFile(t, `
client_id: abc123
client_secret: shhh
redirect_uri: http://127.0.0.1:9090/callback
market: SE
cache_file: /tmp/arpeggio-test/token.json
`)

	config, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom: %v", err)
	}

	if config.ClientID != "abc123" {
		t.Errorf("ClientID = %q, want %q", config.ClientID, "abc123")
	}
	if config.ClientSecret != "shhh" {
		t.Errorf("ClientSecret = %q, want %q", config.ClientSecret, "shhh")
	}
	if config.RedirectURI != "http://127.0.0.1:9090/callback" {
		t.Errorf("RedirectURI = %q, want config value", config.RedirectURI)
	}
	if config.Market != "SE" {
		t.Errorf("Market = %q, want %q", config.Market, "SE")
	}
	if config.TokenCachePath() != "/tmp/arpeggio-test/token.json" {
		t.Errorf("TokenCachePath = %q, want cache_file value", config.TokenCachePath())
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	clearSpotifyEnv(t)

	config, err := LoadConfigFrom(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("LoadConfigFrom: %v", err)
	}
	if config.ClientID != "" {
		t.Errorf("ClientID = %q, want empty", config.ClientID)
	}
	if config.RedirectURI != DefaultRedirectURI {
		t.Errorf("RedirectURI = %q, want default %q", config.RedirectURI, DefaultRedirectURI)
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	clearSpotifyEnv(t)
	path := writeConfigFile(t, "client_id: [unclosed")

	_, err := LoadConfigFrom(path)
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "parsing config file") {
		t.Errorf("error = %q, want parse error", err)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	clearSpotifyEnv(t)
	t.Setenv("SPOTIFY_CLIENT_ID", "env-id")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "env-secret")
	t.Setenv("SPOTIFY_REDIRECT_URI", "http://127.0.0.1:7777/cb")
	t.Setenv("ARPEGGIO_CACHE_FILE", "/tmp/env-cache.json")

	path := writeConfigFile(t, `
client_id: file-id
client_secret: file-secret
`)

	config, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom: %v", err)
	}

	if config.ClientID != "env-id" {
		t.Errorf("ClientID = %q, want env override", config.ClientID)
	}
	if config.ClientSecret != "env-secret" {
		t.Errorf("ClientSecret = %q, want env override", config.ClientSecret)
	}
	if config.RedirectURI != "http://127.0.0.1:7777/cb" {
		t.Errorf("RedirectURI = %q, want env override", config.RedirectURI)
	}
	if config.CacheFile != "/tmp/env-cache.json" {
		t.Errorf("CacheFile = %q, want env override", config.CacheFile)
	}
}

func TestLoadConfigExpandsVars(t *testing.T) {
	clearSpotifyEnv(t)
	t.Setenv("MY_SPOTIFY_ID", "expanded-id")
	path := writeConfigFile(t, `
client_id: ${MY_SPOTIFY_ID}
client_secret: ${MISSING_VAR:-fallback-secret}
`)

	config, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom: %v", err)
	}

	if config.ClientID != "expanded-id" {
		t.Errorf("ClientID = %q, want expanded env value", config.ClientID)
	}
	if config.ClientSecret != "fallback-secret" {
		t.Errorf("ClientSecret = %q, want fallback default", config.ClientSecret)
	}
}

func TestConfigFilePath(t *testing.T) {
	t.Setenv("ARPEGGIO_CONFIG", "/explicit/config.yaml")
	if got := ConfigFilePath(); got != "/explicit/config.yaml" {
		t.Errorf("ConfigFilePath = %q, want explicit override", got)
	}

	t.Setenv("ARPEGGIO_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	want := filepath.Join("/xdg", "arpeggio", "config.yaml")
	if got := ConfigFilePath(); got != want {
		t.Errorf("ConfigFilePath = %q, want %q", got, want)
	}
}

func TestCredentialsValidation(t *testing.T) {
	config := &Config{}

	_, err := config.Credentials()
	if err == nil {
		t.Fatal("expected error for empty credentials")
	}
	if !strings.Contains(err.Error(), "client_id") {
		t.Errorf("error = %q, want mention of client_id", err)
	}
	if !strings.Contains(err.Error(), "client_secret") {
		t.Errorf("error = %q, want mention of client_secret", err)
	}

	config.ClientID = "id"
	config.ClientSecret = "secret"
	creds, err := config.Credentials()
	if err != nil {
		t.Fatalf("Credentials: %v", err)
	}
	if creds.ID != "id" || creds.Secret != "secret" {
		t.Errorf("Credentials = %+v, want id/secret", creds)
	}
}

func TestExpandVars(t *testing.T) {
	t.Setenv("EXPAND_TEST_VAR", "value")

	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"${EXPAND_TEST_VAR}", "value"},
		{"prefix-${EXPAND_TEST_VAR}-suffix", "prefix-value-suffix"},
		{"${EXPAND_TEST_MISSING}", ""},
		{"${EXPAND_TEST_MISSING:-default}", "default"},
		{"${EXPAND_TEST_VAR:-ignored}", "value"},
	}
	for _, test := range tests {
		if got := expandVars(test.input); got != test.want {
			t.Errorf("expandVars(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}
