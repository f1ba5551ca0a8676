package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config is the root configuration for calog, stored in ~/.calog/config.json.
// The file supports single-line // comments for documentation purposes.
// Environment variables (optionally from a .env file in the working
// directory) override file values: CALOG_API_URL, CALOG_OAUTH_CLIENT_ID,
// CALOG_DEBUG.
type Config struct {
	API   APIConfig   `json:"api"`
	OAuth OAuthConfig `json:"oauth"`
	// Debug echoes log output to stderr in addition to the log file.
	Debug bool `json:"debug"`
}

// APIConfig holds settings for the remote tracker API.
type APIConfig struct {
	// BaseURL is the root of the tracker API, without a trailing slash.
	BaseURL string `json:"base_url"`
}

// OAuthConfig holds OAuth2 device code flow settings for sign-in.
type OAuthConfig struct {
	// ClientID is the OAuth2 client ID used for the device code flow.
	ClientID string `json:"client_id"`
	// DeviceAuthURL and TokenURL identify the provider's endpoints.
	DeviceAuthURL string `json:"device_auth_url"`
	TokenURL      string `json:"token_url"`
	// UserInfoURL is the OpenID userinfo endpoint used to resolve the
	// signed-in identity (email, name, avatar).
	UserInfoURL string `json:"user_info_url"`
}

const (
	// DefaultBaseURL matches the development server of the tracker backend.
	DefaultBaseURL = "http://127.0.0.1:5000"
	// Default OAuth endpoints are Google's; any OpenID provider that
	// supports the device code flow works.
	DefaultDeviceAuthURL = "https://oauth2.googleapis.com/device/code"
	DefaultTokenURL      = "https://oauth2.googleapis.com/token"
	DefaultUserInfoURL   = "https://openidconnect.googleapis.com/v1/userinfo"
)

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		API: APIConfig{BaseURL: DefaultBaseURL},
		OAuth: OAuthConfig{
			DeviceAuthURL: DefaultDeviceAuthURL,
			TokenURL:      DefaultTokenURL,
			UserInfoURL:   DefaultUserInfoURL,
		},
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// calog configuration – ~/.calog/config.json
//
// All settings are optional; the built-in defaults shown below work
// against a locally running tracker backend.
// Edit this file to customise calog behaviour.
{
  // ── Remote tracker API ───────────────────────────────────────────────────
  "api": {
    // Root URL of the tracker backend, without a trailing slash.
    // Override per-invocation with the CALOG_API_URL environment variable.
    "base_url": "http://127.0.0.1:5000"
  },

  // ── Sign-in (OAuth2 device code flow) ────────────────────────────────────
  "oauth": {
    // OAuth2 client ID. Required before "calog login" can run.
    // Override with CALOG_OAUTH_CLIENT_ID.
    "client_id": "",

    // Provider endpoints. The defaults are Google's; any OpenID provider
    // supporting the device code flow works.
    "device_auth_url": "https://oauth2.googleapis.com/device/code",
    "token_url": "https://oauth2.googleapis.com/token",
    "user_info_url": "https://openidconnect.googleapis.com/v1/userinfo"
  },

  // Echo log output to stderr (CALOG_DEBUG=1).
  "debug": false
}
`

// BaseDir returns the root data directory (~/.calog).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".calog"), nil
}

// configFilePath returns the path to ~/.calog/config.json.
func configFilePath() (string, error) {
	base, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.calog/config.json, creating it with annotated defaults on
// first run, then applies environment overrides. Lines starting with // are
// treated as comments and stripped before JSON parsing.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}

	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
	case err != nil:
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	default:
		cleaned := stripLineComments(data)
		if err := json.Unmarshal(cleaned, &cfg); err != nil {
			return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
		}
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultBaseURL
	}
	if cfg.OAuth.DeviceAuthURL == "" {
		cfg.OAuth.DeviceAuthURL = DefaultDeviceAuthURL
	}
	if cfg.OAuth.TokenURL == "" {
		cfg.OAuth.TokenURL = DefaultTokenURL
	}
	if cfg.OAuth.UserInfoURL == "" {
		cfg.OAuth.UserInfoURL = DefaultUserInfoURL
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv overlays environment variables onto cfg. A .env file in the
// working directory is loaded first if present; real environment variables
// win over .env entries.
func applyEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("CALOG_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("CALOG_OAUTH_CLIENT_ID"); v != "" {
		cfg.OAuth.ClientID = v
	}
	if v := os.Getenv("CALOG_DEBUG"); v == "1" || v == "true" {
		cfg.Debug = true
	}
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
