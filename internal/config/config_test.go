package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStripLineComments(t *testing.T) {
	in := "// leading comment\n{\n  // indented comment\n  \"debug\": true\n}\n"
	got := string(stripLineComments([]byte(in)))
	if strings.Contains(got, "//") {
		t.Errorf("comments survived stripping:\n%s", got)
	}
	if !strings.Contains(got, `"debug": true`) {
		t.Errorf("content lost during stripping:\n%s", got)
	}
}

func TestLoadFirstRunWritesTemplate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want default %q", cfg.API.BaseURL, DefaultBaseURL)
	}
	if cfg.OAuth.TokenURL != DefaultTokenURL {
		t.Errorf("TokenURL = %q, want default", cfg.OAuth.TokenURL)
	}

	path, err := configFilePath()
	if err != nil {
		t.Fatalf("configFilePath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("template was not written: %v", err)
	}
	if !strings.Contains(string(data), "// calog configuration") {
		t.Errorf("written template lacks annotation header")
	}

	// The annotated template must itself parse on the next run.
	if _, err := Load(); err != nil {
		t.Fatalf("reloading written template: %v", err)
	}
}

func TestLoadPartialFileBackfillsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".calog")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	body := "// custom server only\n{\"api\": {\"base_url\": \"https://tracker.example.com\"}}\n"
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://tracker.example.com" {
		t.Errorf("BaseURL = %q, want custom value", cfg.API.BaseURL)
	}
	if cfg.OAuth.DeviceAuthURL != DefaultDeviceAuthURL {
		t.Errorf("DeviceAuthURL = %q, want backfilled default", cfg.OAuth.DeviceAuthURL)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CALOG_API_URL", "https://env.example.com")
	t.Setenv("CALOG_OAUTH_CLIENT_ID", "env-client")
	t.Setenv("CALOG_DEBUG", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://env.example.com" {
		t.Errorf("BaseURL = %q, want env override", cfg.API.BaseURL)
	}
	if cfg.OAuth.ClientID != "env-client" {
		t.Errorf("ClientID = %q, want env override", cfg.OAuth.ClientID)
	}
	if !cfg.Debug {
		t.Errorf("Debug not set from CALOG_DEBUG=1")
	}
}

func TestLoadBrokenFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".calog")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{不是 JSON"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Errorf("Load accepted a broken config file")
	}
}
