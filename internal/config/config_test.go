package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
adzuna:
  app_id: "abc123"
  app_key: "secret"
  country: GB
  results_per_page: 25
  timeout: 10s
analysis:
  top_n: 5
server:
  addr: ":9000"
  analyze_per_minute: 0
catalog:
  path: catalog.db
metrics:
  enabled: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Adzuna.AppID != "abc123" || cfg.Adzuna.AppKey != "secret" {
		t.Errorf("Adzuna credentials = %+v", cfg.Adzuna)
	}
	if cfg.Adzuna.Country != "gb" {
		t.Errorf("Country = %q, want gb", cfg.Adzuna.Country)
	}
	if cfg.Adzuna.ResultsPerPage != 25 {
		t.Errorf("ResultsPerPage = %d, want 25", cfg.Adzuna.ResultsPerPage)
	}
	if cfg.Adzuna.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Adzuna.Timeout)
	}
	if cfg.Analysis.TopN != 5 {
		t.Errorf("TopN = %d, want 5", cfg.Analysis.TopN)
	}
	if cfg.Server.Addr != ":9000" || cfg.Server.AnalyzePerMinute != 0 {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Catalog.Path != "catalog.db" {
		t.Errorf("Catalog.Path = %q", cfg.Catalog.Path)
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled = true, want false")
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
adzuna:
  app_id: "abc123"
  app_key: "secret"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Adzuna.BaseURL != "https://api.adzuna.com" {
		t.Errorf("BaseURL = %q", cfg.Adzuna.BaseURL)
	}
	if cfg.Adzuna.Country != "gb" {
		t.Errorf("Country = %q", cfg.Adzuna.Country)
	}
	if cfg.Adzuna.ResultsPerPage != 20 {
		t.Errorf("ResultsPerPage = %d", cfg.Adzuna.ResultsPerPage)
	}
	if cfg.Adzuna.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v", cfg.Adzuna.Timeout)
	}
	if cfg.Analysis.TopN != 10 {
		t.Errorf("TopN = %d", cfg.Analysis.TopN)
	}
	if cfg.Analysis.DefaultRole != "Data Analyst" || cfg.Analysis.DefaultLocation != "London" {
		t.Errorf("form defaults = %q / %q", cfg.Analysis.DefaultRole, cfg.Analysis.DefaultLocation)
	}
	if cfg.Server.Addr != ":8501" || cfg.Server.AnalyzePerMinute != 30 {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Notification.Type != "log" {
		t.Errorf("Notification.Type = %q", cfg.Notification.Type)
	}
	if !cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled = false, want true")
	}
}

func TestLoad_ExpandsEnvCredentials(t *testing.T) {
	t.Setenv("SKILLMAP_TEST_APP_ID", "from-env-id")
	t.Setenv("SKILLMAP_TEST_APP_KEY", "from-env-key")
	path := writeConfig(t, `
adzuna:
  app_id: ${SKILLMAP_TEST_APP_ID}
  app_key: ${SKILLMAP_TEST_APP_KEY}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Adzuna.AppID != "from-env-id" || cfg.Adzuna.AppKey != "from-env-key" {
		t.Errorf("Adzuna = %+v", cfg.Adzuna)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err == nil {
		t.Fatal("Load: expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "adzuna: [broken")
	if _, err := Load(path); err == nil {
		t.Fatal("Load: expected error for invalid YAML")
	}
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing app id",
			content: "adzuna:\n  app_key: k\n",
		},
		{
			name:    "missing app key",
			content: "adzuna:\n  app_id: i\n",
		},
		{
			name:    "bad timeout",
			content: "adzuna:\n  app_id: i\n  app_key: k\n  timeout: soon\n",
		},
		{
			name:    "page size above one page limit",
			content: "adzuna:\n  app_id: i\n  app_key: k\n  results_per_page: 500\n",
		},
		{
			name:    "negative top_n",
			content: "adzuna:\n  app_id: i\n  app_key: k\nanalysis:\n  top_n: -1\n",
		},
		{
			name:    "slack without webhook",
			content: "adzuna:\n  app_id: i\n  app_key: k\nnotification:\n  type: slack\n",
		},
		{
			name:    "slack webhook on wrong host",
			content: "adzuna:\n  app_id: i\n  app_key: k\nnotification:\n  type: slack\n  webhook_url: https://example.com/hook\n",
		},
		{
			name:    "unknown notifier",
			content: "adzuna:\n  app_id: i\n  app_key: k\nnotification:\n  type: email\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.content)); err == nil {
				t.Fatal("Parse: expected validation error")
			}
		})
	}
}

func TestExampleConfig_UsesKnownKeys(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "config.example.yaml"))
	if err != nil {
		t.Fatalf("read example: %v", err)
	}
	t.Setenv("ADZUNA_APP_ID", "id")
	t.Setenv("ADZUNA_APP_KEY", "key")
	expanded := os.ExpandEnv(string(data))

	dec := yaml.NewDecoder(strings.NewReader(expanded))
	dec.KnownFields(true)
	var raw rawConfig
	if err := dec.Decode(&raw); err != nil {
		t.Fatalf("example config has unknown keys: %v", err)
	}
	if raw.Server.AnalyzePerMinute == nil || *raw.Server.AnalyzePerMinute != 30 {
		t.Errorf("server.analyze_per_minute = %v", raw.Server.AnalyzePerMinute)
	}

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse example: %v", err)
	}
	if cfg.Server.AnalyzePerMinute != 30 {
		t.Errorf("AnalyzePerMinute = %d", cfg.Server.AnalyzePerMinute)
	}
}
