package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for SkillMap.
type Config struct {
	Adzuna       AdzunaConfig
	Analysis     AnalysisConfig
	Server       ServerConfig
	Catalog      CatalogConfig
	Notification NotificationConfig
	Metrics      MetricsConfig
}

// AdzunaConfig holds the jobs API endpoint and static credentials.
type AdzunaConfig struct {
	AppID          string        // expanded from env var by Load
	AppKey         string        // expanded from env var by Load
	BaseURL        string        // defaults to https://api.adzuna.com
	Country        string        // country endpoint, defaults to "gb"
	ResultsPerPage int           // one page only, defaults to 20
	Timeout        time.Duration // per-search timeout
}

// AnalysisConfig controls the extractor and the dashboard form defaults.
type AnalysisConfig struct {
	TopN            int
	DefaultRole     string
	DefaultLocation string
}

// ServerConfig controls the browser dashboard.
type ServerConfig struct {
	Addr             string
	AnalyzePerMinute int // per-IP cap on analyze requests, 0 disables
}

// CatalogConfig points at an optional SQLite file holding the skill
// vocabulary and course catalog. Empty means use the built-ins.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// NotificationConfig controls where finished analyses are reported.
type NotificationConfig struct {
	Type       string `yaml:"type"`        // "log" or "slack"
	WebhookURL string `yaml:"webhook_url"` // required if type is "slack"
}

// MetricsConfig toggles the Prometheus /metrics endpoint.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

const (
	defaultBaseURL          = "https://api.adzuna.com"
	defaultCountry          = "gb"
	defaultResultsPerPage   = 20
	defaultTopN             = 10
	defaultRole             = "Data Analyst"
	defaultLocation         = "London"
	defaultAddr             = ":8501"
	defaultAnalyzePerMinute = 30
)

// rawConfig is used for YAML unmarshaling (snake_case fields and durations as strings).
type rawConfig struct {
	Adzuna       rawAdzunaConfig    `yaml:"adzuna"`
	Analysis     rawAnalysisConfig  `yaml:"analysis"`
	Server       rawServerConfig    `yaml:"server"`
	Catalog      CatalogConfig      `yaml:"catalog"`
	Notification NotificationConfig `yaml:"notification"`
	Metrics      *MetricsConfig     `yaml:"metrics"`
}

type rawAdzunaConfig struct {
	AppID          string `yaml:"app_id"`
	AppKey         string `yaml:"app_key"`
	BaseURL        string `yaml:"base_url"`
	Country        string `yaml:"country"`
	ResultsPerPage int    `yaml:"results_per_page"`
	Timeout        string `yaml:"timeout"`
}

type rawAnalysisConfig struct {
	TopN            int    `yaml:"top_n"`
	DefaultRole     string `yaml:"default_role"`
	DefaultLocation string `yaml:"default_location"`
}

type rawServerConfig struct {
	Addr             string `yaml:"addr"`
	AnalyzePerMinute *int   `yaml:"analyze_per_minute"`
}

// Load reads and parses the YAML config file at path, validates it, and returns Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse builds a Config from YAML bytes. ${VAR} references are expanded first.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	timeout := 30 * time.Second // default
	if raw.Adzuna.Timeout != "" {
		var err error
		timeout, err = time.ParseDuration(raw.Adzuna.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse adzuna.timeout %q: %w", raw.Adzuna.Timeout, err)
		}
	}

	cfg := &Config{
		Adzuna: AdzunaConfig{
			AppID:          strings.TrimSpace(raw.Adzuna.AppID),
			AppKey:         strings.TrimSpace(raw.Adzuna.AppKey),
			BaseURL:        orDefault(raw.Adzuna.BaseURL, defaultBaseURL),
			Country:        strings.ToLower(orDefault(raw.Adzuna.Country, defaultCountry)),
			ResultsPerPage: raw.Adzuna.ResultsPerPage,
			Timeout:        timeout,
		},
		Analysis: AnalysisConfig{
			TopN:            raw.Analysis.TopN,
			DefaultRole:     orDefault(raw.Analysis.DefaultRole, defaultRole),
			DefaultLocation: orDefault(raw.Analysis.DefaultLocation, defaultLocation),
		},
		Server: ServerConfig{
			Addr:             orDefault(raw.Server.Addr, defaultAddr),
			AnalyzePerMinute: defaultAnalyzePerMinute,
		},
		Catalog:      raw.Catalog,
		Notification: raw.Notification,
		Metrics:      MetricsConfig{Enabled: true},
	}

	if cfg.Adzuna.ResultsPerPage == 0 {
		cfg.Adzuna.ResultsPerPage = defaultResultsPerPage
	}
	if cfg.Analysis.TopN == 0 {
		cfg.Analysis.TopN = defaultTopN
	}
	if raw.Server.AnalyzePerMinute != nil {
		cfg.Server.AnalyzePerMinute = *raw.Server.AnalyzePerMinute
	}
	if raw.Metrics != nil {
		cfg.Metrics = *raw.Metrics
	}
	if cfg.Notification.Type == "" {
		cfg.Notification.Type = "log"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func validate(cfg *Config) error {
	if cfg.Adzuna.AppID == "" {
		return fmt.Errorf("adzuna.app_id is required")
	}
	if cfg.Adzuna.AppKey == "" {
		return fmt.Errorf("adzuna.app_key is required")
	}
	if cfg.Adzuna.Timeout <= 0 {
		return fmt.Errorf("adzuna.timeout must be positive, got %v", cfg.Adzuna.Timeout)
	}
	if cfg.Adzuna.ResultsPerPage < 1 || cfg.Adzuna.ResultsPerPage > 50 {
		return fmt.Errorf("adzuna.results_per_page must be between 1 and 50, got %d", cfg.Adzuna.ResultsPerPage)
	}
	if cfg.Analysis.TopN < 1 {
		return fmt.Errorf("analysis.top_n must be positive, got %d", cfg.Analysis.TopN)
	}
	if cfg.Server.AnalyzePerMinute < 0 {
		return fmt.Errorf("server.analyze_per_minute must not be negative, got %d", cfg.Server.AnalyzePerMinute)
	}

	switch cfg.Notification.Type {
	case "log":
	case "slack":
		if cfg.Notification.WebhookURL == "" {
			return fmt.Errorf("notification.webhook_url is required when type is \"slack\"")
		}
		if !strings.HasPrefix(cfg.Notification.WebhookURL, "https://hooks.slack.com/") {
			return fmt.Errorf("notification.webhook_url must start with https://hooks.slack.com/")
		}
	default:
		return fmt.Errorf("notification.type must be \"log\" or \"slack\", got %q", cfg.Notification.Type)
	}

	return nil
}
