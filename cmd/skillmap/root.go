package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/skillmap/internal/adapter"
	"github.com/amishk599/skillmap/internal/analysis"
	"github.com/amishk599/skillmap/internal/config"
	"github.com/amishk599/skillmap/internal/course"
	"github.com/amishk599/skillmap/internal/metrics"
	"github.com/amishk599/skillmap/internal/model"
	"github.com/amishk599/skillmap/internal/notifier"
	"github.com/amishk599/skillmap/internal/skill"
	"github.com/amishk599/skillmap/internal/store"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "skillmap",
	Short: "Skill demand from live job postings",
	Long:  "SkillMap searches job postings for a role and location, ranks the skills they mention, and recommends courses.",
	// `skillmap` with no args serves the browser dashboard.
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: SKILLMAP_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > SKILLMAP_CONFIG env var > "./config.yaml"
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if env := os.Getenv("SKILLMAP_CONFIG"); env != "" {
			path = env
		} else {
			path = "config.yaml"
		}
	}
	return config.Load(path)
}

func setupLogger(w io.Writer, dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

func setupReporter(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) model.Reporter {
	switch cfg.Notification.Type {
	case "slack":
		logger.Info("using slack reporter")
		return notifier.NewSlackReporter(cfg.Notification.WebhookURL, httpClient, logger)
	default:
		return notifier.NewLogReporter(logger)
	}
}

// loadCatalog returns the vocabulary and course catalog in use: the SQLite
// file at path when set, the built-ins otherwise.
func loadCatalog(path string) (skill.Vocabulary, course.Catalog, error) {
	if path == "" {
		return store.BuiltinCatalog{}.Load()
	}

	c, err := store.NewSQLiteCatalog(path)
	if err != nil {
		return nil, nil, err
	}
	defer c.Close()

	empty, err := c.IsEmpty()
	if err != nil {
		return nil, nil, err
	}
	if empty {
		return nil, nil, fmt.Errorf("catalog %s is empty, run `skillmap catalog seed --db %s`", path, path)
	}
	return c.Load()
}

// buildRunner wires the fetcher, extractor, recommender and reporter for cfg.
// m may be nil.
func buildRunner(cfg *config.Config, reporter model.Reporter, m *metrics.Metrics, logger *slog.Logger) (*analysis.Runner, error) {
	vocab, catalog, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	logger.Debug("catalog loaded", "skills", len(vocab), "courses", len(catalog), "path", cfg.Catalog.Path)

	httpClient := &http.Client{Timeout: cfg.Adzuna.Timeout}
	fetcher := adapter.NewAdzunaAdapter(
		cfg.Adzuna.BaseURL,
		cfg.Adzuna.Country,
		cfg.Adzuna.ResultsPerPage,
		adapter.AdzunaCredentials{AppID: cfg.Adzuna.AppID, AppKey: cfg.Adzuna.AppKey},
		httpClient,
	)

	return analysis.NewRunner(
		fetcher,
		skill.NewExtractor(vocab),
		course.NewRecommender(catalog),
		reporter,
		m,
		cfg.Analysis.TopN,
		cfg.Adzuna.Timeout,
		logger,
	), nil
}
