package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/amishk599/skillmap/internal/analysis"
	"github.com/amishk599/skillmap/internal/dashboard"
	"github.com/amishk599/skillmap/internal/model"
)

var (
	analyzeRole     string
	analyzeLocation string
	analyzeTop      int
	analyzeWidth    int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run one analysis and print the report",
	Long:  "Searches one page of postings, prints the ranked skills, charts and course links, then exits.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "job role (default: analysis.default_role)")
	analyzeCmd.Flags().StringVar(&analyzeLocation, "location", "", "location (default: analysis.default_location)")
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", 0, "number of skills to rank (default: analysis.top_n)")
	analyzeCmd.Flags().IntVar(&analyzeWidth, "width", 80, "report width in columns")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	// The report goes to stdout, so logs go to stderr.
	logger := setupLogger(os.Stderr, debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if analyzeTop > 0 {
		cfg.Analysis.TopN = analyzeTop
	}

	q := model.Query{Role: cfg.Analysis.DefaultRole, Location: cfg.Analysis.DefaultLocation}
	if cmd.Flags().Changed("role") {
		q.Role = analyzeRole
	}
	if cmd.Flags().Changed("location") {
		q.Location = analyzeLocation
	}

	reporter := setupReporter(cfg, &http.Client{Timeout: 30 * time.Second}, logger)
	runner, err := buildRunner(cfg, reporter, nil, logger)
	if err != nil {
		logger.Error("failed to build runner", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := runner.Run(ctx, q)
	if err != nil {
		fmt.Fprintln(os.Stderr, dashboard.RenderError(err))
		if analysis.Classify(err) == analysis.OutcomeNoJobs {
			return nil
		}
		os.Exit(1)
	}

	fmt.Println(dashboard.RenderResult(result, analyzeWidth))
	return nil
}
