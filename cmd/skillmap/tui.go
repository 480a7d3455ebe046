package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/amishk599/skillmap/internal/dashboard"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive terminal dashboard",
	Long:  "Enter a role and location, press enter, and browse the ranked skills and courses in the terminal.",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Log output would corrupt the alt screen.
	logger := setupLogger(io.Discard, debug)

	reporter := setupReporter(cfg, &http.Client{Timeout: 30 * time.Second}, logger)
	runner, err := buildRunner(cfg, reporter, nil, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	return dashboard.RunDashboard(runner, cfg.Analysis.DefaultRole, cfg.Analysis.DefaultLocation, cfg.Adzuna.Timeout)
}
