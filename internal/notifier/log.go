package notifier

import (
	"log/slog"

	"github.com/amishk599/skillmap/internal/model"
)

// Ensure LogReporter implements model.Reporter.
var _ model.Reporter = (*LogReporter)(nil)

// LogReporter writes a finished analysis to the given logger as structured messages.
type LogReporter struct {
	logger *slog.Logger
}

// NewLogReporter returns a reporter that logs each ranked skill via slog.
func NewLogReporter(logger *slog.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// Report logs one summary line and one line per ranked skill.
// Returns nil (stdout logging does not fail).
func (r *LogReporter) Report(result *model.AnalysisResult) error {
	r.logger.Info("analysis complete",
		"run_id", result.RunID,
		"role", result.Query.Role,
		"location", result.Query.Location,
		"jobs", len(result.Jobs),
		"skills", len(result.Skills),
	)
	for rank, sf := range result.Skills {
		args := []any{"run_id", result.RunID, "rank", rank + 1, "skill", sf.Skill, "count", sf.Count}
		if courses, ok := result.Recommendations.Lookup(sf.Skill); ok && len(courses) > 0 {
			args = append(args, "course", courses[0].Title)
		}
		r.logger.Debug("skill", args...)
	}
	return nil
}
