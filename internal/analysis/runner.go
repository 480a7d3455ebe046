package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amishk599/skillmap/internal/course"
	"github.com/amishk599/skillmap/internal/metrics"
	"github.com/amishk599/skillmap/internal/model"
	"github.com/amishk599/skillmap/internal/skill"
)

// Runner owns one analysis run:
// fetch → extract → recommend → report.
type Runner struct {
	fetcher     model.JobFetcher
	extractor   *skill.Extractor
	recommender *course.Recommender
	reporter    model.Reporter
	metrics     *metrics.Metrics // nil disables metrics
	topN        int
	timeout     time.Duration
	logger      *slog.Logger
}

// NewRunner creates a runner wired with all its dependencies. timeout bounds
// the single jobs API call; zero means no extra deadline.
func NewRunner(
	fetcher model.JobFetcher,
	extractor *skill.Extractor,
	recommender *course.Recommender,
	reporter model.Reporter,
	m *metrics.Metrics,
	topN int,
	timeout time.Duration,
	logger *slog.Logger,
) *Runner {
	return &Runner{
		fetcher:     fetcher,
		extractor:   extractor,
		recommender: recommender,
		reporter:    reporter,
		metrics:     m,
		topN:        topN,
		timeout:     timeout,
		logger:      logger,
	}
}

// Run performs one analysis for q. It returns model.ErrNoJobs when the search
// is empty and the fetcher's error as-is (possibly wrapping
// model.ErrUnauthorized) when the search fails. No partial result is returned
// with an error.
func (r *Runner) Run(ctx context.Context, q model.Query) (*model.AnalysisResult, error) {
	q = model.Query{Role: strings.TrimSpace(q.Role), Location: strings.TrimSpace(q.Location)}
	runID := uuid.NewString()
	logger := r.logger.With("run_id", runID, "role", q.Role, "location", q.Location)

	fetchCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	jobs, err := r.fetcher.FetchJobs(fetchCtx, q)
	if r.metrics != nil {
		r.metrics.ObserveFetch(time.Since(start), len(jobs), err == nil)
	}
	if err != nil {
		r.observe(err)
		// Returned as-is: the query is already on the log line.
		logger.Error("fetch failed", "outcome", Classify(err), "error", err)
		return nil, err
	}

	if len(jobs) == 0 {
		r.observe(model.ErrNoJobs)
		logger.Warn("no jobs found")
		return nil, model.ErrNoJobs
	}

	descriptions := make([]string, len(jobs))
	for i, j := range jobs {
		descriptions[i] = j.Description
	}
	skills := r.extractor.Extract(descriptions, r.topN)

	result := &model.AnalysisResult{
		RunID:           runID,
		Query:           q,
		Jobs:            jobs,
		Skills:          skills,
		Recommendations: r.recommender.Recommend(skills),
	}

	if r.reporter != nil {
		if err := r.reporter.Report(result); err != nil {
			logger.Error("report failed", "error", err)
		}
	}

	r.observe(nil)
	if r.metrics != nil {
		counts := make(map[string]int, len(skills))
		for _, sf := range skills {
			counts[sf.Skill] = sf.Count
		}
		r.metrics.SetSkillFrequencies(counts)
	}

	logger.Info("analysed jobs",
		"fetched", len(jobs),
		"skills", len(skills),
		"recommended", len(result.Recommendations),
	)

	return result, nil
}

func (r *Runner) observe(err error) {
	if r.metrics != nil {
		r.metrics.ObserveRun(string(Classify(err)))
	}
}

// Outcome labels how a run ended.
type Outcome string

const (
	OutcomeOK           Outcome = "ok"
	OutcomeUnauthorized Outcome = "unauthorized"
	OutcomeFetchError   Outcome = "fetch_error"
	OutcomeNoJobs       Outcome = "no_jobs"
)

// Classify maps a Run error onto its Outcome.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, model.ErrUnauthorized):
		return OutcomeUnauthorized
	case errors.Is(err, model.ErrNoJobs):
		return OutcomeNoJobs
	default:
		return OutcomeFetchError
	}
}

// Message is the user-facing text for a failed run.
func Message(err error) string {
	switch Classify(err) {
	case OutcomeUnauthorized:
		return "Access denied: please check your API credentials (App ID and App Key)."
	case OutcomeNoJobs:
		return "No job data found. Please try a different role or location."
	case OutcomeFetchError:
		var httpErr *model.HTTPError
		if errors.As(err, &httpErr) {
			return fmt.Sprintf("Error fetching jobs: %d - %s", httpErr.StatusCode, httpErr.Reason)
		}
		return fmt.Sprintf("Error fetching jobs: %v", rootCause(err))
	default:
		return ""
	}
}

// rootCause strips wrapping added on the way up ("adzuna search ...",
// "get request: ...") and returns the innermost error.
func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
