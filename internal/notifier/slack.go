package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/amishk599/skillmap/internal/model"
	"github.com/amishk599/skillmap/internal/skill"
)

// Ensure SlackReporter implements model.Reporter.
var _ model.Reporter = (*SlackReporter)(nil)

// SlackReporter posts an analysis summary to a Slack channel via Incoming Webhooks.
type SlackReporter struct {
	webhookURL string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewSlackReporter returns a reporter that posts one message per analysis.
func NewSlackReporter(webhookURL string, httpClient *http.Client, logger *slog.Logger) *SlackReporter {
	return &SlackReporter{
		webhookURL: webhookURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Report sends a single Block Kit message. Slack failures are returned, never retried.
func (s *SlackReporter) Report(result *model.AnalysisResult) error {
	body, err := json.Marshal(buildPayload(result))
	if err != nil {
		return fmt.Errorf("marshal slack payload: %w", err)
	}

	resp, err := s.httpClient.Post(s.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post to slack: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack returned %d", resp.StatusCode)
	}
	s.logger.Info("slack report sent", "run_id", result.RunID, "skills", len(result.Skills))
	return nil
}

// Block Kit payload types.

type slackPayload struct {
	Blocks []slackBlock `json:"blocks"`
}

type slackBlock struct {
	Type   string      `json:"type"`
	Text   *slackText  `json:"text,omitempty"`
	Fields []slackText `json:"fields,omitempty"`
}

type slackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// SendTestReport sends a canned analysis to verify the integration works.
func SendTestReport(r model.Reporter) error {
	result := &model.AnalysisResult{
		RunID: "test-001",
		Query: model.Query{Role: "SkillMap Test", Location: "Everywhere"},
		Jobs:  []model.JobPosting{{Title: "Test Notification", CompanyName: model.DefaultCompanyName}},
		Skills: []model.SkillFrequency{
			{Skill: "python", Count: 1},
		},
		Recommendations: model.Recommendations{
			{Skill: "python", Courses: []model.CourseLink{{Title: "Python for Everybody", URL: "https://www.coursera.org/specializations/python"}}},
		},
	}
	return r.Report(result)
}

func buildPayload(result *model.AnalysisResult) slackPayload {
	blocks := []slackBlock{
		{
			Type: "header",
			Text: &slackText{Type: "plain_text", Text: "📊 " + result.Query.Role + " in " + result.Query.Location},
		},
		{
			Type: "section",
			Fields: []slackText{
				{Type: "mrkdwn", Text: fmt.Sprintf("*Jobs analysed:*\n%d", len(result.Jobs))},
				{Type: "mrkdwn", Text: fmt.Sprintf("*Skills found:*\n%d", len(result.Skills))},
			},
		},
	}

	if len(result.Skills) > 0 {
		var sb strings.Builder
		for i, sf := range result.Skills {
			fmt.Fprintf(&sb, "%d. *%s* (%d)\n", i+1, skill.Capitalize(sf.Skill), sf.Count)
		}
		blocks = append(blocks, slackBlock{
			Type: "section",
			Text: &slackText{Type: "mrkdwn", Text: strings.TrimRight(sb.String(), "\n")},
		})
	}

	if len(result.Recommendations) > 0 {
		var sb strings.Builder
		sb.WriteString("*Recommended courses:*\n")
		for _, rec := range result.Recommendations {
			for _, c := range rec.Courses {
				fmt.Fprintf(&sb, "• <%s|%s>\n", c.URL, c.Title)
			}
		}
		blocks = append(blocks, slackBlock{
			Type: "section",
			Text: &slackText{Type: "mrkdwn", Text: strings.TrimRight(sb.String(), "\n")},
		})
	}

	blocks = append(blocks, slackBlock{Type: "divider"})
	return slackPayload{Blocks: blocks}
}
