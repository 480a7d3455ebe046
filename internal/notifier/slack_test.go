package notifier

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/amishk599/skillmap/internal/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleResult() *model.AnalysisResult {
	return &model.AnalysisResult{
		RunID: "run-1",
		Query: model.Query{Role: "Data Analyst", Location: "London"},
		Jobs: []model.JobPosting{
			{Title: "Analyst", CompanyName: "Acme"},
			{Title: "Senior Analyst", CompanyName: model.DefaultCompanyName},
		},
		Skills: []model.SkillFrequency{
			{Skill: "sql", Count: 2},
			{Skill: "excel", Count: 1},
		},
		Recommendations: model.Recommendations{
			{Skill: "sql", Courses: []model.CourseLink{{Title: "SQL for Data Science", URL: "https://example.com/sql"}}},
		},
	}
}

func TestSlackReporter_PayloadFormat(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r := NewSlackReporter(srv.URL, srv.Client(), discardLogger())
	if err := r.Report(sampleResult()); err != nil {
		t.Fatalf("Report() = %v", err)
	}

	var payload slackPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(payload.Blocks) != 5 {
		t.Fatalf("expected 5 blocks, got %d", len(payload.Blocks))
	}
	if payload.Blocks[0].Type != "header" || payload.Blocks[0].Text.Text != "📊 Data Analyst in London" {
		t.Errorf("header = %+v", payload.Blocks[0])
	}
	if payload.Blocks[1].Fields[0].Text != "*Jobs analysed:*\n2" {
		t.Errorf("jobs field = %q", payload.Blocks[1].Fields[0].Text)
	}
	if payload.Blocks[2].Text.Text != "1. *Sql* (2)\n2. *Excel* (1)" {
		t.Errorf("skills section = %q", payload.Blocks[2].Text.Text)
	}
	if !strings.Contains(payload.Blocks[3].Text.Text, "<https://example.com/sql|SQL for Data Science>") {
		t.Errorf("courses section = %q", payload.Blocks[3].Text.Text)
	}
	if payload.Blocks[4].Type != "divider" {
		t.Errorf("block[4] type = %q, want divider", payload.Blocks[4].Type)
	}
}

func TestSlackReporter_NoSkillsOmitsSections(t *testing.T) {
	result := sampleResult()
	result.Skills = nil
	result.Recommendations = nil

	payload := buildPayload(result)
	if len(payload.Blocks) != 3 {
		t.Errorf("expected 3 blocks, got %d", len(payload.Blocks))
	}
}

func TestSlackReporter_SlackReturnsError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	r := NewSlackReporter(srv.URL, srv.Client(), discardLogger())
	if err := r.Report(sampleResult()); err == nil {
		t.Error("expected error on non-200, got nil")
	}
	if c := calls.Load(); c != 1 {
		t.Errorf("expected exactly 1 HTTP call (no retry), got %d", c)
	}
}

func TestSendTestReport(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := SendTestReport(NewSlackReporter(srv.URL, srv.Client(), discardLogger())); err != nil {
		t.Fatalf("SendTestReport() = %v", err)
	}
	if c := calls.Load(); c != 1 {
		t.Errorf("expected 1 HTTP call, got %d", c)
	}
}

func TestBuildPayload_CapitalizesLikeDashboard(t *testing.T) {
	result := sampleResult()
	result.Skills = []model.SkillFrequency{{Skill: "AWS", Count: 3}, {Skill: "machine LEARNING", Count: 1}}

	payload := buildPayload(result)
	if got := payload.Blocks[2].Text.Text; got != "1. *Aws* (3)\n2. *Machine learning* (1)" {
		t.Errorf("skills section = %q", got)
	}
}
