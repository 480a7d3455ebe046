package dashboard

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/amishk599/skillmap/internal/model"
)

func sampleResult() *model.AnalysisResult {
	return &model.AnalysisResult{
		RunID: "run-1",
		Query: model.Query{Role: "Data Analyst", Location: "London"},
		Jobs: []model.JobPosting{
			{ID: "1", Title: "Data Analyst", CompanyName: "Acme", Description: "python and sql"},
			{ID: "2", Title: "Junior Analyst", CompanyName: model.DefaultCompanyName, Description: "python, java"},
		},
		Skills: []model.SkillFrequency{
			{Skill: "python", Count: 2},
			{Skill: "sql", Count: 1},
			{Skill: "java", Count: 1},
		},
		Recommendations: model.Recommendations{
			{Skill: "python", Courses: []model.CourseLink{{Title: "Python for Everybody", URL: "https://www.coursera.org/specializations/python"}}},
			{Skill: "sql", Courses: []model.CourseLink{{Title: "SQL for Data Science", URL: "https://www.coursera.org/learn/sql-for-data-science"}}},
		},
	}
}

func TestRenderResult_Sections(t *testing.T) {
	out := RenderResult(sampleResult(), 60)

	for _, want := range []string{
		"Found 2 job listings",
		"Top Skills Extracted",
		"Sample Job Listings",
		"Junior Analyst",
		"N/A",
		"Skill Frequency Bar Chart",
		"Skill Share",
		"Recommended Courses",
		"Python for Everybody",
		"https://www.coursera.org/learn/sql-for-data-science",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderResult missing %q", want)
		}
	}

	skills := strings.Index(out, "Top Skills Extracted")
	jobs := strings.Index(out, "Sample Job Listings")
	courses := strings.Index(out, "Recommended Courses")
	if !(skills < jobs && jobs < courses) {
		t.Errorf("sections out of order: skills=%d jobs=%d courses=%d", skills, jobs, courses)
	}
}

func TestRenderError(t *testing.T) {
	unauthorized := RenderError(&model.HTTPError{StatusCode: 401, Err: model.ErrUnauthorized})
	if !strings.Contains(unauthorized, "Access denied") {
		t.Errorf("unauthorized = %q", unauthorized)
	}

	noJobs := RenderError(model.ErrNoJobs)
	if !strings.Contains(noJobs, "No job data found") || !strings.Contains(noJobs, "⚠") {
		t.Errorf("no jobs = %q", noJobs)
	}

	failed := RenderError(errors.New("connection refused"))
	if !strings.Contains(failed, "Error fetching jobs: connection refused") {
		t.Errorf("fetch error = %q", failed)
	}
}

func TestShares_SumTo100(t *testing.T) {
	shares := Shares([]model.SkillFrequency{
		{Skill: "python", Count: 3},
		{Skill: "sql", Count: 2},
		{Skill: "java", Count: 2},
	})
	if len(shares) != 3 {
		t.Fatalf("got %d shares", len(shares))
	}

	total := 0.0
	for _, s := range shares {
		total += s.Percent
	}
	if math.Abs(total-100) > 1e-9 {
		t.Errorf("shares sum to %f", total)
	}
	if math.Abs(shares[0].Percent-300.0/7) > 1e-9 {
		t.Errorf("python share = %f", shares[0].Percent)
	}
}

func TestShares_Empty(t *testing.T) {
	if got := Shares(nil); got != nil {
		t.Errorf("Shares(nil) = %v", got)
	}
}

func TestBarChart_OneLinePerSkill(t *testing.T) {
	skills := sampleResult().Skills
	out := BarChart(skills, 40)
	lines := strings.Split(out, "\n")
	if len(lines) != len(skills) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(skills), out)
	}

	// The top skill gets the longest bar.
	if strings.Count(lines[0], "█") <= strings.Count(lines[1], "█") {
		t.Errorf("bar for python not longer than sql:\n%s", out)
	}
	if !strings.HasSuffix(lines[0], " 2") {
		t.Errorf("expected count suffix, got %q", lines[0])
	}
}

func TestBarChart_Empty(t *testing.T) {
	if out := BarChart(nil, 40); !strings.Contains(out, "no skills matched") {
		t.Errorf("BarChart(nil) = %q", out)
	}
}

func TestShareChart_FillsWidth(t *testing.T) {
	out := ShareChart(sampleResult().Skills, 30)
	lines := strings.Split(out, "\n")
	if got := strings.Count(lines[0], "█"); got != 30 {
		t.Errorf("stacked bar has %d cells, want 30", got)
	}
	if !strings.Contains(out, "python 50.0%") {
		t.Errorf("legend missing python share:\n%s", out)
	}
}

func TestCourseList_CapitalizesSkills(t *testing.T) {
	recs := model.Recommendations{
		{Skill: "machine learning", Courses: []model.CourseLink{{Title: "ML", URL: "https://example.com/ml"}}},
	}
	out := CourseList(recs)
	if !strings.Contains(out, "Machine learning") {
		t.Errorf("CourseList = %q", out)
	}
	if !strings.Contains(out, "🔗 ML") {
		t.Errorf("CourseList missing link line: %q", out)
	}
}
