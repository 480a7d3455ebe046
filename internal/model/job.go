package model

import (
	"context"
)

// DefaultCompanyName is shown when the search API omits company.display_name.
const DefaultCompanyName = "N/A"

// JobPosting is a single search result from the jobs API.
type JobPosting struct {
	ID          string // adzuna id, may be empty
	Title       string // job title
	CompanyName string // company.display_name, DefaultCompanyName if missing
	Location    string // location.display_name
	URL         string // redirect_url
	Description string // free-text snippet used for skill matching
}

// Query is one (role, location) search.
type Query struct {
	Role     string
	Location string
}

// SkillFrequency is a vocabulary skill and the number of postings mentioning it.
type SkillFrequency struct {
	Skill string
	Count int
}

// CourseLink is a single external course recommendation.
type CourseLink struct {
	Title string `yaml:"title" json:"title"`
	URL   string `yaml:"url" json:"url"`
}

// Recommendation pairs a skill with its catalog courses.
type Recommendation struct {
	Skill   string
	Courses []CourseLink
}

// Recommendations keeps skill -> courses in extractor rank order.
type Recommendations []Recommendation

// Skills returns the recommended skill keys in order.
func (r Recommendations) Skills() []string {
	out := make([]string, 0, len(r))
	for _, rec := range r {
		out = append(out, rec.Skill)
	}
	return out
}

// Lookup returns the courses for skill, if it was recommended.
func (r Recommendations) Lookup(skill string) ([]CourseLink, bool) {
	for _, rec := range r {
		if rec.Skill == skill {
			return rec.Courses, true
		}
	}
	return nil, false
}

// AnalysisResult is the outcome of one analysis run. It is rendered once and dropped.
type AnalysisResult struct {
	RunID           string
	Query           Query
	Jobs            []JobPosting
	Skills          []SkillFrequency
	Recommendations Recommendations
}

// TotalMentions sums the counts of all ranked skills (the pie chart denominator).
func (r *AnalysisResult) TotalMentions() int {
	total := 0
	for _, s := range r.Skills {
		total += s.Count
	}
	return total
}

// PreviewJobs returns at most n postings for the listing preview.
func (r *AnalysisResult) PreviewJobs(n int) []JobPosting {
	if len(r.Jobs) <= n {
		return r.Jobs
	}
	return r.Jobs[:n]
}

// JobFetcher fetches one page of postings for a query.
type JobFetcher interface {
	FetchJobs(ctx context.Context, q Query) ([]JobPosting, error)
}

// Reporter publishes a finished analysis (log line, Slack message).
type Reporter interface {
	Report(result *AnalysisResult) error
}
