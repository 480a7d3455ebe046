package server

import "github.com/amishk599/skillmap/internal/model"

type jobResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location,omitempty"`
	URL      string `json:"url,omitempty"`
}

type skillResponse struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

type recommendationResponse struct {
	Skill   string             `json:"skill"`
	Courses []model.CourseLink `json:"courses"`
}

type analysisResponse struct {
	RunID           string                   `json:"run_id"`
	Role            string                   `json:"role"`
	Location        string                   `json:"location"`
	JobCount        int                      `json:"job_count"`
	Skills          []skillResponse          `json:"skills"`
	Jobs            []jobResponse            `json:"jobs"`
	Recommendations []recommendationResponse `json:"recommendations"`
}

func newAnalysisResponse(r *model.AnalysisResult) analysisResponse {
	resp := analysisResponse{
		RunID:           r.RunID,
		Role:            r.Query.Role,
		Location:        r.Query.Location,
		JobCount:        len(r.Jobs),
		Skills:          make([]skillResponse, 0, len(r.Skills)),
		Jobs:            make([]jobResponse, 0, previewJobs),
		Recommendations: make([]recommendationResponse, 0, len(r.Recommendations)),
	}
	for _, sf := range r.Skills {
		resp.Skills = append(resp.Skills, skillResponse{Skill: sf.Skill, Count: sf.Count})
	}
	for _, j := range r.PreviewJobs(previewJobs) {
		resp.Jobs = append(resp.Jobs, jobResponse{
			ID:       j.ID,
			Title:    j.Title,
			Company:  j.CompanyName,
			Location: j.Location,
			URL:      j.URL,
		})
	}
	for _, rec := range r.Recommendations {
		resp.Recommendations = append(resp.Recommendations, recommendationResponse{Skill: rec.Skill, Courses: rec.Courses})
	}
	return resp
}
