package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/amishk599/skillmap/internal/model"
)

const (
	DefaultAdzunaBaseURL  = "https://api.adzuna.com"
	DefaultAdzunaCountry  = "gb"
	DefaultResultsPerPage = 20
)

// adzunaJob is a single record in the Adzuna search response.
type adzunaJob struct {
	ID          flexibleID      `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	RedirectURL string          `json:"redirect_url"`
	Company     *adzunaCompany  `json:"company"`
	Location    *adzunaLocation `json:"location"`
}

type adzunaCompany struct {
	DisplayName string `json:"display_name"`
}

type adzunaLocation struct {
	DisplayName string `json:"display_name"`
}

// flexibleID accepts the posting id as either a JSON string or number.
type flexibleID string

func (id *flexibleID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = flexibleID(n.String())
	return nil
}

// adzunaResponse is the top-level Adzuna search response.
type adzunaResponse struct {
	Results []adzunaJob `json:"results"`
}

// AdzunaCredentials are the static app id/key pair issued by Adzuna.
type AdzunaCredentials struct {
	AppID  string
	AppKey string
}

// AdzunaAdapter fetches one page of search results from the Adzuna jobs API.
type AdzunaAdapter struct {
	baseURL        string
	country        string
	resultsPerPage int
	creds          AdzunaCredentials
	client         *http.Client
}

// NewAdzunaAdapter creates an adapter for the given country endpoint ("gb", "us", ...).
func NewAdzunaAdapter(baseURL, country string, resultsPerPage int, creds AdzunaCredentials, client *http.Client) *AdzunaAdapter {
	if baseURL == "" {
		baseURL = DefaultAdzunaBaseURL
	}
	if country == "" {
		country = DefaultAdzunaCountry
	}
	if resultsPerPage <= 0 {
		resultsPerPage = DefaultResultsPerPage
	}
	return &AdzunaAdapter{
		baseURL:        strings.TrimRight(baseURL, "/"),
		country:        country,
		resultsPerPage: resultsPerPage,
		creds:          creds,
		client:         client,
	}
}

// searchURL builds the first-page search URL for q.
func (a *AdzunaAdapter) searchURL(q model.Query) string {
	params := url.Values{}
	params.Set("app_id", a.creds.AppID)
	params.Set("app_key", a.creds.AppKey)
	params.Set("results_per_page", strconv.Itoa(a.resultsPerPage))
	params.Set("what", q.Role)
	params.Set("where", q.Location)
	params.Set("content-type", "application/json")
	return fmt.Sprintf("%s/v1/api/jobs/%s/search/1?%s", a.baseURL, a.country, params.Encode())
}

// FetchJobs issues a single search request and normalizes the results.
// A 401 yields an *model.HTTPError wrapping model.ErrUnauthorized.
func (a *AdzunaAdapter) FetchJobs(ctx context.Context, q model.Query) ([]model.JobPosting, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.searchURL(q), nil)
	if err != nil {
		return nil, fmt.Errorf("adzuna search %q in %q: %w", q.Role, q.Location, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		// url.Error carries the full URL, including app_key.
		return nil, fmt.Errorf("adzuna search %q in %q: %w", q.Role, q.Location, redactTransportError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("adzuna search %q in %q: %w", q.Role, q.Location, newHTTPError(resp))
	}

	var azResp adzunaResponse
	if err := json.NewDecoder(resp.Body).Decode(&azResp); err != nil {
		return nil, fmt.Errorf("adzuna search %q in %q: decode response: %w", q.Role, q.Location, err)
	}

	jobs := make([]model.JobPosting, 0, len(azResp.Results))
	for _, aj := range azResp.Results {
		job := model.JobPosting{
			ID:          string(aj.ID),
			Title:       aj.Title,
			CompanyName: model.DefaultCompanyName,
			URL:         aj.RedirectURL,
			Description: aj.Description,
		}
		if aj.Company != nil && aj.Company.DisplayName != "" {
			job.CompanyName = aj.Company.DisplayName
		}
		if aj.Location != nil {
			job.Location = aj.Location.DisplayName
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}
