package server

import (
	"github.com/gofiber/fiber/v3"

	"github.com/amishk599/skillmap/internal/analysis"
	"github.com/amishk599/skillmap/internal/model"
)

// Jobs shown in the listing preview.
const previewJobs = 10

// Index renders the search form with the configured defaults.
func (s *Server) Index(c fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title":    "SkillMap",
		"Role":     s.defaultRole,
		"Location": s.defaultLocation,
	})
}

// Analyze runs one analysis and renders the dashboard below the form.
// On failure only the message is rendered, never tables or charts.
func (s *Server) Analyze(c fiber.Ctx) error {
	q := s.query(c)
	data := fiber.Map{
		"Title":    "SkillMap · " + q.Role,
		"Role":     q.Role,
		"Location": q.Location,
	}

	result, err := s.analyzer.Run(c.Context(), q)
	if err != nil {
		data["Message"] = analysis.Message(err)
		data["Warning"] = analysis.Classify(err) == analysis.OutcomeNoJobs
		return c.Render("index", data)
	}

	data["Result"] = result
	data["JobCount"] = len(result.Jobs)
	data["Skills"] = result.Skills
	data["Jobs"] = result.PreviewJobs(previewJobs)
	data["Bars"] = NewBarChart(result.Skills)
	data["Pie"] = NewPieChart(result.Skills)
	data["Recommendations"] = result.Recommendations
	return c.Render("index", data)
}

// APIAnalyze is the JSON form of Analyze.
func (s *Server) APIAnalyze(c fiber.Ctx) error {
	q := s.query(c)
	result, err := s.analyzer.Run(c.Context(), q)
	if err != nil {
		return jsonError(c, statusFor(err), analysis.Message(err))
	}
	return jsonSuccess(c, newAnalysisResponse(result))
}

// Healthz reports liveness.
func (s *Server) Healthz(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// query reads role and location. A parameter that is absent falls back to
// the configured default; one that is present but empty is kept as-is.
func (s *Server) query(c fiber.Ctx) model.Query {
	args := c.Request().URI().QueryArgs()
	q := model.Query{Role: s.defaultRole, Location: s.defaultLocation}
	if args.Has("role") {
		q.Role = c.Query("role")
	}
	if args.Has("location") {
		q.Location = c.Query("location")
	}
	return q
}

func statusFor(err error) int {
	switch analysis.Classify(err) {
	case analysis.OutcomeNoJobs:
		return fiber.StatusNotFound
	case analysis.OutcomeUnauthorized, analysis.OutcomeFetchError:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// jsonSuccess returns a 200 response with data wrapped in the standard envelope.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}
