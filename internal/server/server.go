package server

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/template/html/v3"

	"github.com/amishk599/skillmap/internal/config"
	"github.com/amishk599/skillmap/internal/metrics"
	"github.com/amishk599/skillmap/internal/model"
	"github.com/amishk599/skillmap/internal/skill"
)

//go:embed views
var viewsFS embed.FS

// Analyzer runs one analysis. *analysis.Runner satisfies it.
type Analyzer interface {
	Run(ctx context.Context, q model.Query) (*model.AnalysisResult, error)
}

// Server wraps the Fiber app serving the browser dashboard.
type Server struct {
	App *fiber.App

	addr            string
	defaultRole     string
	defaultLocation string
	analyzer        Analyzer
	logger          *slog.Logger
}

// New creates the app with middleware and routes registered.
// m may be nil, in which case /metrics is not served.
func New(cfg *config.Config, analyzer Analyzer, m *metrics.Metrics, log *slog.Logger) (*Server, error) {
	views, err := fs.Sub(viewsFS, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(views), ".html")
	engine.AddFunc("capitalize", skill.Capitalize)

	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
				message = e.Message
			}

			return c.Status(code).Render("error", fiber.Map{
				"Title":   "Error",
				"Message": message,
			})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:             app,
		addr:            cfg.Server.Addr,
		defaultRole:     cfg.Analysis.DefaultRole,
		defaultLocation: cfg.Analysis.DefaultLocation,
		analyzer:        analyzer,
		logger:          log,
	}

	// Every analyze request spends one call of the shared API quota.
	guard := func(c fiber.Ctx) error { return c.Next() }
	if n := cfg.Server.AnalyzePerMinute; n > 0 {
		guard = limiter.New(limiter.Config{
			Max:        n,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				if strings.HasPrefix(c.Path(), "/api/") {
					return jsonError(c, fiber.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
				}
				return fiber.NewError(fiber.StatusTooManyRequests, "Too many analyses. Please wait a minute and try again.")
			},
		})
	}

	app.Get("/", s.Index)
	app.Get("/analyze", guard, s.Analyze)
	app.Get("/api/analyze", guard, s.APIAnalyze)
	app.Get("/healthz", s.Healthz)
	if m != nil {
		app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}

	return s, nil
}

// Start listens on the configured address. It blocks until Shutdown.
func (s *Server) Start() error {
	s.logger.Info("dashboard listening", "addr", s.addr)
	return s.App.Listen(s.addr, fiber.ListenConfig{DisableStartupMessage: true})
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.App.ShutdownWithContext(ctx)
}
