package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/marcus/talent-radar/internal/auth"
	"github.com/marcus/talent-radar/internal/candidates"
	"github.com/marcus/talent-radar/internal/intake"
	"github.com/marcus/talent-radar/internal/sheets"
)

// SheetSource is the authenticated spreadsheet gateway the handlers read from.
type SheetSource interface {
	FetchValues(ctx context.Context, sheetID, rangeName string) (sheets.Grid, error)
}

type Server struct {
	Sheets SheetSource
	Relay  *intake.Relay
	Echo   *echo.Echo
	Config Config
}

func NewServer(source SheetSource, cfg Config) *Server {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// The dashboard is served from arbitrary origins; echo answers the
	// OPTIONS preflight with these headers and no body.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"authorization", "x-client-info", "apikey", "content-type"},
	}))

	s := &Server{
		Sheets: source,
		Relay:  intake.NewRelay(cfg.WorkflowWebhookURL),
		Echo:   e,
		Config: cfg,
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)
	api := s.Echo.Group("/api/v1")
	api.GET("/sheet", s.handleFetchSheet)
	api.GET("/candidates", s.handleListCandidates)
	api.POST("/auth/login", s.handleLogin)
	api.POST("/intake", s.handleIntake)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// handleFetchSheet mirrors the upstream values shape so the dashboard can
// consume the grid directly.
func (s *Server) handleFetchSheet(c echo.Context) error {
	grid, err := s.Sheets.FetchValues(c.Request().Context(), s.Config.DashboardSheetID, s.Config.DashboardSheetRange)
	if err != nil {
		c.Logger().Errorf("Failed to fetch dashboard sheet: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch sheet"})
	}
	if grid == nil {
		grid = sheets.Grid{}
	}
	return c.JSON(http.StatusOK, map[string]any{"values": grid})
}

func (s *Server) handleListCandidates(c echo.Context) error {
	grid, err := s.Sheets.FetchValues(c.Request().Context(), s.Config.DashboardSheetID, s.Config.DashboardSheetRange)
	if err != nil {
		c.Logger().Errorf("Failed to fetch dashboard sheet: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch sheet"})
	}

	records := candidates.Normalize(grid)

	cr := candidates.MatchAll()
	cr.Qualification = c.QueryParam("qualification")
	cr.Keyword = c.QueryParam("q")
	if v, err := strconv.ParseFloat(c.QueryParam("min_experience"), 64); err == nil {
		cr.MinExperience = v
	}
	if v, err := strconv.ParseFloat(c.QueryParam("max_experience"), 64); err == nil {
		cr.MaxExperience = v
	}
	if v, err := strconv.ParseFloat(c.QueryParam("min_score"), 64); err == nil {
		cr.MinScore = v
	}
	if v, err := strconv.ParseFloat(c.QueryParam("max_score"), 64); err == nil {
		cr.MaxScore = v
	}

	spec := candidates.SortSpec{Field: "matching_score", Descending: true}
	if v := c.QueryParam("sort"); v != "" {
		spec.Field = v
	}
	if v := c.QueryParam("dir"); v != "" {
		spec.Descending = !strings.EqualFold(v, "asc")
	}

	page := 1
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		page = v
	}
	pageSize := candidates.DefaultPageSize
	if v, err := strconv.Atoi(c.QueryParam("page_size")); err == nil && v > 0 && v <= 100 {
		pageSize = v
	}

	return c.JSON(http.StatusOK, candidates.Query(records, cr, spec, page, pageSize))
}

type loginRequest struct {
	LoginName string `json:"loginName"`
	Password  string `json:"password"`
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	grid, err := s.Sheets.FetchValues(c.Request().Context(), s.Config.LoginSheetID, s.Config.LoginSheetRange)
	if err != nil {
		c.Logger().Errorf("Login sheet fetch failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": loginErrorMessage(err)})
	}

	switch err := auth.ValidateCredentials(grid, req.LoginName, req.Password); {
	case err == nil:
		return c.JSON(http.StatusOK, map[string]any{"valid": true})
	case errors.Is(err, auth.ErrNoCredentials):
		return c.JSON(http.StatusOK, map[string]any{"valid": false, "message": "No credentials data found"})
	case errors.Is(err, auth.ErrInvalidSchema):
		return c.JSON(http.StatusOK, map[string]any{"valid": false, "message": "Invalid sheet format"})
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.JSON(http.StatusOK, map[string]any{"valid": false, "message": "Wrong Login Name or Password."})
	default:
		c.Logger().Errorf("Credential validation failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
}

// loginErrorMessage maps gateway failures to the messages the login screen
// surfaces inline. A credentials mismatch is a normal business outcome and
// never reaches here.
func loginErrorMessage(err error) string {
	var keyErr *sheets.KeyFormatError
	var authErr *sheets.AuthExchangeError
	var fetchErr *sheets.SheetFetchError

	switch {
	case errors.Is(err, sheets.ErrMissingConfig):
		return "Service Account configuration error"
	case errors.As(err, &keyErr):
		return "Invalid Service Account key format"
	case errors.As(err, &authErr):
		return "Service Account auth failed"
	case errors.As(err, &fetchErr):
		if fetchErr.PermissionDenied() {
			return "Access denied. Confirm SA has sheet access & API enabled."
		}
		return "Failed to fetch sheet data"
	default:
		return "Failed to fetch sheet data"
	}
}

func (s *Server) handleIntake(c echo.Context) error {
	var payload intake.Payload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	id, err := s.Relay.Submit(c.Request().Context(), &payload)
	if err != nil {
		if intake.IsValidationError(err) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		c.Logger().Errorf("Intake submission failed: %v", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Workflow submission failed"})
	}

	return c.JSON(http.StatusAccepted, map[string]string{
		"message":       "Intake submitted",
		"submission_id": id,
	})
}

func (s *Server) Start(port string) error {
	return s.Echo.Start(":" + port)
}
