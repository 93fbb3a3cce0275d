package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/vidnote/audiofetch/internal/admission"
	"github.com/vidnote/audiofetch/internal/model"
	"github.com/vidnote/audiofetch/internal/pipeline"
)

// processRequest is the body of POST /api/process/video.
type processRequest struct {
	URL        string `json:"url"`
	PageNumber *int   `json:"page_number"`
}

// processResponse mirrors the wire format of the original API: files,
// session folder, and title on success; a single error string otherwise.
type processResponse struct {
	Success       bool     `json:"success"`
	Files         []string `json:"files,omitempty"`
	SessionFolder string   `json:"session_folder,omitempty"`
	VideoTitle    string   `json:"video_title,omitempty"`
	Error         string   `json:"error,omitempty"`
}

// Server hosts the HTTP API for the retrieval pipeline.
type Server struct {
	echo   *echo.Echo
	runner pipeline.Runner
	logger *zap.Logger
}

// New creates a Server around the given pipeline runner.
func New(runner pipeline.Runner, logger *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:   e,
		runner: runner,
		logger: logger,
	}

	e.GET("/api/health", s.handleHealth)
	e.POST("/api/process/video", s.handleProcessVideo)
	return s
}

// Start begins serving on addr and blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.logger.Info("http server listening", zap.String("addr", addr))
	err := s.echo.Start(addr)
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleProcessVideo runs the pipeline for one URL. A missing or
// too-short URL is rejected here, before the pipeline is invoked.
func (s *Server) handleProcessVideo(c echo.Context) error {
	var req processRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, processResponse{
			Success: false,
			Error:   "invalid request body",
		})
	}

	if len(strings.TrimSpace(req.URL)) < admission.MinURLLength {
		return c.JSON(http.StatusBadRequest, processResponse{
			Success: false,
			Error:   "url is required",
		})
	}

	result := s.runner.Run(c.Request().Context(), model.SourceRequest{
		URL:          req.URL,
		PartSelector: req.PageNumber,
	})

	if !result.Success {
		return c.JSON(http.StatusInternalServerError, processResponse{
			Success: false,
			Error:   result.ErrKind.String() + ": " + result.Message,
		})
	}

	files := make([]string, 0, len(result.Assets))
	for _, asset := range result.Assets {
		files = append(files, asset.Path)
	}
	return c.JSON(http.StatusOK, processResponse{
		Success:       true,
		Files:         files,
		SessionFolder: result.SessionPath,
		VideoTitle:    result.Title,
	})
}
