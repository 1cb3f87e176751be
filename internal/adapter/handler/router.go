package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minutesdev/meeting-minutes/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	sessionHandler *Session
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, sessionHandler *Session) *Router {
	return &Router{
		cfg:            cfg,
		sessionHandler: sessionHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupSessionRoutes(v1)
	rt.setupExportRoutes(v1)
}

// setupSessionRoutes configures the single-session pipeline routes
func (rt *Router) setupSessionRoutes(g *echo.Group) {
	sessionGroup := g.Group("/session")

	sessionGroup.POST("/audio", rt.sessionHandler.SubmitAudio)
	sessionGroup.GET("/transcript", rt.sessionHandler.GetTranscript)
	sessionGroup.POST("/transcript/export", rt.sessionHandler.ExportTranscript)
	sessionGroup.POST("/agenda", rt.sessionHandler.UploadAgenda)
	sessionGroup.GET("/agenda", rt.sessionHandler.GetAgenda)
	sessionGroup.POST("/minutes", rt.sessionHandler.GenerateMinutes)
	sessionGroup.GET("/minutes", rt.sessionHandler.GetMinutes)
	sessionGroup.POST("/minutes/export", rt.sessionHandler.ExportMinutes)

	g.DELETE("/session", rt.sessionHandler.ResetSession)
}

// setupExportRoutes configures export download routes
func (rt *Router) setupExportRoutes(g *echo.Group) {
	g.GET("/exports/:filename", rt.sessionHandler.DownloadExport)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
