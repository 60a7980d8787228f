package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/interview-coach-team/interview-analyzer/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	analysisHandler  *Analysis
	interviewHandler *Interview
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, analysisHandler *Analysis, interviewHandler *Interview) *Router {
	return &Router{
		cfg:              cfg,
		analysisHandler:  analysisHandler,
		interviewHandler: interviewHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAnalysisRoutes(v1)
	rt.setupInterviewRoutes(v1)
}

// setupAnalysisRoutes configures the stateless analysis routes
func (rt *Router) setupAnalysisRoutes(g *echo.Group) {
	analysisGroup := g.Group("/analysis")

	analysisGroup.POST("/relevance", rt.analysisHandler.Relevance)
	analysisGroup.POST("/speech", rt.analysisHandler.Speech)
	analysisGroup.POST("/prosody", rt.analysisHandler.Prosody)
	analysisGroup.POST("/score", rt.analysisHandler.Score)
	analysisGroup.POST("/compare", rt.analysisHandler.Compare)
	analysisGroup.POST("/feedback", rt.analysisHandler.Feedback)
}

// setupInterviewRoutes configures interview management routes
func (rt *Router) setupInterviewRoutes(g *echo.Group) {
	interviewGroup := g.Group("/interviews")

	interviewGroup.POST("", rt.interviewHandler.Create)
	interviewGroup.GET("", rt.interviewHandler.List)
	interviewGroup.GET("/:id", rt.interviewHandler.Get)
	interviewGroup.POST("/:id/audio", rt.interviewHandler.UploadAudio)
	interviewGroup.POST("/:id/resume", rt.interviewHandler.UploadResume)
	interviewGroup.POST("/:id/process", rt.interviewHandler.Process)
	interviewGroup.GET("/:id/reports", rt.interviewHandler.Reports)
	interviewGroup.GET("/:id/recordings", rt.interviewHandler.Recordings)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
