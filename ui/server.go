package ui

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"descstats/app"
	"descstats/domain/core"
	"descstats/internal"
	"descstats/internal/container"
	"descstats/ports"
)

// resultCacheSize bounds the in-memory result cache; results are kept only
// for the immediate report/export step, not persisted.
const resultCacheSize = 128

// Server represents the HTTP API for the statistics engine
type Server struct {
	router    *gin.Engine
	analysis  *app.AnalysisService
	exporters map[string]ports.ReportExporter
	logger    *internal.Logger

	cacheMu    sync.RWMutex
	results    map[core.AnalysisID]*app.AnalysisResult
	cacheOrder []core.AnalysisID
}

// NewServer creates the web server from a wired container
func NewServer(c *container.Container) *Server {
	if c.Config.Server.GinMode != "" {
		gin.SetMode(c.Config.Server.GinMode)
	}

	s := &Server{
		router:    gin.Default(),
		analysis:  c.Analysis,
		exporters: c.Exporters,
		logger:    c.Logger,
		results:   make(map[core.AnalysisID]*app.AnalysisResult),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api")
	{
		api.POST("/analyze", s.handleAnalyze)
		api.POST("/analyze/batch", s.handleAnalyzeBatch)
		api.GET("/analyze/:id", s.handleGetResult)
		api.GET("/analyze/:id/report", s.handleReport)
		api.GET("/analyze/:id/export.csv", s.handleExport("csv"))
		api.GET("/analyze/:id/export.xlsx", s.handleExport("xlsx"))
	}
}

// Handler exposes the router for embedding and tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server on the given port
func (s *Server) Run(port string) error {
	s.logger.Info("listening on :%s", port)
	return s.router.Run(":" + port)
}

// cacheResult stores a result for the immediate download step, evicting the
// oldest entry once the cache is full.
func (s *Server) cacheResult(result *app.AnalysisResult) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	if len(s.cacheOrder) >= resultCacheSize {
		oldest := s.cacheOrder[0]
		s.cacheOrder = s.cacheOrder[1:]
		delete(s.results, oldest)
	}
	s.results[result.ID] = result
	s.cacheOrder = append(s.cacheOrder, result.ID)
}

func (s *Server) cachedResult(id core.AnalysisID) (*app.AnalysisResult, bool) {
	s.cacheMu.RLock()
	defer s.cacheMu.RUnlock()
	result, ok := s.results[id]
	return result, ok
}
