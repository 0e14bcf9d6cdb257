package ui

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"descstats/app"
	"descstats/domain/core"
	"descstats/domain/sample"
	apperrors "descstats/internal/errors"
)

func (s *Server) handleAnalyze(c *gin.Context) {
	var req app.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":  apperrors.CodeInvalidRequest,
			"error": "request body must be JSON with a string `data` field",
		})
		return
	}

	result, err := s.analysis.Analyze(c.Request.Context(), req)
	if err != nil {
		status, body := validationResponse(err)
		c.JSON(status, body)
		return
	}

	s.cacheResult(result)
	c.JSON(http.StatusOK, result)
}

type batchRequest struct {
	Datasets []app.AnalysisRequest `json:"datasets"`
}

func (s *Server) handleAnalyzeBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Datasets) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":  apperrors.CodeInvalidRequest,
			"error": "request body must contain a non-empty `datasets` array",
		})
		return
	}

	results, err := s.analysis.AnalyzeBatch(c.Request.Context(), req.Datasets)
	if err != nil {
		status, body := validationResponse(err)
		c.JSON(status, body)
		return
	}

	for _, result := range results {
		s.cacheResult(result)
	}
	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
	})
}

func (s *Server) handleGetResult(c *gin.Context) {
	result, ok := s.cachedResult(core.AnalysisID(c.Param("id")))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"code":  apperrors.CodeNotFound,
			"error": "analysis not found",
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleExport(format string) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, ok := s.cachedResult(core.AnalysisID(c.Param("id")))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{
				"code":  apperrors.CodeNotFound,
				"error": "analysis not found",
			})
			return
		}

		exporter, ok := s.exporters[format]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{
				"code":  apperrors.CodeNotFound,
				"error": "unsupported export format",
			})
			return
		}

		filename := "analysis_" + result.ID.String() + "." + exporter.FileExtension()
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Header("Content-Type", exporter.ContentType())
		if err := exporter.Export(c.Writer, result.Analysis); err != nil {
			s.logger.Error("export %s failed for %s: %v", format, result.ID, err)
			c.Status(http.StatusInternalServerError)
		}
	}
}

// validationResponse maps the parse error taxonomy onto transport codes.
// Every validation failure is terminal and carries a displayable message.
func validationResponse(err error) (int, gin.H) {
	var invalidErr *sample.InvalidTokensError
	switch {
	case errors.As(err, &invalidErr):
		return http.StatusBadRequest, gin.H{
			"code":           apperrors.CodeInvalidTokens,
			"error":          err.Error(),
			"invalid_tokens": invalidErr.Tokens,
		}
	case errors.Is(err, sample.ErrEmptyInput):
		return http.StatusBadRequest, gin.H{"code": apperrors.CodeEmptyInput, "error": err.Error()}
	case errors.Is(err, sample.ErrNoTokens):
		return http.StatusBadRequest, gin.H{"code": apperrors.CodeNoTokens, "error": err.Error()}
	case errors.Is(err, sample.ErrNoValidTokens):
		return http.StatusBadRequest, gin.H{"code": apperrors.CodeNoValidTokens, "error": err.Error()}
	default:
		return http.StatusInternalServerError, gin.H{"code": apperrors.CodeInternalError, "error": "analysis failed"}
	}
}
