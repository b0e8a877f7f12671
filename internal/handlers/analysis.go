package handlers

import (
	"net/http"

	"github.com/bportes89/projeto-kanban/internal/ai"
	"github.com/bportes89/projeto-kanban/internal/observability"

	"github.com/gin-gonic/gin"
)

type AnalysisHandler struct {
	analyzer ai.Analyzer
}

func NewAnalysisHandler(analyzer ai.Analyzer) *AnalysisHandler {
	return &AnalysisHandler{analyzer: analyzer}
}

// Analyze godoc
// @Summary      Analyze a card snapshot
// @Description  Forwards the mentoring fields to the analysis service. Failure is non-fatal: the card itself is unaffected.
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body      ai.CardSnapshot  true  "Card snapshot"
// @Success      200   {object}  ai.Result
// @Failure      400   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /ai/analyze [post]
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var snapshot ai.CardSnapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.analyzer.Analyze(c.Request.Context(), snapshot)
	if err != nil {
		observability.LoggerFromContext(c.Request.Context()).Warn("analysis failed", "err", err)
		// Any analyzer failure is the same non-fatal condition to the client.
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "analysis unavailable"})
		return
	}
	c.JSON(http.StatusOK, result)
}
