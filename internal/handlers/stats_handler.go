package handlers

import (
	"net/http"

	"github.com/alexporto/portfolio-backend/internal/apperrors"
	"github.com/alexporto/portfolio-backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// StatsHandler serves the public portfolio counters
type StatsHandler struct {
	statsRepository repositories.StatsRepository
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsRepo repositories.StatsRepository) *StatsHandler {
	return &StatsHandler{statsRepository: statsRepo}
}

// RegisterStatsRoutes registers the stats route
func (h *StatsHandler) RegisterStatsRoutes(g *echo.Group) {
	g.GET("/stats", h.GetStats)
}

// GetStats returns the public counters
func (h *StatsHandler) GetStats(c echo.Context) error {
	stats, err := h.statsRepository.GetStats()
	if err != nil {
		return apperrors.Internal("failed to aggregate stats", err)
	}
	return c.JSON(http.StatusOK, stats)
}
