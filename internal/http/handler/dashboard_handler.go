package handler

import (
	"net/http"

	"github.com/shelfwise/retail-api/internal/service"
	"go.uber.org/zap"
)

// DashboardHandler handles HTTP requests for dashboard aggregates
type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler instance
func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, logger: logger}
}

// Overview returns the stock health summary
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.dashboardService.Overview(r.Context())
	if err != nil {
		h.logger.Error("failed to build dashboard overview", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve dashboard overview")
		return
	}
	respondJSON(w, http.StatusOK, overview)
}

// InventoryInsight returns one generated inventory observation
func (h *DashboardHandler) InventoryInsight(w http.ResponseWriter, r *http.Request) {
	insight, err := h.dashboardService.InventoryInsight(r.Context())
	if err != nil {
		h.logger.Error("failed to generate inventory insight", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to generate inventory insights")
		return
	}
	respondJSON(w, http.StatusOK, insight)
}
