package handler

import (
	"net/http"
	"strconv"

	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/service"
	"go.uber.org/zap"
)

// ActivityHandler handles HTTP requests for the agent activity ledger
type ActivityHandler struct {
	activityService *service.ActivityService
	logger          *zap.Logger
}

// NewActivityHandler creates a new activity handler instance
func NewActivityHandler(activityService *service.ActivityService, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{activityService: activityService, logger: logger}
}

// ListRecent returns the newest ledger entries, optionally limited by the
// limit query parameter
func (h *ActivityHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	activities, err := h.activityService.ListRecent(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to list agent activities", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve agent activities")
		return
	}
	respondJSON(w, http.StatusOK, activities)
}

// Create appends an entry to the ledger
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateActivityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	activity, err := h.activityService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create agent activity", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create agent activity")
		return
	}
	respondJSON(w, http.StatusCreated, activity)
}
