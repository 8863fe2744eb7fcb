package handler

import (
	"errors"
	"net/http"

	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/service"
	"go.uber.org/zap"
)

// ForecastHandler handles HTTP requests for demand forecasts
type ForecastHandler struct {
	forecastService *service.ForecastService
	logger          *zap.Logger
}

// NewForecastHandler creates a new forecast handler instance
func NewForecastHandler(forecastService *service.ForecastService, logger *zap.Logger) *ForecastHandler {
	return &ForecastHandler{forecastService: forecastService, logger: logger}
}

// List returns all forecasts, newest first
func (h *ForecastHandler) List(w http.ResponseWriter, r *http.Request) {
	forecasts, err := h.forecastService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list forecasts", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve forecasts")
		return
	}
	respondJSON(w, http.StatusOK, forecasts)
}

// GetByID returns one forecast
func (h *ForecastHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid forecast ID format")
		return
	}

	forecast, err := h.forecastService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrForecastNotFound) {
			respondWithError(w, http.StatusNotFound, "Forecast not found")
			return
		}
		h.logger.Error("failed to get forecast", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get forecast")
		return
	}
	respondJSON(w, http.StatusOK, forecast)
}

// Generate produces and stores a new 7-day forecast
func (h *ForecastHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req domain.GenerateForecastRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.forecastService.Generate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			respondWithError(w, http.StatusBadRequest, "Referenced product does not exist")
		case errors.Is(err, service.ErrLocationNotFound):
			respondWithError(w, http.StatusBadRequest, "Referenced location does not exist")
		default:
			h.logger.Error("failed to generate forecast", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to generate forecast")
		}
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// Delete removes a forecast
func (h *ForecastHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid forecast ID format")
		return
	}

	if err := h.forecastService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrForecastNotFound) {
			respondWithError(w, http.StatusNotFound, "Forecast not found")
			return
		}
		h.logger.Error("failed to delete forecast", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete forecast")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
