package handler

import (
	"errors"
	"net/http"

	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/service"
	"go.uber.org/zap"
)

// LocationHandler handles HTTP requests for location operations
type LocationHandler struct {
	locationService  *service.LocationService
	inventoryService *service.InventoryService
	logger           *zap.Logger
}

// NewLocationHandler creates a new location handler instance
func NewLocationHandler(
	locationService *service.LocationService,
	inventoryService *service.InventoryService,
	logger *zap.Logger,
) *LocationHandler {
	return &LocationHandler{
		locationService:  locationService,
		inventoryService: inventoryService,
		logger:           logger,
	}
}

// List returns all locations
func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	locations, err := h.locationService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list locations", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve locations")
		return
	}
	respondJSON(w, http.StatusOK, locations)
}

// GetByID returns one location
func (h *LocationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid location ID format")
		return
	}

	location, err := h.locationService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			respondWithError(w, http.StatusNotFound, "Location not found")
			return
		}
		h.logger.Error("failed to get location", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get location")
		return
	}
	respondJSON(w, http.StatusOK, location)
}

// Inventory returns the joined inventory rows held at a location
func (h *LocationHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid location ID format")
		return
	}

	details, err := h.inventoryService.ListByLocation(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			respondWithError(w, http.StatusNotFound, "Location not found")
			return
		}
		h.logger.Error("failed to list location inventory", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve inventory")
		return
	}
	respondJSON(w, http.StatusOK, details)
}

// Create creates a new location
func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateLocationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	location, err := h.locationService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create location", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create location")
		return
	}
	respondJSON(w, http.StatusCreated, location)
}

// Update partially updates a location
func (h *LocationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid location ID format")
		return
	}

	var req domain.UpdateLocationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	location, err := h.locationService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			respondWithError(w, http.StatusNotFound, "Location not found")
			return
		}
		h.logger.Error("failed to update location", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to update location")
		return
	}
	respondJSON(w, http.StatusOK, location)
}

// Delete removes a location
func (h *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid location ID format")
		return
	}

	if err := h.locationService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			respondWithError(w, http.StatusNotFound, "Location not found")
			return
		}
		h.logger.Error("failed to delete location", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete location")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
