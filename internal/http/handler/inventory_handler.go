package handler

import (
	"errors"
	"net/http"

	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/service"
	"go.uber.org/zap"
)

// InventoryHandler handles HTTP requests for inventory operations
type InventoryHandler struct {
	inventoryService *service.InventoryService
	logger           *zap.Logger
}

// NewInventoryHandler creates a new inventory handler instance
func NewInventoryHandler(inventoryService *service.InventoryService, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService, logger: logger}
}

// List returns all inventory rows joined with product, location and status
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	details, err := h.inventoryService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list inventory", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve inventory")
		return
	}
	respondJSON(w, http.StatusOK, details)
}

// GetByID returns one joined inventory row
func (h *InventoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid inventory ID format")
		return
	}

	detail, err := h.inventoryService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrInventoryNotFound) {
			respondWithError(w, http.StatusNotFound, "Inventory item not found")
			return
		}
		h.logger.Error("failed to get inventory item", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get inventory item")
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

// Create creates a new inventory row
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateInventoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	detail, err := h.inventoryService.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			respondWithError(w, http.StatusBadRequest, "Referenced product does not exist")
		case errors.Is(err, service.ErrLocationNotFound):
			respondWithError(w, http.StatusBadRequest, "Referenced location does not exist")
		default:
			h.logger.Error("failed to create inventory item", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to create inventory item")
		}
		return
	}
	respondJSON(w, http.StatusCreated, detail)
}

// Update partially updates an inventory row
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid inventory ID format")
		return
	}

	var req domain.UpdateInventoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	detail, err := h.inventoryService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrInventoryNotFound) {
			respondWithError(w, http.StatusNotFound, "Inventory item not found")
			return
		}
		h.logger.Error("failed to update inventory item", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to update inventory item")
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

// Delete removes an inventory row
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid inventory ID format")
		return
	}

	if err := h.inventoryService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrInventoryNotFound) {
			respondWithError(w, http.StatusNotFound, "Inventory item not found")
			return
		}
		h.logger.Error("failed to delete inventory item", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete inventory item")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
