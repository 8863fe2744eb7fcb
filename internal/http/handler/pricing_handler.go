package handler

import (
	"errors"
	"net/http"

	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/service"
	"go.uber.org/zap"
)

// PricingHandler handles HTTP requests for price optimizations
type PricingHandler struct {
	pricingService *service.PricingService
	logger         *zap.Logger
}

// NewPricingHandler creates a new pricing handler instance
func NewPricingHandler(pricingService *service.PricingService, logger *zap.Logger) *PricingHandler {
	return &PricingHandler{pricingService: pricingService, logger: logger}
}

// List returns all pending price suggestions joined with their product
func (h *PricingHandler) List(w http.ResponseWriter, r *http.Request) {
	optimizations, err := h.pricingService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list price optimizations", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve price optimizations")
		return
	}
	respondJSON(w, http.StatusOK, optimizations)
}

// GetByID returns one price suggestion
func (h *PricingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid price optimization ID format")
		return
	}

	opt, err := h.pricingService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrOptimizationNotFound) {
			respondWithError(w, http.StatusNotFound, "Price optimization not found")
			return
		}
		h.logger.Error("failed to get price optimization", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get price optimization")
		return
	}
	respondJSON(w, http.StatusOK, opt)
}

// Generate produces and stores a new pending price suggestion
func (h *PricingHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req domain.GeneratePriceOptimizationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	opt, err := h.pricingService.Generate(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondWithError(w, http.StatusBadRequest, "Referenced product does not exist")
			return
		}
		h.logger.Error("failed to generate price optimization", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to generate price optimization")
		return
	}
	respondJSON(w, http.StatusOK, opt)
}

// UpdateStatus moves a suggestion between pending, applied and dismissed
func (h *PricingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid price optimization ID format")
		return
	}

	var req domain.UpdatePriceOptimizationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	opt, err := h.pricingService.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrOptimizationNotFound) {
			respondWithError(w, http.StatusNotFound, "Price optimization not found")
			return
		}
		h.logger.Error("failed to update price optimization", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to update price optimization")
		return
	}
	respondJSON(w, http.StatusOK, opt)
}

// Delete removes a price suggestion
func (h *PricingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid price optimization ID format")
		return
	}

	if err := h.pricingService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrOptimizationNotFound) {
			respondWithError(w, http.StatusNotFound, "Price optimization not found")
			return
		}
		h.logger.Error("failed to delete price optimization", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete price optimization")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
