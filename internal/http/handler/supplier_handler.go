package handler

import (
	"errors"
	"net/http"

	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/service"
	"go.uber.org/zap"
)

// SupplierHandler handles HTTP requests for supplier operations
type SupplierHandler struct {
	supplierService *service.SupplierService
	logger          *zap.Logger
}

// NewSupplierHandler creates a new supplier handler instance
func NewSupplierHandler(supplierService *service.SupplierService, logger *zap.Logger) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService, logger: logger}
}

// List returns all suppliers
func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.supplierService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list suppliers", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve suppliers")
		return
	}
	respondJSON(w, http.StatusOK, suppliers)
}

// GetByID returns one supplier
func (h *SupplierHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid supplier ID format")
		return
	}

	supplier, err := h.supplierService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSupplierNotFound) {
			respondWithError(w, http.StatusNotFound, "Supplier not found")
			return
		}
		h.logger.Error("failed to get supplier", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get supplier")
		return
	}
	respondJSON(w, http.StatusOK, supplier)
}

// Create creates a new supplier
func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSupplierRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	supplier, err := h.supplierService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create supplier", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create supplier")
		return
	}
	respondJSON(w, http.StatusCreated, supplier)
}

// Update partially updates a supplier
func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid supplier ID format")
		return
	}

	var req domain.UpdateSupplierRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	supplier, err := h.supplierService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrSupplierNotFound) {
			respondWithError(w, http.StatusNotFound, "Supplier not found")
			return
		}
		h.logger.Error("failed to update supplier", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to update supplier")
		return
	}
	respondJSON(w, http.StatusOK, supplier)
}

// Delete removes a supplier
func (h *SupplierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid supplier ID format")
		return
	}

	if err := h.supplierService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrSupplierNotFound) {
			respondWithError(w, http.StatusNotFound, "Supplier not found")
			return
		}
		h.logger.Error("failed to delete supplier", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete supplier")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
