package handler

import (
	"errors"
	"net/http"

	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/service"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests for purchase orders and their lines
type OrderHandler struct {
	orderService *service.OrderService
	logger       *zap.Logger
}

// NewOrderHandler creates a new order handler instance
func NewOrderHandler(orderService *service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{orderService: orderService, logger: logger}
}

// List returns all orders
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

// GetByID returns one order
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	order, err := h.orderService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondWithError(w, http.StatusNotFound, "Order not found")
			return
		}
		h.logger.Error("failed to get order", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get order")
		return
	}
	respondJSON(w, http.StatusOK, order)
}

// Create creates a new order
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	order, err := h.orderService.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSupplierNotFound):
			respondWithError(w, http.StatusBadRequest, "Referenced supplier does not exist")
		case errors.Is(err, service.ErrLocationNotFound):
			respondWithError(w, http.StatusBadRequest, "Referenced location does not exist")
		case errors.Is(err, service.ErrInvalidOrderStatus):
			respondWithError(w, http.StatusBadRequest, "Invalid order status")
		default:
			h.logger.Error("failed to create order", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to create order")
		}
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

// Update partially updates an order
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var req domain.UpdateOrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	order, err := h.orderService.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondWithError(w, http.StatusNotFound, "Order not found")
		case errors.Is(err, service.ErrSupplierNotFound):
			respondWithError(w, http.StatusBadRequest, "Referenced supplier does not exist")
		case errors.Is(err, service.ErrLocationNotFound):
			respondWithError(w, http.StatusBadRequest, "Referenced location does not exist")
		case errors.Is(err, service.ErrInvalidOrderStatus):
			respondWithError(w, http.StatusBadRequest, "Invalid order status")
		default:
			h.logger.Error("failed to update order", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to update order")
		}
		return
	}
	respondJSON(w, http.StatusOK, order)
}

// Delete removes an order
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	if err := h.orderService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondWithError(w, http.StatusNotFound, "Order not found")
			return
		}
		h.logger.Error("failed to delete order", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete order")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// ListItems returns the line items of an order
func (h *OrderHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	items, err := h.orderService.ListItems(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondWithError(w, http.StatusNotFound, "Order not found")
			return
		}
		h.logger.Error("failed to list order items", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve order items")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// AddItem appends a product line to an order
func (h *OrderHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var req domain.CreateOrderItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.orderService.AddItem(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondWithError(w, http.StatusNotFound, "Order not found")
		case errors.Is(err, service.ErrProductNotFound):
			respondWithError(w, http.StatusBadRequest, "Referenced product does not exist")
		default:
			h.logger.Error("failed to add order item", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to add order item")
		}
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

// UpdateItem partially updates an order line
func (h *OrderHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "itemId")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order item ID format")
		return
	}

	var req domain.UpdateOrderItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.orderService.UpdateItem(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrOrderItemNotFound) {
			respondWithError(w, http.StatusNotFound, "Order item not found")
			return
		}
		h.logger.Error("failed to update order item", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to update order item")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// DeleteItem removes an order line
func (h *OrderHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "itemId")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order item ID format")
		return
	}

	if err := h.orderService.DeleteItem(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrOrderItemNotFound) {
			respondWithError(w, http.StatusNotFound, "Order item not found")
			return
		}
		h.logger.Error("failed to delete order item", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete order item")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
