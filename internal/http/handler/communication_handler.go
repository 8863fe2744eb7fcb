package handler

import (
	"errors"
	"net/http"

	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/service"
	"go.uber.org/zap"
)

// CommunicationHandler handles HTTP requests for agent chat threads
type CommunicationHandler struct {
	communicationService *service.CommunicationService
	logger               *zap.Logger
}

// NewCommunicationHandler creates a new communication handler instance
func NewCommunicationHandler(communicationService *service.CommunicationService, logger *zap.Logger) *CommunicationHandler {
	return &CommunicationHandler{communicationService: communicationService, logger: logger}
}

// List returns all threads, most recently active first
func (h *CommunicationHandler) List(w http.ResponseWriter, r *http.Request) {
	communications, err := h.communicationService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list communications", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve communications")
		return
	}
	respondJSON(w, http.StatusOK, communications)
}

// GetByID returns one thread
func (h *CommunicationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid communication ID format")
		return
	}

	communication, err := h.communicationService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCommunicationNotFound) {
			respondWithError(w, http.StatusNotFound, "Communication not found")
			return
		}
		h.logger.Error("failed to get communication", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get communication")
		return
	}
	respondJSON(w, http.StatusOK, communication)
}

// Create opens a new thread
func (h *CommunicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCommunicationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	communication, err := h.communicationService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create communication", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create communication thread")
		return
	}
	respondJSON(w, http.StatusCreated, communication)
}

// Update partially updates a thread
func (h *CommunicationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid communication ID format")
		return
	}

	var req domain.UpdateCommunicationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	communication, err := h.communicationService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrCommunicationNotFound) {
			respondWithError(w, http.StatusNotFound, "Communication not found")
			return
		}
		h.logger.Error("failed to update communication", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to update communication")
		return
	}
	respondJSON(w, http.StatusOK, communication)
}

// Delete removes a thread
func (h *CommunicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid communication ID format")
		return
	}

	if err := h.communicationService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrCommunicationNotFound) {
			respondWithError(w, http.StatusNotFound, "Communication not found")
			return
		}
		h.logger.Error("failed to delete communication", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete communication")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// ListMessages returns the transcript of a thread in chat order
func (h *CommunicationHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid communication ID format")
		return
	}

	messages, err := h.communicationService.ListMessages(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCommunicationNotFound) {
			respondWithError(w, http.StatusNotFound, "Communication not found")
			return
		}
		h.logger.Error("failed to list messages", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve messages")
		return
	}
	respondJSON(w, http.StatusOK, messages)
}

// PostMessage appends a message to a thread and returns it together with the
// synthesized agent reply
func (h *CommunicationHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid communication ID format")
		return
	}

	var req domain.PostMessageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	messages, err := h.communicationService.PostMessage(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrCommunicationNotFound) {
			respondWithError(w, http.StatusNotFound, "Communication not found")
			return
		}
		h.logger.Error("failed to post message", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to add message")
		return
	}
	respondJSON(w, http.StatusOK, messages)
}
