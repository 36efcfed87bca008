package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/lifeofnimah/host-with-nimah/internal/usecase"
)

// Handler contains shared dependencies for all HTTP handlers.
type Handler struct {
	chat    *usecase.ChatUsecase
	booking *usecase.BookingUsecase
}

// NewHandler creates a new Handler with the given usecases.
func NewHandler(chat *usecase.ChatUsecase, booking *usecase.BookingUsecase) *Handler {
	return &Handler{chat: chat, booking: booking}
}

// JSON sends a JSON response with the given status code.
func (h *Handler) JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Error sends a JSON error response with the given status code.
func (h *Handler) Error(w http.ResponseWriter, status int, message string) {
	h.JSON(w, status, map[string]string{"error": message})
}
