package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lifeofnimah/host-with-nimah/internal/metrics"
	"github.com/lifeofnimah/host-with-nimah/internal/model"
	"github.com/lifeofnimah/host-with-nimah/internal/usecase"
)

type BookingResponse struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
}

// CreateBooking accepts a booking request from the site's booking form.
// Validation failures return 400 with field-keyed error messages.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req model.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	booking, err := h.booking.SubmitBooking(r.Context(), req)
	if err != nil {
		var verrs usecase.ValidationErrors
		if errors.As(err, &verrs) {
			h.JSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  "validation failed",
				"fields": verrs,
			})
			return
		}
		h.Error(w, http.StatusInternalServerError, "failed to save booking")
		return
	}

	metrics.BookingsReceived.Inc()
	h.JSON(w, http.StatusCreated, BookingResponse{
		BookingID: booking.BookingID.String(),
		Status:    "received",
	})
}
