package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/tripnest/tripnest-api/internal/domain"
	mw "github.com/tripnest/tripnest-api/internal/http/middleware"
	"github.com/tripnest/tripnest-api/internal/http/response"
)

type createBookingResponse struct {
	Message   string `json:"message"`
	BookingID string `json:"bookingId"`
}

func (h *Handlers) CreateBooking(w http.ResponseWriter, r *http.Request) {
	identity := mw.Identity(r)
	if identity == "" {
		response.Unauthorized(w)
		return
	}

	var req domain.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	booking, err := h.bookings.Create(r.Context(), identity, &req)
	if err != nil {
		writeServiceError(w, r, err, "Booking not found")
		return
	}

	response.JSON(w, http.StatusOK, createBookingResponse{
		Message:   "Booking created successfully",
		BookingID: booking.ID.Hex(),
	})
}

func (h *Handlers) ListBookings(w http.ResponseWriter, r *http.Request) {
	identity := mw.Identity(r)
	if identity == "" {
		response.Unauthorized(w)
		return
	}

	bookings, err := h.bookings.List(r.Context(), identity)
	if err != nil {
		writeServiceError(w, r, err, "Bookings not found")
		return
	}

	response.JSON(w, http.StatusOK, bookings)
}
