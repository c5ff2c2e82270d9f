package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tripnest/tripnest-api/internal/domain"
	"github.com/tripnest/tripnest-api/internal/http/response"
)

func (h *Handlers) SearchFlights(w http.ResponseWriter, r *http.Request) {
	var q domain.FlightQuery
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	flights, err := h.search.SearchFlights(r.Context(), q)
	if err != nil {
		writeServiceError(w, r, err, "Flights not found")
		return
	}

	response.JSON(w, http.StatusOK, flights)
}

func (h *Handlers) SearchCars(w http.ResponseWriter, r *http.Request) {
	var q domain.CarQuery
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	cars, err := h.search.SearchCars(r.Context(), q)
	if err != nil {
		writeServiceError(w, r, err, "Cars not found")
		return
	}

	response.JSON(w, http.StatusOK, cars)
}

func (h *Handlers) SearchHotels(w http.ResponseWriter, r *http.Request) {
	var q domain.HotelQuery
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	hotels, err := h.search.SearchHotels(r.Context(), q)
	if err != nil {
		writeServiceError(w, r, err, "Hotels not found")
		return
	}

	response.JSON(w, http.StatusOK, hotels)
}

func (h *Handlers) SearchGuides(w http.ResponseWriter, r *http.Request) {
	var q domain.GuideQuery
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	guides, err := h.search.SearchGuides(r.Context(), q)
	if err != nil {
		writeServiceError(w, r, err, "Guides not found")
		return
	}

	response.JSON(w, http.StatusOK, guides)
}

func (h *Handlers) GetGuide(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	guide, err := h.search.GuideByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Guide not found")
		return
	}

	response.JSON(w, http.StatusOK, guide)
}
