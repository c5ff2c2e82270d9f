package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/tripnest/tripnest-api/internal/domain"
	mw "github.com/tripnest/tripnest-api/internal/http/middleware"
	"github.com/tripnest/tripnest-api/internal/http/response"
)

func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity := mw.Identity(r)
	if identity == "" {
		response.Unauthorized(w)
		return
	}

	profile, err := h.profile.Get(r.Context(), identity)
	if err != nil {
		writeServiceError(w, r, err, "User not found")
		return
	}

	response.JSON(w, http.StatusOK, profile)
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity := mw.Identity(r)
	if identity == "" {
		response.Unauthorized(w)
		return
	}

	var patch domain.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	profile, err := h.profile.Update(r.Context(), identity, patch)
	if err != nil {
		writeServiceError(w, r, err, "User not found")
		return
	}

	response.JSON(w, http.StatusOK, profile)
}
