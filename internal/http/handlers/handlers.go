package handlers

import (
	"errors"
	"net/http"

	"github.com/tripnest/tripnest-api/internal/domain"
	"github.com/tripnest/tripnest-api/internal/http/response"
	"github.com/tripnest/tripnest-api/internal/service"
	"github.com/tripnest/tripnest-api/pkg/logger"
)

type Handlers struct {
	search   service.SearchService
	bookings service.BookingService
	profile  service.ProfileService
}

func New(search service.SearchService, bookings service.BookingService, profile service.ProfileService) *Handlers {
	return &Handlers{
		search:   search,
		bookings: bookings,
		profile:  profile,
	}
}

// writeServiceError maps the error taxonomy onto status codes:
// validation 400, not-found 404, everything else 500 with the detail
// kept server-side.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	switch {
	case domain.IsValidation(err):
		response.BadRequest(w, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		response.NotFound(w, notFoundMsg)
	default:
		logger.ErrorContext(r.Context(), "Request failed", "error", err, "path", r.URL.Path)
		response.Internal(w)
	}
}
