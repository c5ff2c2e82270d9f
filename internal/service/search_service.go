package service

import (
	"context"
	"fmt"

	"github.com/tripnest/tripnest-api/internal/domain"
	"github.com/tripnest/tripnest-api/internal/repo/mongodb"
	"github.com/tripnest/tripnest-api/internal/samples"
	"github.com/tripnest/tripnest-api/pkg/logger"
)

// SearchService runs the validate-query-fallback pattern shared by all
// four travel domains. Validation failures never reach the store; empty
// results are replaced by whatever the sample provider supplies.
type SearchService interface {
	SearchFlights(ctx context.Context, q domain.FlightQuery) ([]domain.Flight, error)
	SearchCars(ctx context.Context, q domain.CarQuery) ([]domain.Car, error)
	SearchHotels(ctx context.Context, q domain.HotelQuery) ([]domain.Hotel, error)
	SearchGuides(ctx context.Context, q domain.GuideQuery) ([]domain.Guide, error)
	GuideByID(ctx context.Context, id string) (*domain.Guide, error)
}

type searchService struct {
	catalog mongodb.CatalogRepository
	samples samples.Provider
}

func NewSearchService(catalog mongodb.CatalogRepository, provider samples.Provider) SearchService {
	return &searchService{
		catalog: catalog,
		samples: provider,
	}
}

func (s *searchService) SearchFlights(ctx context.Context, q domain.FlightQuery) ([]domain.Flight, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	flights, err := s.catalog.SearchFlights(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to search flights: %w", err)
	}

	if len(flights) == 0 {
		logger.DebugContext(ctx, "No stored flights matched, serving samples", "from", q.From, "to", q.To)
		return s.samples.Flights(q.From, q.To), nil
	}
	return flights, nil
}

func (s *searchService) SearchCars(ctx context.Context, q domain.CarQuery) ([]domain.Car, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	cars, err := s.catalog.SearchCars(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to search cars: %w", err)
	}

	if len(cars) == 0 {
		logger.DebugContext(ctx, "No stored cars matched, serving samples", "location", q.Location)
		return s.samples.Cars(), nil
	}
	return cars, nil
}

func (s *searchService) SearchHotels(ctx context.Context, q domain.HotelQuery) ([]domain.Hotel, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	hotels, err := s.catalog.SearchHotels(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to search hotels: %w", err)
	}

	if len(hotels) == 0 {
		logger.DebugContext(ctx, "No stored hotels matched, serving samples", "location", q.Location)
		return s.samples.Hotels(), nil
	}
	return hotels, nil
}

func (s *searchService) SearchGuides(ctx context.Context, q domain.GuideQuery) ([]domain.Guide, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	guides, err := s.catalog.SearchGuides(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to search guides: %w", err)
	}

	if len(guides) == 0 {
		logger.DebugContext(ctx, "No stored guides matched, serving samples", "destination", q.Destination)
		return s.samples.Guides(), nil
	}
	return guides, nil
}

func (s *searchService) GuideByID(ctx context.Context, id string) (*domain.Guide, error) {
	if id == "" {
		return nil, domain.Invalid("Guide ID is required")
	}

	guide, err := s.catalog.GuideByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guide: %w", err)
	}

	if guide == nil {
		if sample := s.samples.Guide(); sample != nil {
			return sample, nil
		}
		return nil, domain.ErrNotFound
	}
	return guide, nil
}
