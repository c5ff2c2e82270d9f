package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tripnest/tripnest-api/internal/domain"
)

// CatalogRepository serves the read-only travel inventory: flights,
// cars, hotels and guides. Text fields match by case-insensitive
// substring, flight dates by exact equality, guide categories by
// array membership.
type CatalogRepository interface {
	SearchFlights(ctx context.Context, q domain.FlightQuery) ([]domain.Flight, error)
	SearchCars(ctx context.Context, q domain.CarQuery) ([]domain.Car, error)
	SearchHotels(ctx context.Context, q domain.HotelQuery) ([]domain.Hotel, error)
	SearchGuides(ctx context.Context, q domain.GuideQuery) ([]domain.Guide, error)
	GuideByID(ctx context.Context, id string) (*domain.Guide, error)
}

type catalogRepository struct {
	flights *mongo.Collection
	cars    *mongo.Collection
	hotels  *mongo.Collection
	guides  *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) CatalogRepository {
	return &catalogRepository{
		flights: db.Collection("flights"),
		cars:    db.Collection("cars"),
		hotels:  db.Collection("hotels"),
		guides:  db.Collection("guides"),
	}
}

func containsCI(s string) primitive.Regex {
	return primitive.Regex{Pattern: s, Options: "i"}
}

func (r *catalogRepository) SearchFlights(ctx context.Context, q domain.FlightQuery) ([]domain.Flight, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	filter := bson.M{
		"departure.city": containsCI(q.From),
		"arrival.city":   containsCI(q.To),
		"date":           q.Date,
	}

	cur, err := r.flights.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var flights []domain.Flight
	if err := cur.All(ctx, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (r *catalogRepository) SearchCars(ctx context.Context, q domain.CarQuery) ([]domain.Car, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	filter := bson.M{
		"location":  containsCI(q.Location),
		"available": true,
	}

	cur, err := r.cars.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var cars []domain.Car
	if err := cur.All(ctx, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *catalogRepository) SearchHotels(ctx context.Context, q domain.HotelQuery) ([]domain.Hotel, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	filter := bson.M{
		"location":       containsCI(q.Location),
		"availableRooms": bson.M{"$gt": 0},
	}

	cur, err := r.hotels.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var hotels []domain.Hotel
	if err := cur.All(ctx, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *catalogRepository) SearchGuides(ctx context.Context, q domain.GuideQuery) ([]domain.Guide, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	filter := bson.M{
		"destination": containsCI(q.Destination),
	}
	if q.Category != "" {
		filter["categories"] = q.Category
	}

	cur, err := r.guides.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var guides []domain.Guide
	if err := cur.All(ctx, &guides); err != nil {
		return nil, err
	}
	return guides, nil
}

func (r *catalogRepository) GuideByID(ctx context.Context, id string) (*domain.Guide, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var g domain.Guide
	err := r.guides.FindOne(ctx, bson.M{"id": id}).Decode(&g)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}
