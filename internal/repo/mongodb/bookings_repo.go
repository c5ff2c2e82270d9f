package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tripnest/tripnest-api/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (string, error)
	ListByUser(ctx context.Context, email string, limit int) ([]domain.Booking, error)
}

type bookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &bookingRepository{col: db.Collection("bookings")}
}

// bookingDoc defers details decoding until the type tag is known.
type bookingDoc struct {
	ID        primitive.ObjectID   `bson:"_id"`
	Type      domain.BookingType   `bson:"type"`
	Details   bson.Raw             `bson:"details"`
	UserEmail string               `bson:"userEmail"`
	Status    domain.BookingStatus `bson:"status"`
	CreatedAt time.Time            `bson:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt"`
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.col.InsertOne(ctx, b)
	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	b.ID = oid
	return oid.Hex(), nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, email string, limit int) ([]domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{"userEmail": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []bookingDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, 0, len(docs))
	for _, d := range docs {
		details, err := domain.DecodeStoredDetails(d.Type, d.Details)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, domain.Booking{
			ID:        d.ID,
			Type:      d.Type,
			Details:   details,
			UserEmail: d.UserEmail,
			Status:    d.Status,
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		})
	}
	return bookings, nil
}
