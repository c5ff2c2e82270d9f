package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tripnest/tripnest-api/internal/domain"
	"github.com/tripnest/tripnest-api/internal/mailer"
	"github.com/tripnest/tripnest-api/internal/repo/mongodb"
	"github.com/tripnest/tripnest-api/pkg/events"
	"github.com/tripnest/tripnest-api/pkg/logger"
)

// Bookings owns the most-recent window returned by List.
const recentBookingLimit = 10

type BookingService interface {
	Create(ctx context.Context, identity string, req *domain.BookingRequest) (*domain.Booking, error)
	List(ctx context.Context, identity string) ([]domain.Booking, error)
}

type bookingService struct {
	bookingRepo mongodb.BookingRepository
	eventBus    events.Publisher
	mail        mailer.Service
}

func NewBookingService(bookingRepo mongodb.BookingRepository, eventBus events.Publisher, mail mailer.Service) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		eventBus:    eventBus,
		mail:        mail,
	}
}

func (s *bookingService) Create(ctx context.Context, identity string, req *domain.BookingRequest) (*domain.Booking, error) {
	if req.Type == "" || len(req.Details) == 0 {
		return nil, domain.Invalid("Missing required fields")
	}

	bookingType, ok := domain.ParseBookingType(req.Type)
	if !ok {
		return nil, domain.Invalid("Missing required fields")
	}

	details, err := domain.ParseBookingDetails(bookingType, req.Details)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &domain.Booking{
		Type:      bookingType,
		Details:   details,
		UserEmail: identity,
		Status:    domain.BookingPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	event := events.BookingCreatedEvent{
		BookingID:   id,
		BookingType: string(booking.Type),
		UserEmail:   booking.UserEmail,
		CreatedAt:   booking.CreatedAt,
	}
	if err := s.eventBus.Publish(ctx, events.BookingCreated, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish booking created event", "error", err, "booking_id", id)
	}

	if err := s.mail.SendBookingReceived(identity, id, string(booking.Type)); err != nil {
		logger.ErrorContext(ctx, "Failed to send booking received email", "error", err, "booking_id", id)
	}

	return booking, nil
}

func (s *bookingService) List(ctx context.Context, identity string) ([]domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, identity, recentBookingLimit)
}
