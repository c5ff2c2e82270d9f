package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingType string

const (
	BookingFlight BookingType = "flight"
	BookingHotel  BookingType = "hotel"
	BookingCar    BookingType = "car"
)

func ParseBookingType(s string) (BookingType, bool) {
	switch BookingType(s) {
	case BookingFlight, BookingHotel, BookingCar:
		return BookingType(s), true
	default:
		return "", false
	}
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// BookingDetails is the tagged union behind a booking's type-specific
// payload. Exactly one concrete schema exists per booking type.
type BookingDetails interface {
	BookingType() BookingType
}

type FlightDetails struct {
	FlightID   string `bson:"flightId" json:"flightId"`
	From       string `bson:"from" json:"from"`
	To         string `bson:"to" json:"to"`
	Date       string `bson:"date" json:"date"`
	Passengers int    `bson:"passengers" json:"passengers"`
}

func (FlightDetails) BookingType() BookingType { return BookingFlight }

type HotelDetails struct {
	HotelID  string `bson:"hotelId" json:"hotelId"`
	Location string `bson:"location" json:"location"`
	CheckIn  string `bson:"checkIn" json:"checkIn"`
	CheckOut string `bson:"checkOut" json:"checkOut"`
	Guests   int    `bson:"guests" json:"guests"`
	Rooms    int    `bson:"rooms" json:"rooms"`
}

func (HotelDetails) BookingType() BookingType { return BookingHotel }

type CarDetails struct {
	CarID       string `bson:"carId" json:"carId"`
	Location    string `bson:"location" json:"location"`
	PickUpDate  string `bson:"pickUpDate" json:"pickUpDate"`
	DropOffDate string `bson:"dropOffDate" json:"dropOffDate"`
	PickUpTime  string `bson:"pickUpTime" json:"pickUpTime"`
	DropOffTime string `bson:"dropOffTime" json:"dropOffTime"`
}

func (CarDetails) BookingType() BookingType { return BookingCar }

// ParseBookingDetails decodes the raw details payload into the variant
// selected by the booking type.
func ParseBookingDetails(t BookingType, raw json.RawMessage) (BookingDetails, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, Invalid("Missing required fields")
	}

	switch t {
	case BookingFlight:
		var d FlightDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, Invalid("Invalid booking details")
		}
		return d, nil
	case BookingHotel:
		var d HotelDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, Invalid("Invalid booking details")
		}
		return d, nil
	case BookingCar:
		var d CarDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, Invalid("Invalid booking details")
		}
		return d, nil
	default:
		return nil, Invalid("Missing required fields")
	}
}

// DecodeStoredDetails is ParseBookingDetails for documents read back
// from the store.
func DecodeStoredDetails(t BookingType, raw bson.Raw) (BookingDetails, error) {
	switch t {
	case BookingFlight:
		var d FlightDetails
		if err := bson.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode flight details: %w", err)
		}
		return d, nil
	case BookingHotel:
		var d HotelDetails
		if err := bson.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode hotel details: %w", err)
		}
		return d, nil
	case BookingCar:
		var d CarDetails
		if err := bson.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode car details: %w", err)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("unknown booking type %q", t)
	}
}

type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type      BookingType        `bson:"type" json:"type"`
	Details   BookingDetails     `bson:"details" json:"details"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	Status    BookingStatus      `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// BookingRequest is the wire shape of POST /api/bookings. Details stay
// raw until the type tag selects a schema.
type BookingRequest struct {
	Type    string          `json:"type"`
	Details json.RawMessage `json:"details"`
}
