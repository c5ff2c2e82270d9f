package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tripnest/tripnest-api/internal/domain"
)

func TestSearchFlights(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/flights/search" {
			t.Errorf("got path %q", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("got method %q", r.Method)
		}

		var q domain.FlightQuery
		if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
			t.Fatalf("decode query: %v", err)
		}
		if q.From != "NYC" || q.To != "LA" {
			t.Errorf("got query %+v", q)
		}

		json.NewEncoder(w).Encode([]domain.Flight{{ID: "TN123", Price: 299}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	flights, err := c.SearchFlights(context.Background(), domain.FlightQuery{
		From: "NYC", To: "LA", Date: "2025-07-01", Passengers: 2,
	})
	if err != nil {
		t.Fatalf("search flights: %v", err)
	}
	if len(flights) != 1 || flights[0].ID != "TN123" {
		t.Errorf("got flights %+v", flights)
	}
}

func TestCreateBookingRequiresSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("server must not be reached without a session token")
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.CreateBooking(context.Background(), domain.BookingFlight, domain.FlightDetails{FlightID: "TN123"})
	if !errors.Is(err, ErrNoSession) {
		t.Fatalf("got error %v, want ErrNoSession", err)
	}
}

func TestCreateBooking(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Errorf("got auth header %q", got)
		}

		var req domain.BookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Type != "flight" {
			t.Errorf("got type %q", req.Type)
		}

		json.NewEncoder(w).Encode(map[string]string{
			"message":   "Booking created successfully",
			"bookingId": "68b1c2d3e4f5a6b7c8d9e0f1",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, WithSessionToken("tok123"))
	id, err := c.CreateBooking(context.Background(), domain.BookingFlight, domain.FlightDetails{
		FlightID: "TN123", From: "NYC", To: "LA", Date: "2025-07-01", Passengers: 2,
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if id != "68b1c2d3e4f5a6b7c8d9e0f1" {
		t.Errorf("got booking id %q", id)
	}
}

func TestListBookingsDecodesDetailsUnion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id":"68b1c2d3e4f5a6b7c8d9e0f1","type":"flight","details":{"flightId":"TN123","from":"NYC","to":"LA","date":"2025-07-01","passengers":2},"userEmail":"jane@example.com","status":"pending"},
			{"id":"68b1c2d3e4f5a6b7c8d9e0f2","type":"car","details":{"carId":"1","location":"Paris","pickUpDate":"2025-07-02","dropOffDate":"2025-07-05"},"userEmail":"jane@example.com","status":"pending"}
		]`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithSessionToken("tok123"))
	bookings, err := c.ListBookings(context.Background())
	if err != nil {
		t.Fatalf("list bookings: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("got %d bookings", len(bookings))
	}

	fd, ok := bookings[0].Details.(domain.FlightDetails)
	if !ok {
		t.Fatalf("first booking details are %T, want FlightDetails", bookings[0].Details)
	}
	if fd.FlightID != "TN123" {
		t.Errorf("got flight id %q", fd.FlightID)
	}
	if _, ok := bookings[1].Details.(domain.CarDetails); !ok {
		t.Errorf("second booking details are %T, want CarDetails", bookings[1].Details)
	}
}

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Missing required fields"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.SearchFlights(context.Background(), domain.FlightQuery{})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got error %v, want APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("got status %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Missing required fields" {
		t.Errorf("got message %q", apiErr.Message)
	}
}

func TestAPIErrorFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Guide(context.Background(), "1")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got error %v, want APIError", err)
	}
	if apiErr.Message != "Internal Server Error" {
		t.Errorf("got message %q", apiErr.Message)
	}
}

func TestUpdateProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("got method %q", r.Method)
		}
		json.NewEncoder(w).Encode(domain.Profile{Email: "jane@example.com", Name: "Jane"})
	}))
	defer srv.Close()

	c := New(srv.URL, WithSessionToken("tok123"))
	name := "Jane"
	profile, err := c.UpdateProfile(context.Background(), domain.ProfileUpdate{Name: &name})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if profile.Name != "Jane" {
		t.Errorf("got name %q", profile.Name)
	}
}
