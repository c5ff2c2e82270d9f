package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tripnest/tripnest-api/internal/domain"
	"github.com/tripnest/tripnest-api/internal/http/handlers"
	sessionmw "github.com/tripnest/tripnest-api/internal/http/middleware"
	"github.com/tripnest/tripnest-api/internal/repo/mongodb"
	"github.com/tripnest/tripnest-api/internal/service"
	"github.com/tripnest/tripnest-api/pkg/auth"
	"github.com/tripnest/tripnest-api/pkg/events"
)

// ---------- Mocks ----------

type mockBookingRepo struct {
	bookings    []domain.Booking
	createCalls int
}

var _ mongodb.BookingRepository = (*mockBookingRepo)(nil)

func (m *mockBookingRepo) Create(_ context.Context, b *domain.Booking) (string, error) {
	m.createCalls++
	b.ID = primitive.NewObjectID()
	m.bookings = append(m.bookings, *b)
	return b.ID.Hex(), nil
}

func (m *mockBookingRepo) ListByUser(_ context.Context, email string, limit int) ([]domain.Booking, error) {
	var out []domain.Booking
	for i := len(m.bookings) - 1; i >= 0 && len(out) < limit; i-- {
		if m.bookings[i].UserEmail == email {
			out = append(out, m.bookings[i])
		}
	}
	return out, nil
}

type mockMailer struct {
	lastTo   string
	lastID   string
	lastType string
	sendErr  error
}

func (m *mockMailer) SendBookingReceived(toEmail, bookingID, bookingType string) error {
	m.lastTo = toEmail
	m.lastID = bookingID
	m.lastType = bookingType
	return m.sendErr
}

// ---------- Helpers ----------

func readerOf(s string) *strings.Reader {
	return strings.NewReader(s)
}

func newBookingRouter(repo mongodb.BookingRepository, mail *mockMailer) *chi.Mux {
	bookingService := service.NewBookingService(repo, events.NoopEventBus{}, mail)
	h := handlers.New(nil, bookingService, nil)

	r := chi.NewRouter()
	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(sessionmw.RequireSession(testSecret))
		r.Post("/", h.CreateBooking)
		r.Get("/", h.ListBookings)
	})
	return r
}

func sessionToken(t *testing.T, email string) string {
	t.Helper()
	token, err := auth.NewSessionToken(email, "Test User", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("mint session token: %v", err)
	}
	return token
}

func authedRequest(t *testing.T, method, path, email, body string) *http.Request {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, readerOf(body))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+sessionToken(t, email))
	return req
}

// ---------- Tests ----------

func TestCreateBookingUnauthenticated(t *testing.T) {
	repo := &mockBookingRepo{}
	router := newBookingRouter(repo, &mockMailer{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", readerOf(`{"type":"flight","details":{"flightId":"1"}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if repo.createCalls != 0 {
		t.Fatalf("expected no store mutation, got %d creates", repo.createCalls)
	}
}

func TestCreateBookingBadToken(t *testing.T) {
	repo := &mockBookingRepo{}
	router := newBookingRouter(repo, &mockMailer{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", readerOf(`{"type":"flight","details":{"flightId":"1"}}`))
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if repo.createCalls != 0 {
		t.Fatalf("expected no store mutation, got %d creates", repo.createCalls)
	}
}

func TestCreateBooking(t *testing.T) {
	repo := &mockBookingRepo{}
	mail := &mockMailer{}
	router := newBookingRouter(repo, mail)

	body := `{"type":"flight","details":{"flightId":"1","from":"NYC","to":"LA","date":"2024-06-01","passengers":2}}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/bookings", "rider@example.com", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		Message   string `json:"message"`
		BookingID string `json:"bookingId"`
	}
	decodeBody(t, rec, &resp)

	if resp.Message != "Booking created successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.BookingID == "" {
		t.Error("expected a booking id")
	}

	if len(repo.bookings) != 1 {
		t.Fatalf("expected 1 stored booking, got %d", len(repo.bookings))
	}
	stored := repo.bookings[0]
	if stored.UserEmail != "rider@example.com" {
		t.Errorf("booking owner %q should be the authenticated identity", stored.UserEmail)
	}
	if stored.Status != domain.BookingPending {
		t.Errorf("expected pending status, got %q", stored.Status)
	}
	if !stored.CreatedAt.Equal(stored.UpdatedAt) {
		t.Errorf("createdAt %v and updatedAt %v should match at creation", stored.CreatedAt, stored.UpdatedAt)
	}

	details, ok := stored.Details.(domain.FlightDetails)
	if !ok {
		t.Fatalf("expected flight details, got %T", stored.Details)
	}
	if details.FlightID != "1" || details.Passengers != 2 {
		t.Errorf("unexpected details %+v", details)
	}

	if mail.lastTo != "rider@example.com" || mail.lastID != resp.BookingID {
		t.Errorf("booking email went to %q for %q", mail.lastTo, mail.lastID)
	}
}

func TestCreateBookingMissingFields(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no type", `{"details":{"carId":"2"}}`},
		{"no details", `{"type":"car"}`},
		{"null details", `{"type":"car","details":null}`},
		{"unknown type", `{"type":"cruise","details":{"shipId":"9"}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockBookingRepo{}
			router := newBookingRouter(repo, &mockMailer{})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/bookings", "rider@example.com", tc.body))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d (body: %s)", rec.Code, rec.Body.String())
			}
			if repo.createCalls != 0 {
				t.Fatalf("expected no store mutation, got %d creates", repo.createCalls)
			}
		})
	}
}

func TestCreateBookingVariants(t *testing.T) {
	cases := []struct {
		name string
		body string
		want domain.BookingType
	}{
		{"hotel", `{"type":"hotel","details":{"hotelId":"1","location":"Paris","checkIn":"2024-06-01","checkOut":"2024-06-03","guests":2,"rooms":1}}`, domain.BookingHotel},
		{"car", `{"type":"car","details":{"carId":"2","location":"Paris","pickUpDate":"2024-06-01","dropOffDate":"2024-06-03","pickUpTime":"10:00","dropOffTime":"10:00"}}`, domain.BookingCar},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockBookingRepo{}
			router := newBookingRouter(repo, &mockMailer{})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/bookings", "rider@example.com", tc.body))

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d (body: %s)", rec.Code, rec.Body.String())
			}
			if len(repo.bookings) != 1 || repo.bookings[0].Type != tc.want {
				t.Fatalf("expected a stored %s booking, got %+v", tc.want, repo.bookings)
			}
		})
	}
}

func TestListBookingsMostRecentTen(t *testing.T) {
	repo := &mockBookingRepo{}
	router := newBookingRouter(repo, &mockMailer{})

	for i := 0; i < 12; i++ {
		repo.bookings = append(repo.bookings, domain.Booking{
			ID:        primitive.NewObjectID(),
			Type:      domain.BookingFlight,
			Details:   domain.FlightDetails{FlightID: "1"},
			UserEmail: "rider@example.com",
			Status:    domain.BookingPending,
			CreatedAt: time.Now().Add(time.Duration(i) * time.Minute),
			UpdatedAt: time.Now().Add(time.Duration(i) * time.Minute),
		})
	}
	repo.bookings = append(repo.bookings, domain.Booking{
		ID:        primitive.NewObjectID(),
		Type:      domain.BookingCar,
		Details:   domain.CarDetails{CarID: "2"},
		UserEmail: "other@example.com",
		Status:    domain.BookingPending,
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/bookings", "rider@example.com", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var bookings []struct {
		UserEmail string `json:"userEmail"`
	}
	decodeBody(t, rec, &bookings)

	if len(bookings) != 10 {
		t.Fatalf("expected the 10 most recent bookings, got %d", len(bookings))
	}
	for _, b := range bookings {
		if b.UserEmail != "rider@example.com" {
			t.Errorf("listing leaked a booking owned by %q", b.UserEmail)
		}
	}
}

func TestListBookingsUnauthenticated(t *testing.T) {
	router := newBookingRouter(&mockBookingRepo{}, &mockMailer{})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
