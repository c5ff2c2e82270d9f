// Package client is a typed client for the TripNest API, one method per
// endpoint. Failures surface as a single human-readable message; calls
// that need a session refuse locally with ErrNoSession so callers can
// send the user to login instead of burning a round trip.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tripnest/tripnest-api/internal/domain"
)

// ErrNoSession means the call requires an authenticated session and no
// token was set on the client.
var ErrNoSession = errors.New("no session token set")

// APIError carries the server's message verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL      string
	httpClient   *http.Client
	sessionToken string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithSessionToken(token string) Option {
	return func(c *Client) { c.sessionToken = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetSessionToken installs the session token minted by the identity
// provider. An empty token logs the client out.
func (c *Client) SetSessionToken(token string) {
	c.sessionToken = token
}

func (c *Client) SearchFlights(ctx context.Context, q domain.FlightQuery) ([]domain.Flight, error) {
	var flights []domain.Flight
	if err := c.do(ctx, http.MethodPost, "/api/flights/search", q, &flights, false); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *Client) SearchCars(ctx context.Context, q domain.CarQuery) ([]domain.Car, error) {
	var cars []domain.Car
	if err := c.do(ctx, http.MethodPost, "/api/cars/search", q, &cars, false); err != nil {
		return nil, err
	}
	return cars, nil
}

func (c *Client) SearchHotels(ctx context.Context, q domain.HotelQuery) ([]domain.Hotel, error) {
	var hotels []domain.Hotel
	if err := c.do(ctx, http.MethodPost, "/api/hotels/search", q, &hotels, false); err != nil {
		return nil, err
	}
	return hotels, nil
}

func (c *Client) SearchGuides(ctx context.Context, q domain.GuideQuery) ([]domain.Guide, error) {
	var guides []domain.Guide
	if err := c.do(ctx, http.MethodPost, "/api/guides/search", q, &guides, false); err != nil {
		return nil, err
	}
	return guides, nil
}

func (c *Client) Guide(ctx context.Context, id string) (*domain.Guide, error) {
	var guide domain.Guide
	if err := c.do(ctx, http.MethodGet, "/api/guides/"+id, nil, &guide, false); err != nil {
		return nil, err
	}
	return &guide, nil
}

type createBookingResult struct {
	Message   string `json:"message"`
	BookingID string `json:"bookingId"`
}

// CreateBooking books the given details for the signed-in user and
// returns the new booking id.
func (c *Client) CreateBooking(ctx context.Context, bookingType domain.BookingType, details domain.BookingDetails) (string, error) {
	raw, err := json.Marshal(details)
	if err != nil {
		return "", fmt.Errorf("encode booking details: %w", err)
	}

	req := domain.BookingRequest{
		Type:    string(bookingType),
		Details: raw,
	}

	var result createBookingResult
	if err := c.do(ctx, http.MethodPost, "/api/bookings", req, &result, true); err != nil {
		return "", err
	}
	return result.BookingID, nil
}

func (c *Client) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	var raw []json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/bookings", nil, &raw, true); err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, 0, len(raw))
	for _, r := range raw {
		b, err := decodeBooking(r)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (c *Client) Profile(ctx context.Context) (*domain.Profile, error) {
	var profile domain.Profile
	if err := c.do(ctx, http.MethodGet, "/api/user/profile", nil, &profile, true); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdateProfile(ctx context.Context, patch domain.ProfileUpdate) (*domain.Profile, error) {
	var profile domain.Profile
	if err := c.do(ctx, http.MethodPut, "/api/user/profile", patch, &profile, true); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, needsSession bool) error {
	if needsSession && c.sessionToken == "" {
		return ErrNoSession
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.sessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.sessionToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr != nil || errBody.Message == "" {
			errBody.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: errBody.Message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// decodeBooking resolves the details union from the type tag on the way
// back in, mirroring what the server does when reading the store.
func decodeBooking(raw json.RawMessage) (domain.Booking, error) {
	var head struct {
		ID        string               `json:"id"`
		Type      domain.BookingType   `json:"type"`
		Details   json.RawMessage      `json:"details"`
		UserEmail string               `json:"userEmail"`
		Status    domain.BookingStatus `json:"status"`
		CreatedAt time.Time            `json:"createdAt"`
		UpdatedAt time.Time            `json:"updatedAt"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return domain.Booking{}, err
	}

	details, err := domain.ParseBookingDetails(head.Type, head.Details)
	if err != nil {
		return domain.Booking{}, err
	}

	b := domain.Booking{
		Type:      head.Type,
		Details:   details,
		UserEmail: head.UserEmail,
		Status:    head.Status,
		CreatedAt: head.CreatedAt,
		UpdatedAt: head.UpdatedAt,
	}
	if head.ID != "" {
		if oid, err := primitive.ObjectIDFromHex(head.ID); err == nil {
			b.ID = oid
		}
	}
	return b, nil
}
