package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parksmart/internal/auth"
	"parksmart/internal/db"
	"parksmart/internal/entities"
	"parksmart/internal/repository"
	"parksmart/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLotStore struct {
	lot *db.ParkingLot
}

func (s *stubLotStore) ListLots() ([]db.ParkingLot, error) {
	return []db.ParkingLot{*s.lot}, nil
}

func (s *stubLotStore) GetLotByID(string) (*db.ParkingLot, error) {
	return s.lot, nil
}

func (s *stubLotStore) ListActiveSlots() ([]db.ParkingSlot, error) {
	return nil, nil
}

type stubBookingStore struct {
	created   *db.Booking
	cancelled string
}

func (s *stubBookingStore) ListBookings(repository.BookingFilter) ([]entities.BookingView, error) {
	return nil, nil
}

func (s *stubBookingStore) CreateBooking(b *db.Booking) error {
	s.created = b
	return nil
}

func (s *stubBookingStore) GetBookingByID(id string) (*db.Booking, error) {
	return &db.Booking{ID: id}, nil
}

func (s *stubBookingStore) UpdateBookingStatus(id, userID, status string) (int64, error) {
	s.cancelled = id
	return 1, nil
}

func newTestHandler(store *stubBookingStore, lot *db.ParkingLot) *BookingHandler {
	svc := service.NewBookingService(store, &stubLotStore{lot: lot}, nil, nil)
	return NewBookingHandler(svc)
}

func withSession(r *http.Request) *http.Request {
	sess := auth.Session{UserID: "u-1", Email: "ana@example.com", Name: "Ana"}
	return r.WithContext(auth.WithSession(r.Context(), sess))
}

func TestQuoteEndpoint(t *testing.T) {
	handler := newTestHandler(&stubBookingStore{}, &db.ParkingLot{ID: "lot-1", HourlyRate: 10})

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	body, _ := json.Marshal(entities.QuoteRequest{
		LotID:     "lot-1",
		StartTime: start,
		EndTime:   start.Add(61 * time.Minute),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings/quote", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Quote(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var quote entities.QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
	assert.Equal(t, 2, quote.Hours)
	assert.Equal(t, 20.0, quote.TotalCost)
}

func TestCreateBookingRequiresSession(t *testing.T) {
	handler := newTestHandler(&stubBookingStore{}, &db.ParkingLot{ID: "lot-1", HourlyRate: 10})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	handler.CreateBooking(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateBookingEndpoint(t *testing.T) {
	store := &stubBookingStore{}
	handler := newTestHandler(store, &db.ParkingLot{ID: "lot-1", HourlyRate: 5})

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	body, _ := json.Marshal(entities.CreateBookingRequest{
		SlotID:    "slot-1",
		LotID:     "lot-1",
		StartTime: start,
		EndTime:   start.Add(90 * time.Minute),
	})

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body)))
	rec := httptest.NewRecorder()
	handler.CreateBooking(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, store.created)
	assert.Equal(t, 10.0, store.created.TotalCost)
	assert.Equal(t, db.BookingStatusActive, store.created.Status)
}

func TestCancelBookingEndpoint(t *testing.T) {
	store := &stubBookingStore{}
	handler := newTestHandler(store, &db.ParkingLot{ID: "lot-1", HourlyRate: 5})

	r := mux.NewRouter()
	r.HandleFunc("/api/bookings/{id}", handler.CancelBooking).Methods("DELETE")

	req := withSession(httptest.NewRequest(http.MethodDelete, "/api/bookings/b-1", nil))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "b-1", store.cancelled)
}
