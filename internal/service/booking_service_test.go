package service

import (
	"testing"
	"time"

	"parksmart/internal/apperr"
	"parksmart/internal/auth"
	"parksmart/internal/db"
	"parksmart/internal/entities"
	"parksmart/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock stores

type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) ListBookings(filter repository.BookingFilter) ([]entities.BookingView, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.BookingView), args.Error(1)
}

func (m *MockBookingStore) CreateBooking(b *db.Booking) error {
	args := m.Called(b)
	return args.Error(0)
}

func (m *MockBookingStore) GetBookingByID(id string) (*db.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.Booking), args.Error(1)
}

func (m *MockBookingStore) UpdateBookingStatus(id, userID, status string) (int64, error) {
	args := m.Called(id, userID, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockLotStore struct {
	mock.Mock
}

func (m *MockLotStore) ListLots() ([]db.ParkingLot, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.ParkingLot), args.Error(1)
}

func (m *MockLotStore) GetLotByID(id string) (*db.ParkingLot, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.ParkingLot), args.Error(1)
}

func (m *MockLotStore) ListActiveSlots() ([]db.ParkingSlot, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.ParkingSlot), args.Error(1)
}

var testSession = auth.Session{UserID: "u-1", Email: "ana@example.com", Name: "Ana"}

func TestCreateBookingDerivesCostFromRateAndWindow(t *testing.T) {
	bookings := new(MockBookingStore)
	lots := new(MockLotStore)

	lots.On("GetLotByID", "lot-1").Return(&db.ParkingLot{ID: "lot-1", HourlyRate: 5}, nil)

	var created *db.Booking
	bookings.On("CreateBooking", mock.AnythingOfType("*db.Booking")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*db.Booking)
	}).Return(nil)

	svc := NewBookingService(bookings, lots, nil, nil)

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	booking, err := svc.CreateBooking(testSession, entities.CreateBookingRequest{
		SlotID:    "slot-1",
		LotID:     "lot-1",
		StartTime: start,
		EndTime:   end,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	// 90 minutes at rate 5 bills 2 hours
	assert.Equal(t, 10.0, booking.TotalCost)
	assert.Equal(t, db.BookingStatusActive, booking.Status)
	assert.Equal(t, "u-1", booking.UserID)
	assert.Equal(t, "slot-1", booking.SlotID)
	assert.Nil(t, booking.VehicleNumber)
	bookings.AssertExpectations(t)
}

func TestCreateBookingKeepsVehicleNumber(t *testing.T) {
	bookings := new(MockBookingStore)
	lots := new(MockLotStore)

	lots.On("GetLotByID", "lot-1").Return(&db.ParkingLot{ID: "lot-1", HourlyRate: 10}, nil)
	bookings.On("CreateBooking", mock.AnythingOfType("*db.Booking")).Return(nil)

	svc := NewBookingService(bookings, lots, nil, nil)

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	booking, err := svc.CreateBooking(testSession, entities.CreateBookingRequest{
		SlotID:        "slot-1",
		LotID:         "lot-1",
		StartTime:     start,
		EndTime:       start.Add(time.Hour),
		VehicleNumber: "  ABC-1234  ",
	})
	require.NoError(t, err)
	require.NotNil(t, booking.VehicleNumber)
	assert.Equal(t, "ABC-1234", *booking.VehicleNumber)
}

func TestCreateBookingValidatesInput(t *testing.T) {
	svc := NewBookingService(new(MockBookingStore), new(MockLotStore), nil, nil)

	_, err := svc.CreateBooking(testSession, entities.CreateBookingRequest{LotID: "lot-1"})
	var httpErr *apperr.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)

	_, err = svc.CreateBooking(testSession, entities.CreateBookingRequest{SlotID: "slot-1", LotID: "lot-1"})
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
}

func TestQuoteAgreesWithPersistedCharge(t *testing.T) {
	bookings := new(MockBookingStore)
	lots := new(MockLotStore)

	lots.On("GetLotByID", "lot-1").Return(&db.ParkingLot{ID: "lot-1", HourlyRate: 7.5}, nil)

	var created *db.Booking
	bookings.On("CreateBooking", mock.AnythingOfType("*db.Booking")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*db.Booking)
	}).Return(nil)

	svc := NewBookingService(bookings, lots, nil, nil)

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(125 * time.Minute)

	quote, err := svc.Quote(entities.QuoteRequest{LotID: "lot-1", StartTime: start, EndTime: end})
	require.NoError(t, err)

	_, err = svc.CreateBooking(testSession, entities.CreateBookingRequest{
		SlotID:    "slot-1",
		LotID:     "lot-1",
		StartTime: start,
		EndTime:   end,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, quote.TotalCost, created.TotalCost)
	assert.Equal(t, 3, quote.Hours)
}

func TestCancelBookingUpdatesStatus(t *testing.T) {
	bookings := new(MockBookingStore)
	bookings.On("UpdateBookingStatus", "b-1", "u-1", db.BookingStatusCancelled).Return(int64(1), nil)

	svc := NewBookingService(bookings, new(MockLotStore), nil, nil)

	err := svc.CancelBooking(testSession, "b-1")
	require.NoError(t, err)
	bookings.AssertExpectations(t)
}

func TestCancelBookingNotFound(t *testing.T) {
	bookings := new(MockBookingStore)
	bookings.On("UpdateBookingStatus", "missing", "u-1", db.BookingStatusCancelled).Return(int64(0), nil)

	svc := NewBookingService(bookings, new(MockLotStore), nil, nil)

	err := svc.CancelBooking(testSession, "missing")
	var httpErr *apperr.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Code)
}

func TestListUserBookingsFiltersByCaller(t *testing.T) {
	bookings := new(MockBookingStore)
	expected := repository.BookingFilter{Status: db.BookingStatusActive, UserID: "u-1"}
	bookings.On("ListBookings", expected).Return([]entities.BookingView{{ID: "b-1"}}, nil)

	svc := NewBookingService(bookings, new(MockLotStore), nil, nil)

	list, err := svc.ListUserBookings("u-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
	bookings.AssertExpectations(t)
}
