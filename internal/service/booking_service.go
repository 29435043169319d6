package service

import (
	"log"
	"strings"
	"time"

	"parksmart/internal/apperr"
	"parksmart/internal/auth"
	"parksmart/internal/db"
	"parksmart/internal/entities"
	"parksmart/internal/pricing"
	"parksmart/internal/repository"

	"github.com/google/uuid"
)

// UserStore looks up account details for notifications.
type UserStore interface {
	GetByID(id string) (*db.User, error)
}

type BookingService struct {
	Bookings BookingStore
	Lots     LotStore
	Users    UserStore
	Notifier *BookingNotifier
}

func NewBookingService(bookings BookingStore, lots LotStore, users UserStore, notifier *BookingNotifier) *BookingService {
	return &BookingService{
		Bookings: bookings,
		Lots:     lots,
		Users:    users,
		Notifier: notifier,
	}
}

// Quote computes the charge the booking form previews. It uses the same
// calculation the create path persists, so preview and charge always match.
func (s *BookingService) Quote(req entities.QuoteRequest) (*entities.QuoteResponse, error) {
	if req.LotID == "" {
		return nil, apperr.BadRequest("lot_id is required")
	}
	lot, err := s.Lots.GetLotByID(req.LotID)
	if err != nil {
		return nil, apperr.NotFound("parking lot not found")
	}
	return &entities.QuoteResponse{
		Hours:      pricing.BillableHours(req.StartTime, req.EndTime),
		HourlyRate: lot.HourlyRate,
		TotalCost:  pricing.Cost(req.StartTime, req.EndTime, lot.HourlyRate),
	}, nil
}

// CreateBooking inserts a new active booking with a server-derived total
// cost. Availability is a slot-ID membership snapshot on the dashboard; no
// time-overlap check happens here.
func (s *BookingService) CreateBooking(sess auth.Session, req entities.CreateBookingRequest) (*db.Booking, error) {
	if req.SlotID == "" || req.LotID == "" {
		return nil, apperr.BadRequest("slot_id and lot_id are required")
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return nil, apperr.BadRequest("start_time and end_time are required")
	}

	lot, err := s.Lots.GetLotByID(req.LotID)
	if err != nil {
		return nil, apperr.NotFound("parking lot not found")
	}

	var vehicle *string
	if v := strings.TrimSpace(req.VehicleNumber); v != "" {
		vehicle = &v
	}

	now := time.Now().UTC()
	booking := &db.Booking{
		ID:            uuid.NewString(),
		UserID:        sess.UserID,
		SlotID:        req.SlotID,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		TotalCost:     pricing.Cost(req.StartTime, req.EndTime, lot.HourlyRate),
		Status:        db.BookingStatusActive,
		VehicleNumber: vehicle,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Bookings.CreateBooking(booking); err != nil {
		log.Printf("Error creating booking in repository: %v", err)
		return nil, err
	}

	s.notify(sess.UserID, booking, "confirmed")
	return booking, nil
}

// CancelBooking transitions the caller's booking to cancelled. The row is
// never deleted.
func (s *BookingService) CancelBooking(sess auth.Session, bookingID string) error {
	updated, err := s.Bookings.UpdateBookingStatus(bookingID, sess.UserID, db.BookingStatusCancelled)
	if err != nil {
		return err
	}
	if updated == 0 {
		return apperr.NotFound("booking not found")
	}

	if s.Notifier != nil {
		if booking, err := s.Bookings.GetBookingByID(bookingID); err == nil {
			s.notify(sess.UserID, booking, "cancelled")
		}
	}
	return nil
}

// ListUserBookings returns the caller's active bookings, joined with slot
// and lot display fields.
func (s *BookingService) ListUserBookings(userID string) ([]entities.BookingView, error) {
	return s.Bookings.ListBookings(repository.BookingFilter{
		Status: db.BookingStatusActive,
		UserID: userID,
	})
}

func (s *BookingService) notify(userID string, booking *db.Booking, status string) {
	if s.Notifier == nil {
		return
	}
	user, err := s.Users.GetByID(userID)
	if err != nil {
		log.Printf("Could not load user %s for booking notification: %v", userID, err)
		return
	}
	s.Notifier.Notify(user, booking, status)
}
