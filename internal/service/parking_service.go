package service

import (
	"context"
	"sort"

	"parksmart/internal/db"
	"parksmart/internal/entities"
	"parksmart/internal/repository"

	"golang.org/x/sync/errgroup"
)

// LotStore reads the parking catalog.
type LotStore interface {
	ListLots() ([]db.ParkingLot, error)
	GetLotByID(id string) (*db.ParkingLot, error)
	ListActiveSlots() ([]db.ParkingSlot, error)
}

// BookingStore is the single fetch/write capability for bookings; list
// reads go through the BookingFilter query object.
type BookingStore interface {
	ListBookings(filter repository.BookingFilter) ([]entities.BookingView, error)
	CreateBooking(b *db.Booking) error
	GetBookingByID(id string) (*db.Booking, error)
	UpdateBookingStatus(id, userID, status string) (int64, error)
}

type ParkingService struct {
	Lots     LotStore
	Bookings BookingStore
}

func NewParkingService(lots LotStore, bookings BookingStore) *ParkingService {
	return &ParkingService{Lots: lots, Bookings: bookings}
}

// Dashboard assembles the full dataset for the main view: all lots, active
// slots and active bookings are read concurrently, and the response is built
// only once all three reads have settled.
func (s *ParkingService) Dashboard(ctx context.Context, userID string) (*entities.DashboardResponse, error) {
	var (
		lots     []db.ParkingLot
		slots    []db.ParkingSlot
		bookings []entities.BookingView
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lots, err = s.Lots.ListLots()
		return err
	})
	g.Go(func() error {
		var err error
		slots, err = s.Lots.ListActiveSlots()
		return err
	})
	g.Go(func() error {
		var err error
		bookings, err = s.Bookings.ListBookings(repository.BookingFilter{Status: db.BookingStatusActive})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The occupied set spans every active booking; the bookings list shown
	// to the caller covers only their own.
	mine := make([]entities.BookingView, 0, len(bookings))
	for _, b := range bookings {
		if b.UserID == userID {
			mine = append(mine, b)
		}
	}

	return &entities.DashboardResponse{
		Lots:          lots,
		Slots:         slots,
		Bookings:      mine,
		BookedSlotIDs: BookedSlotIDs(bookings),
	}, nil
}

func (s *ParkingService) ListLots() ([]db.ParkingLot, error) {
	return s.Lots.ListLots()
}

func (s *ParkingService) ListActiveSlots() ([]db.ParkingSlot, error) {
	return s.Lots.ListActiveSlots()
}

// BookedSlotIDs derives the set of slot IDs considered occupied: a slot is
// unavailable iff some fetched booking references it. Membership only; the
// requested time windows are never consulted.
func BookedSlotIDs(bookings []entities.BookingView) []string {
	seen := make(map[string]struct{}, len(bookings))
	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		if _, ok := seen[b.SlotID]; ok {
			continue
		}
		seen[b.SlotID] = struct{}{}
		ids = append(ids, b.SlotID)
	}
	sort.Strings(ids)
	return ids
}
