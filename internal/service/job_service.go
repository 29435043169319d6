package service

import (
	"fmt"
	"log"

	"parksmart/internal/db"
	"parksmart/internal/repository"
)

type JobService struct {
	Repo *repository.JobRepository
}

func NewJobService(repo *repository.JobRepository) *JobService {
	return &JobService{Repo: repo}
}

// CompleteExpiredBookings finds active bookings whose end time has passed
// and marks them completed, releasing their slots from the occupied set on
// the next fetch.
func (s *JobService) CompleteExpiredBookings() error {
	bookingIDs, err := s.Repo.GetActiveBookingIDsPastEndTime()
	if err != nil {
		return fmt.Errorf("cron job: failed to get active bookings past end time: %w", err)
	}

	if len(bookingIDs) == 0 {
		return nil
	}

	log.Printf("Cron Job: Found %d bookings to mark as 'completed'.", len(bookingIDs))

	if err := s.Repo.UpdateBookingStatuses(bookingIDs, db.BookingStatusCompleted); err != nil {
		return fmt.Errorf("cron job: failed to update booking statuses: %w", err)
	}
	return nil
}
