package service

import (
	"strings"
	"time"

	"parksmart/internal/apperr"
	"parksmart/internal/db"

	"github.com/google/uuid"
)

// MaxComplaintLength is the hard cap on complaint descriptions. Longer text
// is truncated, not rejected.
const MaxComplaintLength = 500

type ComplaintStore interface {
	CreateComplaint(c *db.Complaint) error
}

type ComplaintService struct {
	Complaints ComplaintStore
}

func NewComplaintService(complaints ComplaintStore) *ComplaintService {
	return &ComplaintService{Complaints: complaints}
}

// SubmitComplaint records a free-text complaint against a booking. The
// description is trimmed, must be non-empty, and is truncated to
// MaxComplaintLength characters before persistence.
func (s *ComplaintService) SubmitComplaint(bookingID, description string) (*db.Complaint, error) {
	if bookingID == "" {
		return nil, apperr.BadRequest("booking_id is required")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, apperr.BadRequest("description is required")
	}
	if runes := []rune(description); len(runes) > MaxComplaintLength {
		description = string(runes[:MaxComplaintLength])
	}

	complaint := &db.Complaint{
		ID:          uuid.NewString(),
		BookingID:   bookingID,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Complaints.CreateComplaint(complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}
