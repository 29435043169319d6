package repository

import (
	"database/sql"
	"fmt"

	"parksmart/internal/db"
)

type ComplaintRepository struct {
	DB *sql.DB
}

func NewComplaintRepository(database *sql.DB) *ComplaintRepository {
	return &ComplaintRepository{DB: database}
}

func (r *ComplaintRepository) CreateComplaint(c *db.Complaint) error {
	query := `
		INSERT INTO complaints (id, booking_id, description, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.DB.Exec(query, c.ID, c.BookingID, c.Description, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("error inserting complaint: %w", err)
	}
	return nil
}
