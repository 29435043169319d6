package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"parksmart/internal/db"
	"parksmart/internal/entities"
)

// BookingFilter is the explicit query-parameter object for booking reads.
// Zero-valued fields are not applied.
type BookingFilter struct {
	Status string
	UserID string
	SlotID string
}

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(database *sql.DB) *BookingRepository {
	return &BookingRepository{DB: database}
}

// ListBookings returns bookings matching the filter, joined with the slot
// and lot display fields.
func (r *BookingRepository) ListBookings(filter BookingFilter) ([]entities.BookingView, error) {
	query := `
		SELECT
			b.id, b.user_id, b.slot_id, b.start_time, b.end_time,
			b.total_cost, b.status, b.vehicle_number, b.created_at,
			s.slot_number, s.floor, s.slot_type,
			l.name AS lot_name, l.address AS lot_address
		FROM bookings b
		JOIN parking_slots s ON b.slot_id = s.id
		JOIN parking_lots l ON s.lot_id = l.id
		WHERE 1=1`

	var args []interface{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND b.status = $%d", len(args))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		query += fmt.Sprintf(" AND b.user_id = $%d", len(args))
	}
	if filter.SlotID != "" {
		args = append(args, filter.SlotID)
		query += fmt.Sprintf(" AND b.slot_id = $%d", len(args))
	}
	query += " ORDER BY b.created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer rows.Close()

	var bookings []entities.BookingView
	for rows.Next() {
		var b entities.BookingView
		var vehicle sql.NullString
		err := rows.Scan(
			&b.ID, &b.UserID, &b.SlotID, &b.StartTime, &b.EndTime,
			&b.TotalCost, &b.Status, &vehicle, &b.CreatedAt,
			&b.SlotNumber, &b.Floor, &b.SlotType,
			&b.LotName, &b.LotAddress,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning booking: %w", err)
		}
		if vehicle.Valid {
			b.VehicleNumber = &vehicle.String
		}
		bookings = append(bookings, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating booking rows: %w", err)
	}
	return bookings, nil
}

func (r *BookingRepository) CreateBooking(b *db.Booking) error {
	query := `
		INSERT INTO bookings
		(id, user_id, slot_id, start_time, end_time, total_cost, status, vehicle_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.DB.Exec(query,
		b.ID,
		b.UserID,
		b.SlotID,
		b.StartTime,
		b.EndTime,
		b.TotalCost,
		b.Status,
		b.VehicleNumber,
		b.CreatedAt,
		b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting booking: %w", err)
	}
	return nil
}

func (r *BookingRepository) GetBookingByID(id string) (*db.Booking, error) {
	var b db.Booking
	var vehicle sql.NullString
	query := `
		SELECT id, user_id, slot_id, start_time, end_time, total_cost, status, vehicle_number, created_at, updated_at
		FROM bookings WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(
		&b.ID, &b.UserID, &b.SlotID, &b.StartTime, &b.EndTime,
		&b.TotalCost, &b.Status, &vehicle, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking '%s' not found: %w", id, err)
		}
		return nil, fmt.Errorf("error querying booking: %w", err)
	}
	if vehicle.Valid {
		b.VehicleNumber = &vehicle.String
	}
	return &b, nil
}

// UpdateBookingStatus sets the status of the user's booking and returns the
// number of rows updated. Zero means no booking with that id belongs to the
// user.
func (r *BookingRepository) UpdateBookingStatus(id, userID, status string) (int64, error) {
	query := `UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2 AND user_id = $3`
	result, err := r.DB.Exec(query, status, id, userID)
	if err != nil {
		return 0, fmt.Errorf("error updating booking status: %w", err)
	}
	return result.RowsAffected()
}
