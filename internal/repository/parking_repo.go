package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"parksmart/internal/db"
)

// ParkingRepository reads the lot and slot catalog. Lots and slots are
// managed externally; this layer never writes them.
type ParkingRepository struct {
	DB *sql.DB
}

func NewParkingRepository(database *sql.DB) *ParkingRepository {
	return &ParkingRepository{DB: database}
}

func (r *ParkingRepository) ListLots() ([]db.ParkingLot, error) {
	query := `SELECT id, name, address, total_slots, hourly_rate FROM parking_lots ORDER BY name`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying parking lots: %w", err)
	}
	defer rows.Close()

	var lots []db.ParkingLot
	for rows.Next() {
		var lot db.ParkingLot
		if err := rows.Scan(&lot.ID, &lot.Name, &lot.Address, &lot.TotalSlots, &lot.HourlyRate); err != nil {
			return nil, fmt.Errorf("error scanning parking lot: %w", err)
		}
		lots = append(lots, lot)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating parking lot rows: %w", err)
	}
	return lots, nil
}

func (r *ParkingRepository) GetLotByID(id string) (*db.ParkingLot, error) {
	var lot db.ParkingLot
	query := `SELECT id, name, address, total_slots, hourly_rate FROM parking_lots WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&lot.ID, &lot.Name, &lot.Address, &lot.TotalSlots, &lot.HourlyRate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("parking lot '%s' not found: %w", id, err)
		}
		return nil, fmt.Errorf("error querying parking lot: %w", err)
	}
	return &lot, nil
}

func (r *ParkingRepository) ListActiveSlots() ([]db.ParkingSlot, error) {
	query := `
		SELECT id, lot_id, slot_number, floor, slot_type, is_active
		FROM parking_slots
		WHERE is_active = TRUE
		ORDER BY lot_id, slot_number`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying parking slots: %w", err)
	}
	defer rows.Close()

	var slots []db.ParkingSlot
	for rows.Next() {
		var slot db.ParkingSlot
		if err := rows.Scan(&slot.ID, &slot.LotID, &slot.SlotNumber, &slot.Floor, &slot.SlotType, &slot.IsActive); err != nil {
			return nil, fmt.Errorf("error scanning parking slot: %w", err)
		}
		slots = append(slots, slot)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating parking slot rows: %w", err)
	}
	return slots, nil
}
