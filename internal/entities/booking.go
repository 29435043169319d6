package entities

import "time"

// BookingView is a booking row joined with the slot and lot display fields
// the bookings list renders.
type BookingView struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	SlotID        string    `json:"slot_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	TotalCost     float64   `json:"total_cost"`
	Status        string    `json:"status"`
	VehicleNumber *string   `json:"vehicle_number"`
	CreatedAt     time.Time `json:"created_at"`
	SlotNumber    string    `json:"slot_number"`
	Floor         string    `json:"floor"`
	SlotType      string    `json:"slot_type"`
	LotName       string    `json:"lot_name"`
	LotAddress    string    `json:"lot_address"`
}

type CreateBookingRequest struct {
	SlotID        string    `json:"slot_id"`
	LotID         string    `json:"lot_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	VehicleNumber string    `json:"vehicle_number"`
}
