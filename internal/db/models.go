package db

import "time"

const (
	BookingStatusActive    = "active"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

const (
	SlotTypeStandard = "standard"
	SlotTypeCompact  = "compact"
	SlotTypeHandicap = "handicap"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type ParkingLot struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	TotalSlots int     `json:"total_slots"`
	HourlyRate float64 `json:"hourly_rate"`
}

type ParkingSlot struct {
	ID         string `json:"id"`
	LotID      string `json:"lot_id"`
	SlotNumber string `json:"slot_number"`
	Floor      string `json:"floor"`
	SlotType   string `json:"slot_type"`
	IsActive   bool   `json:"is_active"`
}

type Booking struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	SlotID        string    `json:"slot_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	TotalCost     float64   `json:"total_cost"`
	Status        string    `json:"status"`
	VehicleNumber *string   `json:"vehicle_number"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Complaint struct {
	ID          string    `json:"id"`
	BookingID   string    `json:"booking_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
