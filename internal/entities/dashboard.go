package entities

import "parksmart/internal/db"

// DashboardResponse is the full dataset the main view renders. It is
// replaced wholesale on every fetch; there are no partial updates.
type DashboardResponse struct {
	Lots          []db.ParkingLot  `json:"lots"`
	Slots         []db.ParkingSlot `json:"slots"`
	Bookings      []BookingView    `json:"bookings"`
	BookedSlotIDs []string         `json:"booked_slot_ids"`
}
