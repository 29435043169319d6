package entities

type BookingEmailData struct {
	UserName           string
	BookingID          string
	VehicleNumber      string
	StartTimeFormatted string
	EndTimeFormatted   string
	TotalCost          float64
	Status             string
	CurrentYear        int
}
