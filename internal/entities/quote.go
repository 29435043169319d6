package entities

import "time"

type QuoteRequest struct {
	LotID     string    `json:"lot_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type QuoteResponse struct {
	Hours      int     `json:"hours"`
	HourlyRate float64 `json:"hourly_rate"`
	TotalCost  float64 `json:"total_cost"`
}
