package domain

import "time"

// RateSnapshot holds one fetch of the provider's conversion table.
// Rates maps a currency code to units of that currency per 1 INR.
// A snapshot is replaced wholesale on refresh and never partially updated.
type RateSnapshot struct {
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetchedAt"`
}

// Age returns how old the snapshot is relative to now.
func (s *RateSnapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.FetchedAt)
}
