package repositories

import "context"

// RateProvider fetches the latest conversion table from the external
// exchange-rate service. The returned map is keyed by currency code with
// values in units of foreign currency per 1 INR.
type RateProvider interface {
	FetchLatest(ctx context.Context) (map[string]float64, error)
}
