// File: services/booking/pricing.go
package booking

import "math"

// Pricing is the breakdown stored on every booking.
type Pricing struct {
	BasePrice  float64
	ServiceFee float64
	Total      float64
}

// ComputePricing derives the booking price from the listing's hourly rate.
// Amounts are rounded to cents; the total is always base + fee.
func ComputePricing(hourlyRate float64, durationMinutes int, feeRate float64) Pricing {
	base := roundCents(hourlyRate * float64(durationMinutes) / 60)
	fee := roundCents(base * feeRate)
	return Pricing{
		BasePrice:  base,
		ServiceFee: fee,
		Total:      roundCents(base + fee),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
