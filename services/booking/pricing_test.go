package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePricing(t *testing.T) {
	tests := []struct {
		name       string
		hourlyRate float64
		duration   int
		feeRate    float64
		base       float64
		fee        float64
		total      float64
	}{
		{"whole hour", 50, 60, 0.10, 50, 5, 55},
		{"ninety minutes", 50, 90, 0.10, 75, 7.5, 82.5},
		{"rounds to cents", 33.33, 45, 0.10, 25, 2.5, 27.5},
		{"odd rate", 19.99, 30, 0.15, 10, 1.5, 11.5},
		{"zero fee", 80, 120, 0, 160, 0, 160},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := ComputePricing(tc.hourlyRate, tc.duration, tc.feeRate)
			assert.Equal(t, tc.base, p.BasePrice)
			assert.Equal(t, tc.fee, p.ServiceFee)
			assert.Equal(t, tc.total, p.Total)
		})
	}
}

func TestComputePricingTotalIsBasePlusFee(t *testing.T) {
	for _, rate := range []float64{12.34, 50, 99.99, 150.01} {
		for _, dur := range []int{15, 30, 45, 60, 75, 90, 240} {
			p := ComputePricing(rate, dur, 0.10)
			assert.Equal(t, roundCents(p.BasePrice+p.ServiceFee), p.Total,
				"rate=%v dur=%d", rate, dur)
		}
	}
}
