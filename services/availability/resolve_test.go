package availability

import (
	"testing"
	"time"

	"lipo/models"

	"github.com/stretchr/testify/assert"
)

func mondayTemplate() []models.ProviderAvailability {
	return []models.ProviderAvailability{
		{
			ProviderID:  "prov-1",
			DayOfWeek:   1, // Monday
			StartTime:   "09:00",
			EndTime:     "17:00",
			IsAvailable: true,
		},
	}
}

func TestResolveDayOverrideWinsOverTemplate(t *testing.T) {
	monday := time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		overrides []models.AvailabilityOverride
		want      bool
	}{
		{
			name: "blocked override beats available template",
			overrides: []models.AvailabilityOverride{
				{ProviderID: "prov-1", Date: "2025-09-08", Type: models.OverrideBlocked},
			},
			want: false,
		},
		{
			name: "booked override beats available template",
			overrides: []models.AvailabilityOverride{
				{ProviderID: "prov-1", Date: "2025-09-08", Type: models.OverrideBooked},
			},
			want: false,
		},
		{
			name: "break override beats available template",
			overrides: []models.AvailabilityOverride{
				{ProviderID: "prov-1", Date: "2025-09-08", Type: models.OverrideBreak},
			},
			want: false,
		},
		{
			name: "available override opens an otherwise closed day",
			overrides: []models.AvailabilityOverride{
				{ProviderID: "prov-1", Date: "2025-09-08", Type: models.OverrideAvailable},
			},
			want: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := resolveDay(monday, tc.overrides, mondayTemplate())
			assert.Equal(t, tc.want, res.available)
		})
	}
}

func TestResolveDayFallsBackToTemplate(t *testing.T) {
	monday := time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2025, 9, 9, 0, 0, 0, 0, time.UTC)

	resMon := resolveDay(monday, nil, mondayTemplate())
	assert.True(t, resMon.available, "template Monday should be available")

	// No template row for Tuesday at all.
	resTue := resolveDay(tuesday, nil, mondayTemplate())
	assert.False(t, resTue.available, "missing template row means unavailable")

	// Template row present but flagged off.
	closed := mondayTemplate()
	closed[0].IsAvailable = false
	resClosed := resolveDay(monday, nil, closed)
	assert.False(t, resClosed.available)
}

func TestResolveDayLatestCreatedOverrideWins(t *testing.T) {
	monday := time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	later := time.Date(2025, 9, 2, 10, 0, 0, 0, time.UTC)

	overrides := []models.AvailabilityOverride{
		{ProviderID: "prov-1", Date: "2025-09-08", Type: models.OverrideAvailable, CreatedAt: earlier},
		{ProviderID: "prov-1", Date: "2025-09-08", Type: models.OverrideBlocked, CreatedAt: later},
	}
	res := resolveDay(monday, overrides, mondayTemplate())
	assert.False(t, res.available, "the later-created blocked override should win")

	// Order in the slice must not matter.
	overrides[0], overrides[1] = overrides[1], overrides[0]
	res = resolveDay(monday, overrides, mondayTemplate())
	assert.False(t, res.available)
}

func TestResolveDayIgnoresWindowedOverridesAtDayLevel(t *testing.T) {
	monday := time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC)
	overrides := []models.AvailabilityOverride{
		{ProviderID: "prov-1", Date: "2025-09-08", Type: models.OverrideBreak, StartTime: "12:00", EndTime: "13:00"},
	}
	res := resolveDay(monday, overrides, mondayTemplate())
	assert.True(t, res.available, "a windowed override blocks time, not the whole day")
}
