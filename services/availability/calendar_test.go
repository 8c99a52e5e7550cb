package availability

import (
	"context"
	"testing"
	"time"

	"lipo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleCalendarMarksTodayExactlyOnce(t *testing.T) {
	now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)

	cal, err := AssembleCalendar("prov-1", 2025, 9, mondayTemplate(), nil, nil, 60, now)
	require.NoError(t, err)
	require.Len(t, cal.Days, 30)

	var todays int
	for _, d := range cal.Days {
		if d.IsToday {
			todays++
			assert.Equal(t, "2025-09-15", d.Date)
		}
	}
	assert.Equal(t, 1, todays, "exactly one day is today in the current month")

	// A different month never contains today.
	cal, err = AssembleCalendar("prov-1", 2025, 10, mondayTemplate(), nil, nil, 60, now)
	require.NoError(t, err)
	for _, d := range cal.Days {
		assert.False(t, d.IsToday)
	}
}

func TestAssembleCalendarPastDaysHaveNoSlots(t *testing.T) {
	now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)

	cal, err := AssembleCalendar("prov-1", 2025, 9, mondayTemplate(), nil, nil, 60, now)
	require.NoError(t, err)

	for _, d := range cal.Days {
		if d.IsPast {
			assert.Empty(t, d.AvailableSlots, "past day %s must not offer slots", d.Date)
		}
		if d.Date == "2025-09-08" {
			// A past Monday: the day reads as available, slots stay empty.
			assert.True(t, d.HasAvailability)
			assert.True(t, d.IsPast)
		}
	}
}

func TestAssembleCalendarBlockedMondayScenario(t *testing.T) {
	// Provider works Mondays 09:00-17:00; one Monday is blocked outright.
	now := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	overrides := []models.AvailabilityOverride{
		{ProviderID: "prov-1", Date: "2025-09-08", Type: models.OverrideBlocked, CreatedAt: now},
	}

	cal, err := AssembleCalendar("prov-1", 2025, 9, mondayTemplate(), overrides, nil, 60, now)
	require.NoError(t, err)

	mondays := map[string]bool{"2025-09-01": true, "2025-09-08": true, "2025-09-15": true, "2025-09-22": true, "2025-09-29": true}
	for _, d := range cal.Days {
		switch {
		case d.Date == "2025-09-08":
			assert.False(t, d.HasAvailability, "blocked Monday")
			assert.Empty(t, d.AvailableSlots)
		case mondays[d.Date]:
			assert.True(t, d.HasAvailability, "every other Monday stays open: %s", d.Date)
			assert.NotEmpty(t, d.AvailableSlots)
		default:
			assert.False(t, d.HasAvailability, "no template row for %s", d.Date)
		}
	}
}

func TestAssembleCalendarAttachesBookings(t *testing.T) {
	now := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{
			ID:          "bk-1",
			ProviderID:  "prov-1",
			BookingDate: "2025-09-08",
			StartTime:   "09:00",
			EndTime:     "10:00",
			Status:      models.BookingConfirmed,
		},
	}

	cal, err := AssembleCalendar("prov-1", 2025, 9, mondayTemplate(), nil, bookings, 60, now)
	require.NoError(t, err)

	for _, d := range cal.Days {
		if d.Date == "2025-09-08" {
			require.Len(t, d.Bookings, 1)
			assert.Equal(t, "bk-1", d.Bookings[0].ID)
			// The booked hour is carved out of the slot set.
			for _, s := range d.AvailableSlots {
				assert.NotEqual(t, "09:00", s.StartTime)
			}
		} else {
			assert.Empty(t, d.Bookings)
		}
	}
}

func TestAssembleCalendarKeepsCancelledBookingsVisible(t *testing.T) {
	now := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{
			ID:          "bk-1",
			ProviderID:  "prov-1",
			BookingDate: "2025-09-08",
			StartTime:   "09:00",
			EndTime:     "10:00",
			Status:      models.BookingCancelled,
		},
	}

	cal, err := AssembleCalendar("prov-1", 2025, 9, mondayTemplate(), nil, bookings, 60, now)
	require.NoError(t, err)

	for _, d := range cal.Days {
		if d.Date != "2025-09-08" {
			continue
		}
		// The cancelled booking still shows on the day, but releases its
		// hour back into the slot set.
		require.Len(t, d.Bookings, 1)
		assert.Equal(t, models.BookingCancelled, d.Bookings[0].Status)
		var freed bool
		for _, s := range d.AvailableSlots {
			if s.StartTime == "09:00" {
				freed = true
			}
		}
		assert.True(t, freed, "09:00 is bookable again after the cancellation")
	}
}

func TestGetCalendarDataAssemblesMonth(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAvailabilityRepo()
	repo.templates["prov-1"] = mondayTemplate()
	store := &fakeBookingStore{}
	svc := &DefaultAvailabilityService{Repo: repo, BookingRepo: store, SlotMinutes: 60, Location: time.UTC}

	cal, err := svc.GetCalendarData(ctx, "prov-1", 2025, 9)
	require.NoError(t, err)
	assert.Equal(t, "prov-1", cal.ProviderID)
	assert.Len(t, cal.Days, 30)

	_, err = svc.GetCalendarData(ctx, "prov-1", 2025, 13)
	assert.Error(t, err, "month out of range")
}
