// File: services/availability/calendar.go
package availability

import (
	"context"
	"fmt"
	"time"

	"lipo/models"
	"lipo/utils"
)

// GetCalendarData assembles the per-day view models for one provider month.
// The month's template, overrides and bookings are fetched once up front and
// slots are computed locally, so assembling a month costs three queries
// regardless of how many days are open.
func (s *DefaultAvailabilityService) GetCalendarData(ctx context.Context, providerID string, year, month int) (*models.CalendarMonth, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be in 1..12, got %d", month)
	}

	loc := s.location()
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	template, err := s.fetchTemplate(ctx, providerID)
	if err != nil {
		return nil, err
	}
	overrides, err := s.Repo.ListOverrides(ctx, providerID, first.Format(utils.DateLayout), last.Format(utils.DateLayout))
	if err != nil {
		return nil, err
	}
	bookings, err := s.BookingRepo.InRange(ctx, providerID, first.Format(utils.DateLayout), last.Format(utils.DateLayout))
	if err != nil {
		return nil, err
	}

	return AssembleCalendar(providerID, year, month, template, overrides, bookings, s.slotMinutes(0), time.Now().In(loc))
}

// AssembleCalendar merges a month's template, overrides and bookings into
// CalendarDay view models. Pure with respect to now, which supplies both
// "today" and the local wall clock.
func AssembleCalendar(providerID string, year, month int, template []models.ProviderAvailability, overrides []models.AvailabilityOverride, bookings []models.Booking, slotMinutes int, now time.Time) (*models.CalendarMonth, error) {
	loc := now.Location()
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	bookingsByDate := make(map[string][]models.Booking)
	for _, b := range bookings {
		bookingsByDate[b.BookingDate] = append(bookingsByDate[b.BookingDate], b)
	}

	cal := &models.CalendarMonth{
		ProviderID: providerID,
		Year:       year,
		Month:      month,
	}
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format(utils.DateLayout)
		res := resolveDay(d, overrides, template)

		slots, err := buildDaySlots(res, d, overrides, bookingsByDate[dateStr], slotMinutes, now)
		if err != nil {
			return nil, fmt.Errorf("building slots for %s: %w", dateStr, err)
		}

		dayBookings := bookingsByDate[dateStr]
		if dayBookings == nil {
			dayBookings = []models.Booking{}
		}
		cal.Days = append(cal.Days, models.CalendarDay{
			Date:            dateStr,
			DayOfWeek:       int(d.Weekday()),
			IsToday:         d.Equal(today),
			IsPast:          d.Before(today),
			HasAvailability: res.available,
			Bookings:        dayBookings,
			AvailableSlots:  slots,
		})
	}
	return cal, nil
}
