// File: services/availability/slots.go
package availability

import (
	"context"
	"fmt"
	"time"

	"lipo/models"
	"lipo/utils"
)

// continuousInterval is a [Start, End) block in minutes from midnight.
type continuousInterval struct {
	Start int
	End   int
}

// subtractInterval removes [blockStart, blockEnd) from every interval in the
// set, splitting intervals that straddle the block.
func subtractInterval(available []continuousInterval, blockStart, blockEnd int) []continuousInterval {
	var updated []continuousInterval
	for _, iv := range available {
		if blockEnd <= iv.Start || blockStart >= iv.End {
			updated = append(updated, iv)
			continue
		}
		if blockStart > iv.Start {
			updated = append(updated, continuousInterval{Start: iv.Start, End: blockStart})
		}
		if blockEnd < iv.End {
			updated = append(updated, continuousInterval{Start: blockEnd, End: iv.End})
		}
	}
	return updated
}

// availableWindows collects the windowed "available" overrides for a date.
// When any exist they define the day's bookable hours outright, narrowing
// (or supplying, for days opened by a whole-day override) the window.
func availableWindows(dateStr string, overrides []models.AvailabilityOverride) ([]continuousInterval, error) {
	var wins []continuousInterval
	for _, o := range overrides {
		if o.Date != dateStr || o.WholeDay() || o.Type != models.OverrideAvailable {
			continue
		}
		start, err := utils.ParseClock(o.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := utils.ParseClock(o.EndTime)
		if err != nil {
			return nil, err
		}
		if end > start {
			wins = append(wins, continuousInterval{Start: start, End: end})
		}
	}
	return wins, nil
}

// freeIntervals computes the bookable intervals for a resolved day: the
// working window minus the template break, windowed overrides, and active
// bookings.
func freeIntervals(res dayResolution, dateStr string, overrides []models.AvailabilityOverride, bookings []models.Booking) ([]continuousInterval, error) {
	if !res.available {
		return nil, nil
	}

	free, err := availableWindows(dateStr, overrides)
	if err != nil {
		return nil, err
	}
	if len(free) == 0 {
		start, end, err := workingWindow(res)
		if err != nil || end <= start {
			return nil, err
		}
		free = []continuousInterval{{Start: start, End: end}}

		// Template break. Overrides that force the day open carry no break.
		if res.override == nil && res.row != nil && res.row.BreakStart != "" && res.row.BreakDurationMinutes > 0 {
			bs, err := utils.ParseClock(res.row.BreakStart)
			if err != nil {
				return nil, err
			}
			free = subtractInterval(free, bs, bs+res.row.BreakDurationMinutes)
		}
	}

	for _, o := range windowedBlocks(dateStr, overrides) {
		os, err := utils.ParseClock(o.StartTime)
		if err != nil {
			return nil, err
		}
		oe, err := utils.ParseClock(o.EndTime)
		if err != nil {
			return nil, err
		}
		free = subtractInterval(free, os, oe)
	}

	for _, b := range bookings {
		if b.BookingDate != dateStr || !b.Active() {
			continue
		}
		bs, err := utils.ParseClock(b.StartTime)
		if err != nil {
			return nil, err
		}
		be, err := utils.ParseClock(b.EndTime)
		if err != nil {
			return nil, err
		}
		free = subtractInterval(free, bs, be)
	}
	return free, nil
}

// workingWindow returns the template row's hours for the day; days without a
// row have no default window.
func workingWindow(res dayResolution) (int, int, error) {
	if res.row == nil {
		return 0, 0, nil
	}
	start, err := utils.ParseClock(res.row.StartTime)
	if err != nil {
		return 0, 0, err
	}
	end, err := utils.ParseClock(res.row.EndTime)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// buildDaySlots buckets the free intervals of one date into fixed-size slots.
// Dates strictly before today yield no slots; for today, slots that would
// start in the past are dropped.
func buildDaySlots(res dayResolution, date time.Time, overrides []models.AvailabilityOverride, bookings []models.Booking, slotMinutes int, now time.Time) ([]models.AvailableSlot, error) {
	if slotMinutes <= 0 {
		return nil, fmt.Errorf("slot duration must be positive, got %d", slotMinutes)
	}

	// Compare dates as strings so the wall-clock location of now never
	// shifts the day boundary.
	dateStr := date.Format("2006-01-02")
	todayStr := now.Format("2006-01-02")
	if dateStr < todayStr {
		return []models.AvailableSlot{}, nil
	}

	free, err := freeIntervals(res, dateStr, overrides, bookings)
	if err != nil {
		return nil, err
	}

	minStart := -1
	if dateStr == todayStr {
		minStart = now.Hour()*60 + now.Minute()
	}

	slots := []models.AvailableSlot{}
	for _, iv := range free {
		for s := iv.Start; s+slotMinutes <= iv.End; s += slotMinutes {
			if s < minStart {
				continue
			}
			slots = append(slots, models.AvailableSlot{
				StartTime:   utils.FormatClock(s),
				EndTime:     utils.FormatClock(s + slotMinutes),
				IsAvailable: true,
			})
		}
	}
	return slots, nil
}

// GetAvailableSlots computes the bookable slots for a provider on a date.
func (s *DefaultAvailabilityService) GetAvailableSlots(ctx context.Context, providerID, date string, slotMinutes int) ([]models.AvailableSlot, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, err
	}

	template, err := s.fetchTemplate(ctx, providerID)
	if err != nil {
		return nil, err
	}
	overrides, err := s.Repo.OverridesOnDate(ctx, providerID, date)
	if err != nil {
		return nil, err
	}
	bookings, err := s.BookingRepo.ActiveOnDate(ctx, providerID, date)
	if err != nil {
		return nil, err
	}

	res := resolveDay(day, overrides, template)
	return buildDaySlots(res, day, overrides, bookings, s.slotMinutes(slotMinutes), time.Now().In(s.location()))
}

// CheckProviderAvailability reports whether the requested window fits
// entirely inside one free interval of the date.
func (s *DefaultAvailabilityService) CheckProviderAvailability(ctx context.Context, providerID, date, startTime, endTime string) (bool, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return false, err
	}
	start, err := utils.ParseClock(startTime)
	if err != nil {
		return false, err
	}
	end, err := utils.ParseClock(endTime)
	if err != nil {
		return false, err
	}
	if end <= start {
		return false, fmt.Errorf("end time %s is not after start time %s", endTime, startTime)
	}

	// Elapsed windows are never bookable, matching the slot generator.
	now := time.Now().In(s.location())
	todayStr := now.Format(utils.DateLayout)
	if date < todayStr {
		return false, nil
	}
	if date == todayStr && start < now.Hour()*60+now.Minute() {
		return false, nil
	}

	template, err := s.fetchTemplate(ctx, providerID)
	if err != nil {
		return false, err
	}
	overrides, err := s.Repo.OverridesOnDate(ctx, providerID, date)
	if err != nil {
		return false, err
	}
	bookings, err := s.BookingRepo.ActiveOnDate(ctx, providerID, date)
	if err != nil {
		return false, err
	}

	res := resolveDay(day, overrides, template)
	free, err := freeIntervals(res, date, overrides, bookings)
	if err != nil {
		return false, err
	}
	for _, iv := range free {
		if start >= iv.Start && end <= iv.End {
			return true, nil
		}
	}
	return false, nil
}
