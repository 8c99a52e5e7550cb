// File: services/availability/template.go
package availability

import (
	"context"
	"fmt"

	"lipo/models"
	"lipo/utils"
)

// ValidationError marks a rejected template or override payload.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// GetProviderAvailability returns the provider's weekly template.
func (s *DefaultAvailabilityService) GetProviderAvailability(ctx context.Context, providerID string) ([]models.ProviderAvailability, error) {
	return s.fetchTemplate(ctx, providerID)
}

// SetProviderAvailability replaces the provider's full weekly template. The
// repository performs the swap transactionally, so callers never observe a
// half-replaced template.
func (s *DefaultAvailabilityService) SetProviderAvailability(ctx context.Context, providerID string, rows []models.ProviderAvailability) error {
	seen := make(map[int]bool, len(rows))
	for i, row := range rows {
		if row.DayOfWeek < 0 || row.DayOfWeek > 6 {
			return validationErrorf("row %d: day_of_week must be in 0..6, got %d", i, row.DayOfWeek)
		}
		if seen[row.DayOfWeek] {
			return validationErrorf("duplicate template row for weekday %d", row.DayOfWeek)
		}
		seen[row.DayOfWeek] = true

		start, err := utils.ParseClock(row.StartTime)
		if err != nil {
			return validationErrorf("row %d: %v", i, err)
		}
		end, err := utils.ParseClock(row.EndTime)
		if err != nil {
			return validationErrorf("row %d: %v", i, err)
		}
		if end <= start {
			return validationErrorf("row %d: end_time %s is not after start_time %s", i, row.EndTime, row.StartTime)
		}
		if row.BreakStart != "" {
			bs, err := utils.ParseClock(row.BreakStart)
			if err != nil {
				return validationErrorf("row %d: %v", i, err)
			}
			if bs < start || bs+row.BreakDurationMinutes > end {
				return validationErrorf("row %d: break does not fit inside working hours", i)
			}
		}
	}
	if err := s.Repo.ReplaceWeeklyTemplate(ctx, providerID, rows); err != nil {
		return err
	}
	s.invalidateTemplate(ctx, providerID)
	return nil
}

// AddOverride records a date-specific exception.
func (s *DefaultAvailabilityService) AddOverride(ctx context.Context, override *models.AvailabilityOverride) error {
	if override.ProviderID == "" {
		return validationErrorf("override requires a provider_id")
	}
	if _, err := utils.ParseDate(override.Date); err != nil {
		return &ValidationError{Message: err.Error()}
	}
	switch override.Type {
	case models.OverrideAvailable, models.OverrideBooked, models.OverrideBlocked, models.OverrideBreak:
	default:
		return validationErrorf("unknown override type %q", override.Type)
	}
	if (override.StartTime == "") != (override.EndTime == "") {
		return validationErrorf("override window needs both start_time and end_time")
	}
	if !override.WholeDay() {
		start, err := utils.ParseClock(override.StartTime)
		if err != nil {
			return &ValidationError{Message: err.Error()}
		}
		end, err := utils.ParseClock(override.EndTime)
		if err != nil {
			return &ValidationError{Message: err.Error()}
		}
		if end <= start {
			return validationErrorf("override end_time %s is not after start_time %s", override.EndTime, override.StartTime)
		}
	}
	return s.Repo.AddOverride(ctx, override)
}

// RemoveOverride deletes one of the provider's overrides.
func (s *DefaultAvailabilityService) RemoveOverride(ctx context.Context, providerID, overrideID string) error {
	return s.Repo.RemoveOverride(ctx, providerID, overrideID)
}
