// File: services/availability/resolve.go
package availability

import (
	"time"

	"lipo/models"
)

// dayResolution is the availability decision for a single date.
type dayResolution struct {
	available bool
	row       *models.ProviderAvailability // template row for the weekday, if any
	override  *models.AvailabilityOverride // winning whole-day override, if any
}

// resolveDay decides whether a date is available. A whole-day override always
// wins over the recurring template, regardless of its type; with no override
// the template row for the weekday decides, and a missing row means
// unavailable. When several whole-day overrides exist for the same date, the
// latest-created one wins.
func resolveDay(date time.Time, overrides []models.AvailabilityOverride, template []models.ProviderAvailability) dayResolution {
	dateStr := date.Format("2006-01-02")
	weekday := int(date.Weekday())

	var row *models.ProviderAvailability
	for i := range template {
		if template[i].DayOfWeek == weekday {
			row = &template[i]
			break
		}
	}

	var winning *models.AvailabilityOverride
	for i := range overrides {
		o := &overrides[i]
		if o.Date != dateStr || !o.WholeDay() {
			continue
		}
		if winning == nil || o.CreatedAt.After(winning.CreatedAt) {
			winning = o
		}
	}

	if winning != nil {
		return dayResolution{
			available: winning.Type == models.OverrideAvailable,
			row:       row,
			override:  winning,
		}
	}
	return dayResolution{
		available: row != nil && row.IsAvailable,
		row:       row,
	}
}

// windowedBlocks collects the partial-day overrides for a date that remove
// time from the working window (anything not of type "available").
func windowedBlocks(dateStr string, overrides []models.AvailabilityOverride) []models.AvailabilityOverride {
	var blocks []models.AvailabilityOverride
	for _, o := range overrides {
		if o.Date != dateStr || o.WholeDay() || o.Type == models.OverrideAvailable {
			continue
		}
		blocks = append(blocks, o)
	}
	return blocks
}
