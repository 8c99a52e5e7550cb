package models

import "time"

// OverrideType classifies a date-specific availability exception.
type OverrideType string

const (
	OverrideAvailable OverrideType = "available"
	OverrideBooked    OverrideType = "booked"
	OverrideBlocked   OverrideType = "blocked"
	OverrideBreak     OverrideType = "break"
)

// ProviderAvailability is one row of a provider's recurring weekly template.
// At most one row exists per (provider, weekday).
type ProviderAvailability struct {
	ID                   string    `bson:"id" json:"id"`
	ProviderID           string    `bson:"provider_id" json:"provider_id"`
	DayOfWeek            int       `bson:"day_of_week" json:"day_of_week"` // 0 = Sunday, matching time.Weekday
	StartTime            string    `bson:"start_time" json:"start_time"`   // "HH:MM"
	EndTime              string    `bson:"end_time" json:"end_time"`       // "HH:MM"
	IsAvailable          bool      `bson:"is_available" json:"is_available"`
	BreakStart           string    `bson:"break_start,omitempty" json:"break_start,omitempty"` // "HH:MM", empty for no break
	BreakDurationMinutes int       `bson:"break_duration_minutes,omitempty" json:"break_duration_minutes,omitempty"`
	CreatedAt            time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time `bson:"updated_at" json:"updated_at"`
}

// AvailabilityOverride is a date-specific exception that takes precedence over
// the recurring template for that date. StartTime/EndTime empty means the
// override covers the whole day.
type AvailabilityOverride struct {
	ID         string       `bson:"id" json:"id"`
	ProviderID string       `bson:"provider_id" json:"provider_id"`
	Date       string       `bson:"date" json:"date"` // "YYYY-MM-DD"
	StartTime  string       `bson:"start_time,omitempty" json:"start_time,omitempty"`
	EndTime    string       `bson:"end_time,omitempty" json:"end_time,omitempty"`
	Type       OverrideType `bson:"availability_type" json:"availability_type"`
	Reason     string       `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt  time.Time    `bson:"created_at" json:"created_at"`
}

// WholeDay reports whether the override applies to the entire date rather
// than a window within it.
func (o *AvailabilityOverride) WholeDay() bool {
	return o.StartTime == "" || o.EndTime == ""
}

// AvailableSlot is a derived, ephemeral booking window. Never persisted;
// recomputed on every request.
type AvailableSlot struct {
	StartTime   string `json:"start_time"` // "HH:MM"
	EndTime     string `json:"end_time"`   // "HH:MM"
	IsAvailable bool   `json:"is_available"`
}
