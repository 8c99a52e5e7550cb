package models

// CalendarDay is a client-facing view model for one day of a provider's
// calendar. It exists only transiently; every calendar fetch rebuilds it.
type CalendarDay struct {
	Date            string          `json:"date"`        // "YYYY-MM-DD"
	DayOfWeek       int             `json:"day_of_week"` // 0 = Sunday
	IsToday         bool            `json:"is_today"`
	IsPast          bool            `json:"is_past"`
	HasAvailability bool            `json:"has_availability"`
	// Bookings carries every booking on the date regardless of status;
	// only active ones consume slot time.
	Bookings        []Booking       `json:"bookings"`
	AvailableSlots  []AvailableSlot `json:"available_slots"`
}

// CalendarMonth aggregates the assembled days for one provider month.
type CalendarMonth struct {
	ProviderID string        `json:"provider_id"`
	Year       int           `json:"year"`
	Month      int           `json:"month"` // 1-12
	Days       []CalendarDay `json:"days"`
}
