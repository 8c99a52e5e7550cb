package models

import "time"

// BookingEvent is the payload published on the per-booking realtime channels
// whenever a booking changes or a message arrives.
type BookingEvent struct {
	Type      string          `json:"type"` // "status_changed", "created", "message"
	BookingID string          `json:"booking_id"`
	Status    BookingStatus   `json:"status,omitempty"`
	Booking   *Booking        `json:"booking,omitempty"`
	Message   *BookingMessage `json:"message,omitempty"`
	At        time.Time       `json:"at"`
}

// ReminderPayload is the asynq task body for booking reminders.
type ReminderPayload struct {
	BookingID        string `json:"booking_id"`
	ProviderID       string `json:"provider_id"`
	CustomerID       string `json:"customer_id"`
	ConfirmationCode string `json:"confirmation_code"`
	FireDate         string `json:"fire_date"`
	Title            string `json:"title"`
	Body             string `json:"body"`
}
