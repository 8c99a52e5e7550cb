package models

import "time"

// BookingStatus is the lifecycle state of a booking. Bookings are never
// deleted; cancellation and disputes are terminal statuses.
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
	BookingDisputed   BookingStatus = "disputed"
)

// Booking represents one customer-provider-listing reservation.
type Booking struct {
	ID               string        `bson:"id" json:"id"`                               // Unique booking identifier (UUID)
	ListingID        string        `bson:"listing_id" json:"listing_id"`               // Service listing that was booked
	ProviderID       string        `bson:"provider_id" json:"provider_id"`             // Provider who was booked
	CustomerID       string        `bson:"customer_id" json:"customer_id"`             // Customer who made the booking
	BookingDate      string        `bson:"booking_date" json:"booking_date"`           // Date in "YYYY-MM-DD" format
	StartTime        string        `bson:"start_time" json:"start_time"`               // Wall-clock "HH:MM", provider-local
	EndTime          string        `bson:"end_time" json:"end_time"`                   // Wall-clock "HH:MM", provider-local
	DurationMinutes  int           `bson:"duration_minutes" json:"duration_minutes"`   // Booked duration
	Status           BookingStatus `bson:"status" json:"status"`                       // Lifecycle state
	ConfirmationCode string        `bson:"confirmation_code" json:"confirmation_code"` // Server-generated, human-shareable
	BasePrice        float64       `bson:"base_price" json:"base_price"`
	ServiceFee       float64       `bson:"service_fee" json:"service_fee"`
	TotalAmount      float64       `bson:"total_amount" json:"total_amount"` // Always base_price + service_fee
	Currency         string        `bson:"currency" json:"currency"`
	PaymentIntentID  string        `bson:"payment_intent_id,omitempty" json:"payment_intent_id,omitempty"`
	SpecialRequests  string        `bson:"special_requests,omitempty" json:"special_requests,omitempty"`
	ProviderNotes    string        `bson:"provider_notes,omitempty" json:"provider_notes,omitempty"`

	ConfirmedAt *time.Time `bson:"confirmed_at,omitempty" json:"confirmed_at,omitempty"`
	StartedAt   *time.Time `bson:"started_at,omitempty" json:"started_at,omitempty"`
	CompletedAt *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	CancelledAt *time.Time `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
}

// Active reports whether the booking still holds its time window.
// Cancelled and disputed bookings release their slot.
func (b *Booking) Active() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed || b.Status == BookingInProgress
}

// BookingForm is the payload for creating a booking. Availability and pricing
// are computed server-side; clients only name the window they want.
type BookingForm struct {
	ListingID       string `json:"listing_id" binding:"required"`
	ProviderID      string `json:"provider_id" binding:"required"`
	BookingDate     string `json:"booking_date" binding:"required"` // "YYYY-MM-DD"
	StartTime       string `json:"start_time" binding:"required"`   // "HH:MM"
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
	HourlyRate      float64 `json:"hourly_rate"`
	Currency        string `json:"currency"`
	SpecialRequests string `json:"special_requests"`
}

// BookingFilters narrows a booking query. All set fields apply conjunctively;
// the zero value matches everything the caller is allowed to see.
type BookingFilters struct {
	Statuses   []BookingStatus `json:"statuses,omitempty"`
	DateFrom   string          `json:"date_from,omitempty"` // inclusive, "YYYY-MM-DD"
	DateTo     string          `json:"date_to,omitempty"`   // inclusive, "YYYY-MM-DD"
	ProviderID string          `json:"provider_id,omitempty"`
	CustomerID string          `json:"customer_id,omitempty"`
	ListingID  string          `json:"listing_id,omitempty"`
}
