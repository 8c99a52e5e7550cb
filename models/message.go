package models

import "time"

// BookingMessage is one chat message attached to a booking.
type BookingMessage struct {
	ID         string    `bson:"id" json:"id"`
	BookingID  string    `bson:"booking_id" json:"booking_id"`
	SenderID   string    `bson:"sender_id" json:"sender_id"`
	SenderRole string    `bson:"sender_role" json:"sender_role"` // "customer" or "provider"
	Content    string    `bson:"content" json:"content"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// BookingReview is a customer's post-completion review. At most one per
// booking.
type BookingReview struct {
	ID         string    `bson:"id" json:"id"`
	BookingID  string    `bson:"booking_id" json:"booking_id"`
	ProviderID string    `bson:"provider_id" json:"provider_id"`
	CustomerID string    `bson:"customer_id" json:"customer_id"`
	Rating     int       `bson:"rating" json:"rating"` // 1-5
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
