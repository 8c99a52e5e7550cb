package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelNames(t *testing.T) {
	assert.Equal(t, "booking-bk-1", BookingChannel("bk-1"))
	assert.Equal(t, "booking-messages-bk-1", MessagesChannel("bk-1"))

	// Lifecycle and chat feeds never collide for the same booking.
	assert.NotEqual(t, BookingChannel("bk-1"), MessagesChannel("bk-1"))
}
