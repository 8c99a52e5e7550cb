// File: services/booking/confirmation.go
package booking

import (
	"crypto/rand"
	"math/big"
)

// codeAlphabet omits 0/O and 1/I so codes survive being read aloud.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeLength = 8

// NewConfirmationCode generates a human-shareable booking code. Uniqueness is
// enforced by the unique index on the bookings collection.
func NewConfirmationCode() string {
	buf := make([]byte, codeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken.
			panic(err)
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return string(buf)
}
