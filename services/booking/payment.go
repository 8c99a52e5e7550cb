// File: services/booking/payment.go
package booking

import (
	"context"
	"fmt"
	"math"
	"strings"

	"lipo/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// StripePaymentHandler creates payment intents for booking totals. The
// checkout flow itself lives client-side; this layer only reserves the
// amount server-side.
type StripePaymentHandler struct {
	Logger *zap.Logger
}

// NewStripePaymentHandler constructs a PaymentHandler backed by Stripe.
func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{Logger: logger}
}

// CreatePaymentIntent registers the booking total with Stripe and returns the
// intent id for the client to complete.
func (h *StripePaymentHandler) CreatePaymentIntent(ctx context.Context, bk *models.Booking) (string, error) {
	currency := strings.ToLower(bk.Currency)
	if currency == "" {
		currency = "usd"
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(bk.TotalAmount * 100))),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("booking_id", bk.ID)
	params.AddMetadata("confirmation_code", bk.ConfirmationCode)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe payment intent failed: %w", err)
	}

	h.Logger.Info("payment intent created",
		zap.String("bookingID", bk.ID),
		zap.String("intentID", intent.ID))
	return intent.ID, nil
}
