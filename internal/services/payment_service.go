package services

import (
	"context"
	"strconv"

	"shuttlebook/internal/domain/models"
	"shuttlebook/internal/store"
	"shuttlebook/internal/utils"

	"github.com/google/uuid"
)

// ChargeMeta travels with a charge request so the provider can correlate the
// eventual outcome notification back to the booking.
type ChargeMeta struct {
	BookingID     int64
	CustomerName  string
	CustomerEmail string
}

// Provider is the payment boundary: it accepts a charge for an amount and
// returns a provider reference. The outcome arrives later through the webhook.
type Provider interface {
	CreateCharge(ctx context.Context, amountCents int64, meta ChargeMeta) (string, error)
}

// PaymentService starts payment attempts for bookings.
type PaymentService struct {
	Store     store.Store
	Provider  Provider
	RequestID string
}

// CreateIntent charges the booking's total and stores the provider reference.
// Payment stays pending until the provider notifies the outcome.
func (s PaymentService) CreateIntent(ctx context.Context, bookingID int64) (models.Booking, error) {
	booking, err := s.Store.GetBooking(ctx, bookingID)
	if err != nil {
		return models.Booking{}, err
	}

	ref, err := s.Provider.CreateCharge(ctx, booking.TotalAmount, ChargeMeta{
		BookingID:     booking.ID,
		CustomerName:  booking.CustomerName,
		CustomerEmail: booking.CustomerEmail,
	})
	if err != nil {
		return models.Booking{}, err
	}

	updated, err := s.Store.SetPaymentStatus(ctx, bookingID, ref, booking.PaymentStatus)
	if err != nil {
		return models.Booking{}, err
	}
	utils.LogEvent(s.RequestID, "payment", "create_intent",
		"booking="+strconv.FormatInt(bookingID, 10)+" amount="+utils.FormatCents(booking.TotalAmount))
	return updated, nil
}

// StubProvider issues locally generated references. Used in development and
// tests where no real payment provider is wired.
type StubProvider struct{}

func (StubProvider) CreateCharge(_ context.Context, _ int64, _ ChargeMeta) (string, error) {
	return "pi_" + uuid.NewString(), nil
}
