package services

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"shuttlebook/internal/domain"
	"shuttlebook/internal/domain/models"
	"shuttlebook/internal/store"
	"shuttlebook/internal/utils"
)

// MaxSeatsPerBooking caps how many seats one booking may hold.
const MaxSeatsPerBooking = 4

// BookingService guards the booking ledger: it admits new bookings against
// seat availability and applies payment outcomes to the two status axes.
type BookingService struct {
	Store     store.Store
	Trips     TripService
	RequestID string

	// tripLocks serializes the availability check and the booking insert per
	// trip id, so concurrent admissions cannot oversell a trip.
	tripLocks sync.Map
}

// PaymentOutcome reports the booking after a provider notification was applied.
// AlreadyApplied is true when the notification was a duplicate and nothing
// changed; callers must not fire side effects (emails etc.) again in that case.
type PaymentOutcome struct {
	Booking        models.Booking
	AlreadyApplied bool
}

func (s *BookingService) lockTrip(tripID int64) *sync.Mutex {
	v, _ := s.tripLocks.LoadOrStore(tripID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// AdmitBooking validates the spec, checks the referenced trip and property,
// verifies availability and creates the booking as pending/reserved.
// The check-then-insert sequence runs under the trip's admission lock.
func (s *BookingService) AdmitBooking(ctx context.Context, spec models.BookingSpec) (models.Booking, error) {
	if err := validateBookingSpec(spec); err != nil {
		return models.Booking{}, err
	}

	mu := s.lockTrip(spec.TripID)
	mu.Lock()
	defer mu.Unlock()

	trip, err := s.Store.GetTrip(ctx, spec.TripID)
	if err != nil {
		return models.Booking{}, err
	}
	if _, err := s.Store.GetProperty(ctx, spec.PropertyID); err != nil {
		return models.Booking{}, err
	}

	available, err := s.Trips.SeatsAvailable(ctx, spec.TripID)
	if err != nil {
		return models.Booking{}, err
	}
	if available < spec.NumberOfSeats {
		return models.Booking{}, domain.InsufficientSeatsError{
			TripID:    spec.TripID,
			Requested: spec.NumberOfSeats,
			Available: available,
		}
	}

	booking := models.Booking{
		TripID:        spec.TripID,
		PropertyID:    spec.PropertyID,
		CustomerName:  strings.TrimSpace(spec.CustomerName),
		CustomerEmail: strings.TrimSpace(spec.CustomerEmail),
		CustomerPhone: strings.TrimSpace(spec.CustomerPhone),
		NumberOfSeats: spec.NumberOfSeats,
		TotalAmount:   int64(spec.NumberOfSeats) * trip.PricePerSeat,
		PaymentStatus: models.PaymentPending,
		BookingStatus: models.BookingReserved,
	}
	created, err := s.Store.CreateBooking(ctx, booking)
	if err != nil {
		return models.Booking{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "admit",
		"booking admitted trip="+strconv.FormatInt(created.TripID, 10)+" seats="+strconv.Itoa(created.NumberOfSeats))
	return created, nil
}

// RecordPaymentOutcome applies a provider notification for a booking. On
// success the payment moves to paid and the booking to confirmed; delivering
// the same success twice is a no-op. A failure records the provider reference
// and leaves the booking pending/reserved so it stays inspectable; it never
// downgrades a booking that already paid.
func (s *BookingService) RecordPaymentOutcome(ctx context.Context, bookingID int64, providerRef string, succeeded bool) (PaymentOutcome, error) {
	booking, err := s.Store.GetBooking(ctx, bookingID)
	if err != nil {
		return PaymentOutcome{}, err
	}

	if succeeded {
		if booking.PaymentStatus == models.PaymentPaid && booking.BookingStatus == models.BookingConfirmed {
			return PaymentOutcome{Booking: booking, AlreadyApplied: true}, nil
		}
		if !booking.PaymentStatus.CanTransitionTo(models.PaymentPaid) {
			return PaymentOutcome{}, domain.ConflictError{
				Resource: "booking",
				Msg:      "payment status " + string(booking.PaymentStatus) + " cannot become paid",
			}
		}
		updated, err := s.Store.SetPaymentStatus(ctx, bookingID, providerRef, models.PaymentPaid)
		if err != nil {
			return PaymentOutcome{}, err
		}
		if updated.BookingStatus.CanTransitionTo(models.BookingConfirmed) {
			updated, err = s.Store.SetBookingStatus(ctx, bookingID, models.BookingConfirmed)
			if err != nil {
				return PaymentOutcome{}, err
			}
		}
		utils.LogEvent(s.RequestID, "booking", "payment_succeeded", "booking confirmed id="+strconv.FormatInt(bookingID, 10))
		return PaymentOutcome{Booking: updated}, nil
	}

	// Failure path: do not confirm, do not touch a settled payment. Keep the
	// provider reference so the attempt is traceable.
	if booking.PaymentStatus != models.PaymentPending {
		return PaymentOutcome{Booking: booking, AlreadyApplied: true}, nil
	}
	updated, err := s.Store.SetPaymentStatus(ctx, bookingID, providerRef, models.PaymentPending)
	if err != nil {
		return PaymentOutcome{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "payment_failed", "payment attempt failed id="+strconv.FormatInt(bookingID, 10))
	return PaymentOutcome{Booking: updated}, nil
}

// CancelBooking moves a reserved, waitlisted or confirmed booking to cancelled,
// freeing its seats. A paid booking moves its payment to refunded as well.
// Cancelling an already cancelled booking is a no-op.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID int64) (models.Booking, error) {
	booking, err := s.Store.GetBooking(ctx, bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if booking.BookingStatus == models.BookingCancelled {
		return booking, nil
	}
	if !booking.BookingStatus.CanTransitionTo(models.BookingCancelled) {
		return models.Booking{}, domain.ConflictError{
			Resource: "booking",
			Msg:      "booking status " + string(booking.BookingStatus) + " cannot be cancelled",
		}
	}
	updated, err := s.Store.SetBookingStatus(ctx, bookingID, models.BookingCancelled)
	if err != nil {
		return models.Booking{}, err
	}
	if updated.PaymentStatus == models.PaymentPaid {
		updated, err = s.Store.SetPaymentStatus(ctx, bookingID, updated.PaymentRef, models.PaymentRefunded)
		if err != nil {
			return models.Booking{}, err
		}
	}
	utils.LogEvent(s.RequestID, "booking", "cancel", "booking cancelled id="+strconv.FormatInt(bookingID, 10))
	return updated, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id int64) (models.Booking, error) {
	return s.Store.GetBooking(ctx, id)
}

func (s *BookingService) ListByTrip(ctx context.Context, tripID int64) ([]models.Booking, error) {
	return s.Store.ListBookingsByTrip(ctx, tripID)
}

func validateBookingSpec(spec models.BookingSpec) error {
	if spec.TripID <= 0 {
		return domain.ValidationError{Field: "tripId", Msg: "must be set"}
	}
	if spec.PropertyID <= 0 {
		return domain.ValidationError{Field: "propertyId", Msg: "must be set"}
	}
	if strings.TrimSpace(spec.CustomerName) == "" {
		return domain.ValidationError{Field: "customerName", Msg: "must not be empty"}
	}
	if strings.TrimSpace(spec.CustomerEmail) == "" {
		return domain.ValidationError{Field: "customerEmail", Msg: "must not be empty"}
	}
	if strings.TrimSpace(spec.CustomerPhone) == "" {
		return domain.ValidationError{Field: "customerPhone", Msg: "must not be empty"}
	}
	if spec.NumberOfSeats < 1 {
		return domain.ValidationError{Field: "numberOfSeats", Msg: "must be at least 1"}
	}
	if spec.NumberOfSeats > MaxSeatsPerBooking {
		return domain.ValidationError{Field: "numberOfSeats", Msg: "at most 4 seats per booking"}
	}
	return nil
}
