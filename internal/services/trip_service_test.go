package services

import (
	"context"
	"testing"
	"time"

	"shuttlebook/internal/domain"
	"shuttlebook/internal/domain/models"
	"shuttlebook/internal/store/memstore"
)

func TestSeatsAvailableUnknownTripIsZero(t *testing.T) {
	svc := TripService{Store: memstore.New()}
	avail, err := svc.SeatsAvailable(context.Background(), 99)
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if avail != 0 {
		t.Fatalf("availability for unknown trip = %d, want 0", avail)
	}
}

func TestSeatsAvailableFloorsAtZero(t *testing.T) {
	st := memstore.New()
	svc := TripService{Store: st}
	ctx := context.Background()

	trip, err := st.CreateTrip(ctx, models.TripSpec{MaxCapacity: 10, PricePerSeat: 1000})
	if err != nil {
		t.Fatalf("create trip: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := st.CreateBooking(ctx, models.Booking{
			TripID:        trip.ID,
			NumberOfSeats: 3,
			PaymentStatus: models.PaymentPending,
			BookingStatus: models.BookingReserved,
		}); err != nil {
			t.Fatalf("seed booking: %v", err)
		}
	}

	// Shrinking capacity under the booked total must not yield a negative count.
	two := 2
	if _, err := svc.UpdateTrip(ctx, trip.ID, models.TripUpdate{MaxCapacity: &two}); err != nil {
		t.Fatalf("shrink capacity: %v", err)
	}
	avail, err := svc.SeatsAvailable(ctx, trip.ID)
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if avail != 0 {
		t.Fatalf("availability = %d, want 0", avail)
	}
}

func TestSeatsAvailableIgnoresCancelledAndWaitlist(t *testing.T) {
	st := memstore.New()
	svc := TripService{Store: st}
	ctx := context.Background()

	trip, _ := st.CreateTrip(ctx, models.TripSpec{MaxCapacity: 10, PricePerSeat: 1000})

	seed := func(seats int, status models.BookingStatus) {
		t.Helper()
		if _, err := st.CreateBooking(ctx, models.Booking{
			TripID:        trip.ID,
			NumberOfSeats: seats,
			PaymentStatus: models.PaymentPending,
			BookingStatus: status,
		}); err != nil {
			t.Fatalf("seed booking: %v", err)
		}
	}
	seed(2, models.BookingReserved)
	seed(3, models.BookingConfirmed)
	seed(4, models.BookingCancelled)
	seed(1, models.BookingWaitlist)

	avail, err := svc.SeatsAvailable(ctx, trip.ID)
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if avail != 5 {
		t.Fatalf("availability = %d, want 5 (only reserved+confirmed count)", avail)
	}
}

func TestCreateTripRejectsNegativeValues(t *testing.T) {
	svc := TripService{Store: memstore.New()}
	ctx := context.Background()

	if _, err := svc.CreateTrip(ctx, models.TripSpec{MaxCapacity: -1}); !domain.IsValidation(err) {
		t.Fatalf("negative capacity: err = %v, want validation error", err)
	}
	if _, err := svc.CreateTrip(ctx, models.TripSpec{PricePerSeat: -100}); !domain.IsValidation(err) {
		t.Fatalf("negative price: err = %v, want validation error", err)
	}
}

func TestListActiveExcludesPastAndInactive(t *testing.T) {
	st := memstore.New()
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	svc := TripService{Store: st, Now: func() time.Time { return now }}
	ctx := context.Background()

	inactive := false
	past, _ := st.CreateTrip(ctx, models.TripSpec{DepartureDate: now.AddDate(0, 0, -7), MaxCapacity: 10})
	off, _ := st.CreateTrip(ctx, models.TripSpec{DepartureDate: now.AddDate(0, 0, 7), MaxCapacity: 10, IsActive: &inactive})
	future, _ := st.CreateTrip(ctx, models.TripSpec{DepartureDate: now.AddDate(0, 0, 14), MaxCapacity: 10})

	trips, err := svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(trips) != 1 || trips[0].ID != future.ID {
		t.Fatalf("list active returned %d trips, want only trip %d (not %d or %d)",
			len(trips), future.ID, past.ID, off.ID)
	}
	if trips[0].AvailableSeats != 10 {
		t.Fatalf("availability = %d, want 10", trips[0].AvailableSeats)
	}
}
