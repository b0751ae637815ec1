package services

import (
	"context"
	"time"

	"shuttlebook/internal/domain"
	"shuttlebook/internal/domain/models"
	"shuttlebook/internal/store"
)

// TripService owns trip definitions and the derived seat-availability view.
type TripService struct {
	Store store.Store
	Now   func() time.Time
}

func (s TripService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// CreateTrip stores an admin-supplied trip. The admin is trusted; only
// schema-level invariants are checked here.
func (s TripService) CreateTrip(ctx context.Context, spec models.TripSpec) (models.Trip, error) {
	if spec.MaxCapacity < 0 {
		return models.Trip{}, domain.ValidationError{Field: "maxCapacity", Msg: "must be at least 1"}
	}
	if spec.PricePerSeat < 0 {
		return models.Trip{}, domain.ValidationError{Field: "pricePerSeat", Msg: "must not be negative"}
	}
	return s.Store.CreateTrip(ctx, spec)
}

func (s TripService) UpdateTrip(ctx context.Context, id int64, upd models.TripUpdate) (models.Trip, error) {
	if upd.MaxCapacity != nil && *upd.MaxCapacity < 1 {
		return models.Trip{}, domain.ValidationError{Field: "maxCapacity", Msg: "must be at least 1"}
	}
	if upd.PricePerSeat != nil && *upd.PricePerSeat < 0 {
		return models.Trip{}, domain.ValidationError{Field: "pricePerSeat", Msg: "must not be negative"}
	}
	return s.Store.UpdateTrip(ctx, id, upd)
}

func (s TripService) GetTrip(ctx context.Context, id int64) (models.Trip, error) {
	return s.Store.GetTrip(ctx, id)
}

// GetTripWithAvailability returns the trip decorated with its free seats.
func (s TripService) GetTripWithAvailability(ctx context.Context, id int64) (models.TripWithAvailability, error) {
	trip, err := s.Store.GetTrip(ctx, id)
	if err != nil {
		return models.TripWithAvailability{}, err
	}
	avail, err := s.SeatsAvailable(ctx, id)
	if err != nil {
		return models.TripWithAvailability{}, err
	}
	return models.TripWithAvailability{Trip: trip, AvailableSeats: avail}, nil
}

// ListActive returns active future trips, each with availability.
func (s TripService) ListActive(ctx context.Context) ([]models.TripWithAvailability, error) {
	trips, err := s.Store.ListActiveTrips(ctx, s.now())
	if err != nil {
		return nil, err
	}
	return s.withAvailability(ctx, trips)
}

// ListForProperty returns the active trips bookable from a property, each with
// availability. Unknown property slug is the caller's not-found to map.
func (s TripService) ListForProperty(ctx context.Context, propertyID int64) ([]models.TripWithAvailability, error) {
	trips, err := s.Store.ListTripsByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	return s.withAvailability(ctx, trips)
}

// SeatsAvailable computes remaining seats for a trip on demand: capacity minus
// seats held by reserved and confirmed bookings. An unknown trip yields 0, not
// an error (no trip, no capacity). The scan is O(bookings-per-trip) per call;
// deliberately uncached so it is always consistent with the latest writes.
func (s TripService) SeatsAvailable(ctx context.Context, tripID int64) (int, error) {
	trip, err := s.Store.GetTrip(ctx, tripID)
	if err != nil {
		if domain.IsNotFound(err) {
			return 0, nil
		}
		return 0, err
	}

	bookings, err := s.Store.ListBookingsByTrip(ctx, tripID)
	if err != nil {
		return 0, err
	}
	consumed := 0
	for _, b := range bookings {
		if b.BookingStatus.ConsumesCapacity() {
			consumed += b.NumberOfSeats
		}
	}
	if consumed >= trip.MaxCapacity {
		return 0, nil
	}
	return trip.MaxCapacity - consumed, nil
}

func (s TripService) withAvailability(ctx context.Context, trips []models.Trip) ([]models.TripWithAvailability, error) {
	out := make([]models.TripWithAvailability, 0, len(trips))
	for _, t := range trips {
		avail, err := s.SeatsAvailable(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, models.TripWithAvailability{Trip: t, AvailableSeats: avail})
	}
	return out, nil
}
