// Package store defines the persistence contract for the booking platform.
// Implementations (memstore, mysqlstore) are injected into the services so the
// core never depends on a concrete database.
package store

import (
	"context"
	"time"

	"shuttlebook/internal/domain/models"
)

// TripStore holds trip definitions.
type TripStore interface {
	CreateTrip(ctx context.Context, spec models.TripSpec) (models.Trip, error)
	UpdateTrip(ctx context.Context, id int64, upd models.TripUpdate) (models.Trip, error)
	GetTrip(ctx context.Context, id int64) (models.Trip, error)
	// ListActiveTrips returns active trips departing at or after asOf.
	ListActiveTrips(ctx context.Context, asOf time.Time) ([]models.Trip, error)
	ListTripsByDateRange(ctx context.Context, start, end time.Time) ([]models.Trip, error)
	// ListUpcomingTrips returns at most limit active trips departing at or
	// after asOf, soonest first.
	ListUpcomingTrips(ctx context.Context, asOf time.Time, limit int) ([]models.Trip, error)
	// ListTripsByProperty returns the active trips assigned to a property.
	ListTripsByProperty(ctx context.Context, propertyID int64) ([]models.Trip, error)
}

// BookingStore holds the booking ledger. CreateBooking stores exactly the
// supplied statuses; callers (the lifecycle service) decide initial values.
// SetPaymentStatus and SetBookingStatus are intentionally independent so the
// two status axes stay decoupled.
type BookingStore interface {
	CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error)
	GetBooking(ctx context.Context, id int64) (models.Booking, error)
	ListBookingsByTrip(ctx context.Context, tripID int64) ([]models.Booking, error)
	ListBookingsByProperty(ctx context.Context, propertyID int64) ([]models.Booking, error)
	SetPaymentStatus(ctx context.Context, id int64, paymentRef string, status models.PaymentStatus) (models.Booking, error)
	SetBookingStatus(ctx context.Context, id int64, status models.BookingStatus) (models.Booking, error)
	CountBookingsByStatus(ctx context.Context, status models.BookingStatus) (int, error)
}

type PropertyStore interface {
	CreateProperty(ctx context.Context, spec models.PropertySpec) (models.Property, error)
	GetProperty(ctx context.Context, id int64) (models.Property, error)
	GetPropertyBySlug(ctx context.Context, slug string) (models.Property, error)
	ListProperties(ctx context.Context) ([]models.Property, error)
}

type PropertyTripStore interface {
	// AssignTripToProperty links a trip to a property; assigning the same pair
	// twice is a domain.ConflictError.
	AssignTripToProperty(ctx context.Context, propertyID, tripID int64) (models.PropertyTrip, error)
	ListPropertiesByTrip(ctx context.Context, tripID int64) ([]models.Property, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, u models.User) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
}

// Store bundles every persistence concern behind one injectable value.
type Store interface {
	TripStore
	BookingStore
	PropertyStore
	PropertyTripStore
	UserStore
}
