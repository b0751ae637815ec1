// Package memstore is the in-memory store.Store implementation, used for
// tests and local development without a database.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"shuttlebook/internal/domain"
	"shuttlebook/internal/domain/models"
)

// Store keeps all entities in maps guarded by one RWMutex. IDs are assigned
// from per-entity counters.
type Store struct {
	mu sync.RWMutex

	trips         map[int64]models.Trip
	bookings      map[int64]models.Booking
	properties    map[int64]models.Property
	propertyTrips map[int64]models.PropertyTrip
	users         map[int64]models.User

	nextTripID         int64
	nextBookingID      int64
	nextPropertyID     int64
	nextPropertyTripID int64
	nextUserID         int64

	now func() time.Time
}

func New() *Store {
	return &Store{
		trips:              map[int64]models.Trip{},
		bookings:           map[int64]models.Booking{},
		properties:         map[int64]models.Property{},
		propertyTrips:      map[int64]models.PropertyTrip{},
		users:              map[int64]models.User{},
		nextTripID:         1,
		nextBookingID:      1,
		nextPropertyID:     1,
		nextPropertyTripID: 1,
		nextUserID:         1,
		now:                func() time.Time { return time.Now().UTC() },
	}
}

// SetClock overrides the timestamp source, for tests.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// --- trips ---

func (s *Store) CreateTrip(_ context.Context, spec models.TripSpec) (models.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trip := models.Trip{
		ID:                s.nextTripID,
		DepartureDate:     spec.DepartureDate,
		ReturnDate:        spec.ReturnDate,
		DepartureTime:     spec.DepartureTime,
		ReturnTime:        spec.ReturnTime,
		MaxCapacity:       spec.MaxCapacity,
		PricePerSeat:      spec.PricePerSeat,
		IsActive:          true,
		BookingCloseHours: spec.BookingCloseHours,
		DepartureLocation: spec.DepartureLocation,
		ReturnLocation:    spec.ReturnLocation,
	}
	if spec.IsActive != nil {
		trip.IsActive = *spec.IsActive
	}
	if trip.MaxCapacity == 0 {
		trip.MaxCapacity = 30
	}
	if trip.BookingCloseHours == 0 {
		trip.BookingCloseHours = 24
	}
	s.nextTripID++
	s.trips[trip.ID] = trip
	return trip, nil
}

func (s *Store) UpdateTrip(_ context.Context, id int64, upd models.TripUpdate) (models.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trip, ok := s.trips[id]
	if !ok {
		return models.Trip{}, domain.NotFoundError{Resource: "trip"}
	}
	upd.Apply(&trip)
	s.trips[id] = trip
	return trip, nil
}

func (s *Store) GetTrip(_ context.Context, id int64) (models.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trip, ok := s.trips[id]
	if !ok {
		return models.Trip{}, domain.NotFoundError{Resource: "trip"}
	}
	return trip, nil
}

func (s *Store) ListActiveTrips(_ context.Context, asOf time.Time) ([]models.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Trip{}
	for _, t := range s.trips {
		if t.IsActive && !t.DepartureDate.Before(asOf) {
			out = append(out, t)
		}
	}
	sortTripsByID(out)
	return out, nil
}

func (s *Store) ListTripsByDateRange(_ context.Context, start, end time.Time) ([]models.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Trip{}
	for _, t := range s.trips {
		if !t.DepartureDate.Before(start) && !t.DepartureDate.After(end) {
			out = append(out, t)
		}
	}
	sortTripsByID(out)
	return out, nil
}

func (s *Store) ListUpcomingTrips(_ context.Context, asOf time.Time, limit int) ([]models.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Trip{}
	for _, t := range s.trips {
		if t.IsActive && !t.DepartureDate.Before(asOf) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DepartureDate.Before(out[j].DepartureDate)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) ListTripsByProperty(_ context.Context, propertyID int64) ([]models.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	assigned := map[int64]bool{}
	for _, pt := range s.propertyTrips {
		if pt.PropertyID == propertyID {
			assigned[pt.TripID] = true
		}
	}
	out := []models.Trip{}
	for id, t := range s.trips {
		if assigned[id] && t.IsActive {
			out = append(out, t)
		}
	}
	sortTripsByID(out)
	return out, nil
}

// --- bookings ---

func (s *Store) CreateBooking(_ context.Context, b models.Booking) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	b.ID = s.nextBookingID
	b.CreatedAt = now
	b.UpdatedAt = now
	s.nextBookingID++
	s.bookings[b.ID] = b
	return b, nil
}

func (s *Store) GetBooking(_ context.Context, id int64) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	return b, nil
}

func (s *Store) ListBookingsByTrip(_ context.Context, tripID int64) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Booking{}
	for _, b := range s.bookings {
		if b.TripID == tripID {
			out = append(out, b)
		}
	}
	sortBookingsByID(out)
	return out, nil
}

func (s *Store) ListBookingsByProperty(_ context.Context, propertyID int64) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Booking{}
	for _, b := range s.bookings {
		if b.PropertyID == propertyID {
			out = append(out, b)
		}
	}
	sortBookingsByID(out)
	return out, nil
}

func (s *Store) SetPaymentStatus(_ context.Context, id int64, paymentRef string, status models.PaymentStatus) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	b.PaymentRef = paymentRef
	b.PaymentStatus = status
	b.UpdatedAt = s.now()
	s.bookings[id] = b
	return b, nil
}

func (s *Store) SetBookingStatus(_ context.Context, id int64, status models.BookingStatus) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	b.BookingStatus = status
	b.UpdatedAt = s.now()
	s.bookings[id] = b
	return b, nil
}

func (s *Store) CountBookingsByStatus(_ context.Context, status models.BookingStatus) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, b := range s.bookings {
		if b.BookingStatus == status {
			count++
		}
	}
	return count, nil
}

// --- properties ---

func (s *Store) CreateProperty(_ context.Context, spec models.PropertySpec) (models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.properties {
		if p.Slug == spec.Slug {
			return models.Property{}, domain.ConflictError{Resource: "property", Msg: "slug already in use"}
		}
	}
	p := models.Property{
		ID:           s.nextPropertyID,
		Name:         spec.Name,
		Slug:         spec.Slug,
		Address:      spec.Address,
		City:         spec.City,
		State:        spec.State,
		ZipCode:      spec.ZipCode,
		ContactPhone: spec.ContactPhone,
		ContactEmail: spec.ContactEmail,
		MeetingPoint: spec.MeetingPoint,
	}
	s.nextPropertyID++
	s.properties[p.ID] = p
	return p, nil
}

func (s *Store) GetProperty(_ context.Context, id int64) (models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.properties[id]
	if !ok {
		return models.Property{}, domain.NotFoundError{Resource: "property"}
	}
	return p, nil
}

func (s *Store) GetPropertyBySlug(_ context.Context, slug string) (models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.properties {
		if p.Slug == slug {
			return p, nil
		}
	}
	return models.Property{}, domain.NotFoundError{Resource: "property"}
}

func (s *Store) ListProperties(_ context.Context) ([]models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Property, 0, len(s.properties))
	for _, p := range s.properties {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// --- property-trip ---

func (s *Store) AssignTripToProperty(_ context.Context, propertyID, tripID int64) (models.PropertyTrip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, pt := range s.propertyTrips {
		if pt.PropertyID == propertyID && pt.TripID == tripID {
			return models.PropertyTrip{}, domain.ConflictError{Resource: "property_trip", Msg: "trip already assigned to property"}
		}
	}
	pt := models.PropertyTrip{
		ID:         s.nextPropertyTripID,
		PropertyID: propertyID,
		TripID:     tripID,
	}
	s.nextPropertyTripID++
	s.propertyTrips[pt.ID] = pt
	return pt, nil
}

func (s *Store) ListPropertiesByTrip(_ context.Context, tripID int64) ([]models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Property{}
	for _, pt := range s.propertyTrips {
		if pt.TripID != tripID {
			continue
		}
		if p, ok := s.properties[pt.PropertyID]; ok {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// --- users ---

func (s *Store) CreateUser(_ context.Context, u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == u.Username {
			return models.User{}, domain.ConflictError{Resource: "user", Msg: "username already registered"}
		}
	}
	u.ID = s.nextUserID
	s.nextUserID++
	s.users[u.ID] = u
	return u, nil
}

func (s *Store) GetUser(_ context.Context, id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	return u, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, domain.NotFoundError{Resource: "user"}
}

func sortTripsByID(trips []models.Trip) {
	sort.Slice(trips, func(i, j int) bool { return trips[i].ID < trips[j].ID })
}

func sortBookingsByID(bookings []models.Booking) {
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID < bookings[j].ID })
}
