package models

import "time"

// Trip is a single scheduled shuttle departure/return with fixed capacity and
// price. PricePerSeat is in cents. DepartureTime/ReturnTime are display text
// ("9:00 AM"); DepartureDate/ReturnDate carry the actual timestamps.
type Trip struct {
	ID                int64     `json:"id"`
	DepartureDate     time.Time `json:"departureDate"`
	ReturnDate        time.Time `json:"returnDate"`
	DepartureTime     string    `json:"departureTime"`
	ReturnTime        string    `json:"returnTime"`
	MaxCapacity       int       `json:"maxCapacity"`
	PricePerSeat      int64     `json:"pricePerSeat"`
	IsActive          bool      `json:"isActive"`
	BookingCloseHours int       `json:"bookingCloseHours"`
	DepartureLocation string    `json:"departureLocation"`
	ReturnLocation    string    `json:"returnLocation"`
}

// TripSpec carries admin-supplied fields for trip creation. The admin is a
// trusted caller; only schema-level defaults are applied.
type TripSpec struct {
	DepartureDate     time.Time `json:"departureDate"`
	ReturnDate        time.Time `json:"returnDate"`
	DepartureTime     string    `json:"departureTime"`
	ReturnTime        string    `json:"returnTime"`
	MaxCapacity       int       `json:"maxCapacity"`
	PricePerSeat      int64     `json:"pricePerSeat"`
	IsActive          *bool     `json:"isActive"`
	BookingCloseHours int       `json:"bookingCloseHours"`
	DepartureLocation string    `json:"departureLocation"`
	ReturnLocation    string    `json:"returnLocation"`
}

// TripUpdate supports PATCH-style updates via key presence.
type TripUpdate struct {
	DepartureDate     *time.Time `json:"departureDate"`
	ReturnDate        *time.Time `json:"returnDate"`
	DepartureTime     *string    `json:"departureTime"`
	ReturnTime        *string    `json:"returnTime"`
	MaxCapacity       *int       `json:"maxCapacity"`
	PricePerSeat      *int64     `json:"pricePerSeat"`
	IsActive          *bool      `json:"isActive"`
	BookingCloseHours *int       `json:"bookingCloseHours"`
	DepartureLocation *string    `json:"departureLocation"`
	ReturnLocation    *string    `json:"returnLocation"`
}

// Apply merges set fields onto t.
func (u TripUpdate) Apply(t *Trip) {
	if u.DepartureDate != nil {
		t.DepartureDate = *u.DepartureDate
	}
	if u.ReturnDate != nil {
		t.ReturnDate = *u.ReturnDate
	}
	if u.DepartureTime != nil {
		t.DepartureTime = *u.DepartureTime
	}
	if u.ReturnTime != nil {
		t.ReturnTime = *u.ReturnTime
	}
	if u.MaxCapacity != nil {
		t.MaxCapacity = *u.MaxCapacity
	}
	if u.PricePerSeat != nil {
		t.PricePerSeat = *u.PricePerSeat
	}
	if u.IsActive != nil {
		t.IsActive = *u.IsActive
	}
	if u.BookingCloseHours != nil {
		t.BookingCloseHours = *u.BookingCloseHours
	}
	if u.DepartureLocation != nil {
		t.DepartureLocation = *u.DepartureLocation
	}
	if u.ReturnLocation != nil {
		t.ReturnLocation = *u.ReturnLocation
	}
}

// TripWithAvailability decorates a trip with its computed free seats.
type TripWithAvailability struct {
	Trip
	AvailableSeats int `json:"availableSeats"`
}
