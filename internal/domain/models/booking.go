package models

import "time"

// PaymentStatus is the payment axis of a booking. It moves independently of
// BookingStatus; the lifecycle service composes the two.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// BookingStatus is the fulfillment axis of a booking.
type BookingStatus string

const (
	BookingReserved  BookingStatus = "reserved"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingWaitlist  BookingStatus = "waitlist"
)

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingReserved, BookingConfirmed, BookingCancelled, BookingWaitlist:
		return true
	}
	return false
}

// Terminal reports whether no further fulfillment transition is allowed.
// Confirmed is not terminal: an admin may still cancel a confirmed booking,
// which refunds its payment.
func (s BookingStatus) Terminal() bool {
	return s == BookingCancelled
}

// ConsumesCapacity reports whether bookings in this status hold seats.
// Cancelled and waitlisted bookings do not count against trip capacity.
func (s BookingStatus) ConsumesCapacity() bool {
	return s == BookingReserved || s == BookingConfirmed
}

// CanTransitionTo enforces the fulfillment state machine:
// reserved -> confirmed | cancelled | waitlist, waitlist -> reserved | cancelled,
// confirmed -> cancelled (admin cancellation). Nothing leaves cancelled.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	if s.Terminal() {
		return false
	}
	switch s {
	case BookingReserved:
		return next == BookingConfirmed || next == BookingCancelled || next == BookingWaitlist
	case BookingWaitlist:
		return next == BookingReserved || next == BookingCancelled
	case BookingConfirmed:
		return next == BookingCancelled
	}
	return false
}

// CanTransitionTo enforces the payment state machine:
// pending -> paid | refunded, paid -> refunded.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case PaymentPending:
		return next == PaymentPaid || next == PaymentRefunded
	case PaymentPaid:
		return next == PaymentRefunded
	}
	return false
}

// Booking is a customer's reservation of seats on a trip. Amounts are in cents.
type Booking struct {
	ID            int64         `json:"id"`
	TripID        int64         `json:"tripId"`
	PropertyID    int64         `json:"propertyId"`
	CustomerName  string        `json:"customerName"`
	CustomerEmail string        `json:"customerEmail"`
	CustomerPhone string        `json:"customerPhone"`
	NumberOfSeats int           `json:"numberOfSeats"`
	TotalAmount   int64         `json:"totalAmount"`
	PaymentRef    string        `json:"paymentRef,omitempty"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	BookingStatus BookingStatus `json:"bookingStatus"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// BookingSpec carries the fields a caller supplies to create a booking.
// Statuses and totals are decided by the lifecycle service, not the caller.
type BookingSpec struct {
	TripID        int64  `json:"tripId"`
	PropertyID    int64  `json:"propertyId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	NumberOfSeats int    `json:"numberOfSeats"`
}

// ManifestRow is one passenger-list entry for a trip manifest.
type ManifestRow struct {
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Seats         int           `json:"seats"`
	PropertyName  string        `json:"property"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	BookingID     int64         `json:"bookingId"`
}
