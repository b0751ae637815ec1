package models

import "testing"

func TestBookingStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		want     bool
	}{
		{BookingReserved, BookingConfirmed, true},
		{BookingReserved, BookingCancelled, true},
		{BookingReserved, BookingWaitlist, true},
		{BookingWaitlist, BookingReserved, true},
		{BookingWaitlist, BookingCancelled, true},
		{BookingWaitlist, BookingConfirmed, false},
		{BookingConfirmed, BookingCancelled, true},
		{BookingConfirmed, BookingReserved, false},
		{BookingConfirmed, BookingWaitlist, false},
		{BookingCancelled, BookingReserved, false},
		{BookingCancelled, BookingConfirmed, false},
		{BookingCancelled, BookingWaitlist, false},
		{BookingConfirmed, BookingConfirmed, true},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestPaymentStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to PaymentStatus
		want     bool
	}{
		{PaymentPending, PaymentPaid, true},
		{PaymentPending, PaymentRefunded, true},
		{PaymentPaid, PaymentRefunded, true},
		{PaymentPaid, PaymentPending, false},
		{PaymentRefunded, PaymentPaid, false},
		{PaymentRefunded, PaymentPending, false},
		{PaymentPaid, PaymentPaid, true},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestConsumesCapacity(t *testing.T) {
	if !BookingReserved.ConsumesCapacity() || !BookingConfirmed.ConsumesCapacity() {
		t.Fatal("reserved and confirmed bookings must hold seats")
	}
	if BookingCancelled.ConsumesCapacity() || BookingWaitlist.ConsumesCapacity() {
		t.Fatal("cancelled and waitlisted bookings must not hold seats")
	}
}

func TestTerminal(t *testing.T) {
	if !BookingCancelled.Terminal() {
		t.Fatal("cancelled is terminal")
	}
	if BookingReserved.Terminal() || BookingWaitlist.Terminal() || BookingConfirmed.Terminal() {
		t.Fatal("reserved, waitlist and confirmed are not terminal")
	}
}
