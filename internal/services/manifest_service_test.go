package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"shuttlebook/internal/domain/models"
	"shuttlebook/internal/store/memstore"
)

func newManifestFixture(t *testing.T) (ManifestService, *BookingService, int64, int64) {
	t.Helper()
	st := memstore.New()
	ctx := context.Background()

	trip, err := st.CreateTrip(ctx, models.TripSpec{
		DepartureDate:     time.Date(2026, 10, 3, 9, 0, 0, 0, time.UTC),
		ReturnDate:        time.Date(2026, 10, 3, 17, 0, 0, 0, time.UTC),
		DepartureTime:     "9:00 AM",
		ReturnTime:        "5:00 PM",
		MaxCapacity:       30,
		PricePerSeat:      2500,
		DepartureLocation: "Community Center",
	})
	if err != nil {
		t.Fatalf("create trip: %v", err)
	}
	prop, err := st.CreateProperty(ctx, models.PropertySpec{
		Name: "Green Acres", Slug: "green-acres", MeetingPoint: "Front gate",
	})
	if err != nil {
		t.Fatalf("create property: %v", err)
	}
	if _, err := st.AssignTripToProperty(ctx, prop.ID, trip.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}

	bookings := &BookingService{Store: st, Trips: TripService{Store: st}}
	return ManifestService{Store: st}, bookings, trip.ID, prop.ID
}

func TestManifestRowsForActiveBookings(t *testing.T) {
	manifests, bookings, tripID, propID := newManifestFixture(t)
	ctx := context.Background()

	kept, err := bookings.AdmitBooking(ctx, models.BookingSpec{
		TripID: tripID, PropertyID: propID,
		CustomerName: "Pat Jones", CustomerEmail: "pat@example.com", CustomerPhone: "555-0101",
		NumberOfSeats: 2,
	})
	if err != nil {
		t.Fatalf("admit: %v", err)
	}
	dropped, err := bookings.AdmitBooking(ctx, models.BookingSpec{
		TripID: tripID, PropertyID: propID,
		CustomerName: "Sam Lee", CustomerEmail: "sam@example.com", CustomerPhone: "555-0102",
		NumberOfSeats: 1,
	})
	if err != nil {
		t.Fatalf("admit second: %v", err)
	}
	if _, err := bookings.CancelBooking(ctx, dropped.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	rows, err := manifests.Generate(ctx, tripID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("manifest has %d rows, want 1 (cancelled excluded)", len(rows))
	}
	row := rows[0]
	if row.BookingID != kept.ID || row.Name != "Pat Jones" || row.Seats != 2 {
		t.Fatalf("unexpected row: %+v", row)
	}
	if row.PropertyName != "Green Acres" {
		t.Fatalf("property name = %q, want Green Acres", row.PropertyName)
	}
	if row.PaymentStatus != models.PaymentPending {
		t.Fatalf("payment status = %s, want pending", row.PaymentStatus)
	}
}

func TestManifestUnknownTripIsEmpty(t *testing.T) {
	manifests, _, _, _ := newManifestFixture(t)
	rows, err := manifests.Generate(context.Background(), 404)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("unknown trip produced %d rows", len(rows))
	}
}

func TestManifestPDFRenders(t *testing.T) {
	manifests, bookings, tripID, propID := newManifestFixture(t)
	ctx := context.Background()

	if _, err := bookings.AdmitBooking(ctx, models.BookingSpec{
		TripID: tripID, PropertyID: propID,
		CustomerName: "Pat Jones", CustomerEmail: "pat@example.com", CustomerPhone: "555-0101",
		NumberOfSeats: 2,
	}); err != nil {
		t.Fatalf("admit: %v", err)
	}

	data, filename, err := manifests.RenderPDF(ctx, tripID)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
	if filename != "MANIFEST_TRIP_1_2026-10-03.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}
