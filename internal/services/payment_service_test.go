package services

import (
	"context"
	"strings"
	"testing"

	"shuttlebook/internal/domain"
	"shuttlebook/internal/domain/models"
	"shuttlebook/internal/store/memstore"
)

type recordingProvider struct {
	amount int64
	meta   ChargeMeta
}

func (p *recordingProvider) CreateCharge(_ context.Context, amountCents int64, meta ChargeMeta) (string, error) {
	p.amount = amountCents
	p.meta = meta
	return "pi_test_ref", nil
}

func TestCreateIntentChargesBookingTotal(t *testing.T) {
	st := memstore.New()
	ctx := context.Background()

	b, err := st.CreateBooking(ctx, models.Booking{
		TripID: 1, PropertyID: 1,
		CustomerName: "Pat Jones", CustomerEmail: "pat@example.com",
		NumberOfSeats: 2, TotalAmount: 5000,
		PaymentStatus: models.PaymentPending,
		BookingStatus: models.BookingReserved,
	})
	if err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	provider := &recordingProvider{}
	svc := PaymentService{Store: st, Provider: provider}

	updated, err := svc.CreateIntent(ctx, b.ID)
	if err != nil {
		t.Fatalf("create intent: %v", err)
	}
	if provider.amount != 5000 {
		t.Fatalf("charged %d, want 5000", provider.amount)
	}
	if provider.meta.BookingID != b.ID || provider.meta.CustomerEmail != "pat@example.com" {
		t.Fatalf("charge meta %+v", provider.meta)
	}
	if updated.PaymentRef != "pi_test_ref" {
		t.Fatalf("ref = %q, want pi_test_ref", updated.PaymentRef)
	}
	if updated.PaymentStatus != models.PaymentPending {
		t.Fatalf("intent changed payment status to %s", updated.PaymentStatus)
	}
}

func TestCreateIntentUnknownBooking(t *testing.T) {
	svc := PaymentService{Store: memstore.New(), Provider: StubProvider{}}
	if _, err := svc.CreateIntent(context.Background(), 404); !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestStubProviderIssuesReferences(t *testing.T) {
	ref, err := StubProvider{}.CreateCharge(context.Background(), 100, ChargeMeta{})
	if err != nil {
		t.Fatalf("stub charge: %v", err)
	}
	if !strings.HasPrefix(ref, "pi_") {
		t.Fatalf("ref = %q, want pi_ prefix", ref)
	}
}
