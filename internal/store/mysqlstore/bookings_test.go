package mysqlstore

import (
	"context"
	"testing"
	"time"

	"shuttlebook/internal/domain"
	"shuttlebook/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

var bookingCols = []string{
	"id", "trip_id", "property_id", "customer_name", "customer_email",
	"customer_phone", "number_of_seats", "total_amount", "payment_ref",
	"payment_status", "booking_status", "created_at", "updated_at",
}

func bookingRow(id int64, seats int, payment, booking string) *sqlmock.Rows {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(bookingCols).AddRow(
		id, int64(1), int64(1), "Pat Jones", "pat@example.com",
		"555-0101", seats, int64(5000), "", payment, booking, now, now,
	)
}

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db), mock
}

func TestGetBookingNotFound(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(bookingCols))

	_, err := st.GetBooking(context.Background(), 404)
	if !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateBookingInsertsAndReloads(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(int64(7)).
		WillReturnRows(bookingRow(7, 2, "pending", "reserved"))

	b, err := st.CreateBooking(context.Background(), models.Booking{
		TripID: 1, PropertyID: 1,
		CustomerName: "Pat Jones", CustomerEmail: "pat@example.com", CustomerPhone: "555-0101",
		NumberOfSeats: 2, TotalAmount: 5000,
		PaymentStatus: models.PaymentPending,
		BookingStatus: models.BookingReserved,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.ID != 7 || b.PaymentStatus != models.PaymentPending || b.BookingStatus != models.BookingReserved {
		t.Fatalf("unexpected booking %+v", b)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSetPaymentStatusReadsThenUpdates(t *testing.T) {
	st, mock := newMockStore(t)

	// existence check, update, reload
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(int64(7)).
		WillReturnRows(bookingRow(7, 2, "pending", "reserved"))
	mock.ExpectExec("UPDATE bookings SET payment_ref=\\?, payment_status=\\?").
		WithArgs("pi_abc", "paid", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(int64(7)).
		WillReturnRows(bookingRow(7, 2, "paid", "reserved"))

	b, err := st.SetPaymentStatus(context.Background(), 7, "pi_abc", models.PaymentPaid)
	if err != nil {
		t.Fatalf("set payment status: %v", err)
	}
	if b.PaymentStatus != models.PaymentPaid {
		t.Fatalf("status = %s, want paid", b.PaymentStatus)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSetBookingStatusUnknownBookingShortCircuits(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(bookingCols))

	_, err := st.SetBookingStatus(context.Background(), 404, models.BookingConfirmed)
	if !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
	// No UPDATE must have been issued.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListBookingsByTrip(t *testing.T) {
	st, mock := newMockStore(t)

	rows := bookingRow(1, 2, "paid", "confirmed").
		AddRow(int64(2), int64(1), int64(1), "Sam Lee", "sam@example.com",
			"555-0102", 1, int64(2500), "", "pending", "reserved",
			time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE trip_id=").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	bookings, err := st.ListBookingsByTrip(context.Background(), 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(bookings) != 2 || bookings[0].ID != 1 || bookings[1].ID != 2 {
		t.Fatalf("unexpected bookings %+v", bookings)
	}
}

func TestCountBookingsByStatus(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
		WithArgs("confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := st.CountBookingsByStatus(context.Background(), models.BookingConfirmed)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("count = %d, want 3", n)
	}
}
