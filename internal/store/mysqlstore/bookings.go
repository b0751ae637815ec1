package mysqlstore

import (
	"context"
	"database/sql"

	"shuttlebook/internal/domain"
	"shuttlebook/internal/domain/models"
)

const bookingColumns = `id, trip_id, property_id, customer_name, customer_email,
	customer_phone, number_of_seats, total_amount, COALESCE(payment_ref, ''),
	payment_status, booking_status, created_at, updated_at`

func (s *Store) CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error) {
	res, err := s.DB.ExecContext(ctx, `
		INSERT INTO bookings (trip_id, property_id, customer_name, customer_email,
			customer_phone, number_of_seats, total_amount, payment_ref,
			payment_status, booking_status)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		b.TripID, b.PropertyID, b.CustomerName, b.CustomerEmail,
		b.CustomerPhone, b.NumberOfSeats, b.TotalAmount, nullIfEmpty(b.PaymentRef),
		string(b.PaymentStatus), string(b.BookingStatus),
	)
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "insert booking failed", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "insert booking id", Err: err}
	}
	return s.GetBooking(ctx, id)
}

func (s *Store) GetBooking(ctx context.Context, id int64) (models.Booking, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=? LIMIT 1`, id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "query booking failed", Err: err}
	}
	return b, nil
}

func (s *Store) ListBookingsByTrip(ctx context.Context, tripID int64) ([]models.Booking, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+bookingColumns+` FROM bookings WHERE trip_id=? ORDER BY id ASC`, tripID)
	if err != nil {
		return nil, domain.InternalError{Msg: "query bookings by trip failed", Err: err}
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (s *Store) ListBookingsByProperty(ctx context.Context, propertyID int64) ([]models.Booking, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+bookingColumns+` FROM bookings WHERE property_id=? ORDER BY id ASC`, propertyID)
	if err != nil {
		return nil, domain.InternalError{Msg: "query bookings by property failed", Err: err}
	}
	defer rows.Close()
	return collectBookings(rows)
}

// SetPaymentStatus updates the payment axis only; booking_status is untouched.
func (s *Store) SetPaymentStatus(ctx context.Context, id int64, paymentRef string, status models.PaymentStatus) (models.Booking, error) {
	if _, err := s.GetBooking(ctx, id); err != nil {
		return models.Booking{}, err
	}
	_, err := s.DB.ExecContext(ctx, `
		UPDATE bookings SET payment_ref=?, payment_status=?, updated_at=NOW() WHERE id=?`,
		nullIfEmpty(paymentRef), string(status), id)
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "update payment status failed", Err: err}
	}
	return s.GetBooking(ctx, id)
}

// SetBookingStatus updates the fulfillment axis only; payment fields are untouched.
func (s *Store) SetBookingStatus(ctx context.Context, id int64, status models.BookingStatus) (models.Booking, error) {
	if _, err := s.GetBooking(ctx, id); err != nil {
		return models.Booking{}, err
	}
	_, err := s.DB.ExecContext(ctx, `
		UPDATE bookings SET booking_status=?, updated_at=NOW() WHERE id=?`,
		string(status), id)
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "update booking status failed", Err: err}
	}
	return s.GetBooking(ctx, id)
}

func (s *Store) CountBookingsByStatus(ctx context.Context, status models.BookingStatus) (int, error) {
	var count int
	err := s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings WHERE booking_status=?`, string(status)).Scan(&count)
	if err != nil {
		return 0, domain.InternalError{Msg: "count bookings failed", Err: err}
	}
	return count, nil
}

func scanBooking(r rowScanner) (models.Booking, error) {
	var b models.Booking
	var payment, booking string
	err := r.Scan(
		&b.ID,
		&b.TripID,
		&b.PropertyID,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.CustomerPhone,
		&b.NumberOfSeats,
		&b.TotalAmount,
		&b.PaymentRef,
		&payment,
		&booking,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return models.Booking{}, err
	}
	b.PaymentStatus = models.PaymentStatus(payment)
	b.BookingStatus = models.BookingStatus(booking)
	return b, nil
}

func collectBookings(rows *sql.Rows) ([]models.Booking, error) {
	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "scan booking failed", Err: err}
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "iterate bookings failed", Err: err}
	}
	return out, nil
}

// nullIfEmpty stores optional strings as NULL instead of empty text.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
