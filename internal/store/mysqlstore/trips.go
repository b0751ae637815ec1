package mysqlstore

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"shuttlebook/internal/domain"
	"shuttlebook/internal/domain/models"
)

const tripColumns = `id, departure_date, return_date, departure_time, return_time,
	max_capacity, price_per_seat, is_active, booking_close_hours,
	departure_location, return_location`

func (s *Store) CreateTrip(ctx context.Context, spec models.TripSpec) (models.Trip, error) {
	maxCapacity := spec.MaxCapacity
	if maxCapacity == 0 {
		maxCapacity = 30
	}
	closeHours := spec.BookingCloseHours
	if closeHours == 0 {
		closeHours = 24
	}
	isActive := true
	if spec.IsActive != nil {
		isActive = *spec.IsActive
	}

	res, err := s.DB.ExecContext(ctx, `
		INSERT INTO trips (departure_date, return_date, departure_time, return_time,
			max_capacity, price_per_seat, is_active, booking_close_hours,
			departure_location, return_location)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		spec.DepartureDate, spec.ReturnDate, spec.DepartureTime, spec.ReturnTime,
		maxCapacity, spec.PricePerSeat, isActive, closeHours,
		spec.DepartureLocation, spec.ReturnLocation,
	)
	if err != nil {
		return models.Trip{}, domain.InternalError{Msg: "insert trip failed", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Trip{}, domain.InternalError{Msg: "insert trip id", Err: err}
	}
	return s.GetTrip(ctx, id)
}

func (s *Store) UpdateTrip(ctx context.Context, id int64, upd models.TripUpdate) (models.Trip, error) {
	sets := []string{}
	args := []any{}
	add := func(col string, v any) {
		sets = append(sets, col+"=?")
		args = append(args, v)
	}
	if upd.DepartureDate != nil {
		add("departure_date", *upd.DepartureDate)
	}
	if upd.ReturnDate != nil {
		add("return_date", *upd.ReturnDate)
	}
	if upd.DepartureTime != nil {
		add("departure_time", *upd.DepartureTime)
	}
	if upd.ReturnTime != nil {
		add("return_time", *upd.ReturnTime)
	}
	if upd.MaxCapacity != nil {
		add("max_capacity", *upd.MaxCapacity)
	}
	if upd.PricePerSeat != nil {
		add("price_per_seat", *upd.PricePerSeat)
	}
	if upd.IsActive != nil {
		add("is_active", *upd.IsActive)
	}
	if upd.BookingCloseHours != nil {
		add("booking_close_hours", *upd.BookingCloseHours)
	}
	if upd.DepartureLocation != nil {
		add("departure_location", *upd.DepartureLocation)
	}
	if upd.ReturnLocation != nil {
		add("return_location", *upd.ReturnLocation)
	}

	if len(sets) > 0 {
		args = append(args, id)
		if _, err := s.DB.ExecContext(ctx, `UPDATE trips SET `+strings.Join(sets, ",")+` WHERE id=?`, args...); err != nil {
			return models.Trip{}, domain.InternalError{Msg: "update trip failed", Err: err}
		}
	}
	// The read reports not-found when the trip is absent.
	return s.GetTrip(ctx, id)
}

func (s *Store) GetTrip(ctx context.Context, id int64) (models.Trip, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+tripColumns+` FROM trips WHERE id=? LIMIT 1`, id)
	trip, err := scanTrip(row)
	if err == sql.ErrNoRows {
		return models.Trip{}, domain.NotFoundError{Resource: "trip"}
	}
	if err != nil {
		return models.Trip{}, domain.InternalError{Msg: "query trip failed", Err: err}
	}
	return trip, nil
}

func (s *Store) ListActiveTrips(ctx context.Context, asOf time.Time) ([]models.Trip, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+tripColumns+` FROM trips
		WHERE is_active=1 AND departure_date >= ?
		ORDER BY id ASC`, asOf)
	if err != nil {
		return nil, domain.InternalError{Msg: "query active trips failed", Err: err}
	}
	defer rows.Close()
	return collectTrips(rows)
}

func (s *Store) ListTripsByDateRange(ctx context.Context, start, end time.Time) ([]models.Trip, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+tripColumns+` FROM trips
		WHERE departure_date >= ? AND departure_date <= ?
		ORDER BY id ASC`, start, end)
	if err != nil {
		return nil, domain.InternalError{Msg: "query trips by range failed", Err: err}
	}
	defer rows.Close()
	return collectTrips(rows)
}

func (s *Store) ListUpcomingTrips(ctx context.Context, asOf time.Time, limit int) ([]models.Trip, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+tripColumns+` FROM trips
		WHERE is_active=1 AND departure_date >= ?
		ORDER BY departure_date ASC
		LIMIT ?`, asOf, limit)
	if err != nil {
		return nil, domain.InternalError{Msg: "query upcoming trips failed", Err: err}
	}
	defer rows.Close()
	return collectTrips(rows)
}

func (s *Store) ListTripsByProperty(ctx context.Context, propertyID int64) ([]models.Trip, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT t.id, t.departure_date, t.return_date, t.departure_time, t.return_time,
			t.max_capacity, t.price_per_seat, t.is_active, t.booking_close_hours,
			t.departure_location, t.return_location
		FROM trips t
		JOIN property_trips pt ON pt.trip_id = t.id
		WHERE pt.property_id = ? AND t.is_active = 1
		ORDER BY t.id ASC`, propertyID)
	if err != nil {
		return nil, domain.InternalError{Msg: "query trips by property failed", Err: err}
	}
	defer rows.Close()
	return collectTrips(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(r rowScanner) (models.Trip, error) {
	var t models.Trip
	err := r.Scan(
		&t.ID,
		&t.DepartureDate,
		&t.ReturnDate,
		&t.DepartureTime,
		&t.ReturnTime,
		&t.MaxCapacity,
		&t.PricePerSeat,
		&t.IsActive,
		&t.BookingCloseHours,
		&t.DepartureLocation,
		&t.ReturnLocation,
	)
	return t, err
}

func collectTrips(rows *sql.Rows) ([]models.Trip, error) {
	out := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "scan trip failed", Err: err}
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "iterate trips failed", Err: err}
	}
	return out, nil
}
