package mysqlstore

import (
	"context"
	"database/sql"
	"strings"

	"shuttlebook/internal/domain"
	"shuttlebook/internal/domain/models"
)

const propertyColumns = `id, name, slug, address, city, state, zip_code,
	COALESCE(contact_phone, ''), COALESCE(contact_email, ''), meeting_point`

func (s *Store) CreateProperty(ctx context.Context, spec models.PropertySpec) (models.Property, error) {
	res, err := s.DB.ExecContext(ctx, `
		INSERT INTO properties (name, slug, address, city, state, zip_code,
			contact_phone, contact_email, meeting_point)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		spec.Name, spec.Slug, spec.Address, spec.City, spec.State, spec.ZipCode,
		nullIfEmpty(spec.ContactPhone), nullIfEmpty(spec.ContactEmail), spec.MeetingPoint,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return models.Property{}, domain.ConflictError{Resource: "property", Msg: "slug already in use", Err: err}
		}
		return models.Property{}, domain.InternalError{Msg: "insert property failed", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Property{}, domain.InternalError{Msg: "insert property id", Err: err}
	}
	return s.GetProperty(ctx, id)
}

func (s *Store) GetProperty(ctx context.Context, id int64) (models.Property, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id=? LIMIT 1`, id)
	p, err := scanProperty(row)
	if err == sql.ErrNoRows {
		return models.Property{}, domain.NotFoundError{Resource: "property"}
	}
	if err != nil {
		return models.Property{}, domain.InternalError{Msg: "query property failed", Err: err}
	}
	return p, nil
}

func (s *Store) GetPropertyBySlug(ctx context.Context, slug string) (models.Property, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+propertyColumns+` FROM properties WHERE slug=? LIMIT 1`, slug)
	p, err := scanProperty(row)
	if err == sql.ErrNoRows {
		return models.Property{}, domain.NotFoundError{Resource: "property"}
	}
	if err != nil {
		return models.Property{}, domain.InternalError{Msg: "query property failed", Err: err}
	}
	return p, nil
}

func (s *Store) ListProperties(ctx context.Context) ([]models.Property, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT `+propertyColumns+` FROM properties ORDER BY id ASC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "query properties failed", Err: err}
	}
	defer rows.Close()
	return collectProperties(rows)
}

func (s *Store) AssignTripToProperty(ctx context.Context, propertyID, tripID int64) (models.PropertyTrip, error) {
	res, err := s.DB.ExecContext(ctx,
		`INSERT INTO property_trips (property_id, trip_id) VALUES (?,?)`, propertyID, tripID)
	if err != nil {
		if isDuplicateKey(err) {
			return models.PropertyTrip{}, domain.ConflictError{Resource: "property_trip", Msg: "trip already assigned to property", Err: err}
		}
		return models.PropertyTrip{}, domain.InternalError{Msg: "insert property_trip failed", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.PropertyTrip{}, domain.InternalError{Msg: "insert property_trip id", Err: err}
	}
	return models.PropertyTrip{ID: id, PropertyID: propertyID, TripID: tripID}, nil
}

func (s *Store) ListPropertiesByTrip(ctx context.Context, tripID int64) ([]models.Property, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT p.id, p.name, p.slug, p.address, p.city, p.state, p.zip_code,
			COALESCE(p.contact_phone, ''), COALESCE(p.contact_email, ''), p.meeting_point
		FROM properties p
		JOIN property_trips pt ON pt.property_id = p.id
		WHERE pt.trip_id = ?
		ORDER BY p.id ASC`, tripID)
	if err != nil {
		return nil, domain.InternalError{Msg: "query properties by trip failed", Err: err}
	}
	defer rows.Close()
	return collectProperties(rows)
}

func scanProperty(r rowScanner) (models.Property, error) {
	var p models.Property
	err := r.Scan(
		&p.ID,
		&p.Name,
		&p.Slug,
		&p.Address,
		&p.City,
		&p.State,
		&p.ZipCode,
		&p.ContactPhone,
		&p.ContactEmail,
		&p.MeetingPoint,
	)
	return p, err
}

func collectProperties(rows *sql.Rows) ([]models.Property, error) {
	out := []models.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "scan property failed", Err: err}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "iterate properties failed", Err: err}
	}
	return out, nil
}

// isDuplicateKey matches MySQL error 1062 without importing the driver types.
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Error 1062")
}
