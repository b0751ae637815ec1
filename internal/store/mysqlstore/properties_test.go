package mysqlstore

import (
	"context"
	"errors"
	"testing"

	"shuttlebook/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestAssignTripToPropertyDuplicateIsConflict(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO property_trips").
		WithArgs(int64(1), int64(2)).
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry '1-2' for key 'uq_property_trip'"))

	_, err := st.AssignTripToProperty(context.Background(), 1, 2)
	if !domain.IsConflict(err) {
		t.Fatalf("err = %v, want conflict", err)
	}
}

func TestAssignTripToProperty(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO property_trips").
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(9, 1))

	link, err := st.AssignTripToProperty(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if link.ID != 9 || link.PropertyID != 1 || link.TripID != 2 {
		t.Fatalf("unexpected link %+v", link)
	}
}

func TestGetPropertyBySlugNotFound(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectQuery("FROM properties WHERE slug=").
		WithArgs("nowhere").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "slug", "address", "city", "state", "zip_code",
			"contact_phone", "contact_email", "meeting_point",
		}))

	_, err := st.GetPropertyBySlug(context.Background(), "nowhere")
	if !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}
