package services

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"shuttlebook/internal/domain"
	"shuttlebook/internal/domain/models"
	"shuttlebook/internal/store"
	"shuttlebook/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ManifestService projects the passenger list for a trip.
type ManifestService struct {
	Store     store.Store
	RequestID string
}

// Generate returns one row per reserved or confirmed booking on the trip,
// ordered by booking id. Cancelled and waitlisted bookings are excluded.
// An unknown trip yields an empty list, not an error.
func (s ManifestService) Generate(ctx context.Context, tripID int64) ([]models.ManifestRow, error) {
	if _, err := s.Store.GetTrip(ctx, tripID); err != nil {
		if domain.IsNotFound(err) {
			return []models.ManifestRow{}, nil
		}
		return nil, err
	}

	bookings, err := s.Store.ListBookingsByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	properties, err := s.Store.ListPropertiesByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	propertyNames := make(map[int64]string, len(properties))
	for _, p := range properties {
		propertyNames[p.ID] = p.Name
	}

	rows := []models.ManifestRow{}
	for _, b := range bookings {
		if !b.BookingStatus.ConsumesCapacity() {
			continue
		}
		name, ok := propertyNames[b.PropertyID]
		if !ok {
			// Booking carries its propertyId directly; the property may never
			// have been assigned to the trip.
			if p, err := s.Store.GetProperty(ctx, b.PropertyID); err == nil {
				name = p.Name
			} else {
				name = "Unknown"
			}
		}
		rows = append(rows, models.ManifestRow{
			Name:          b.CustomerName,
			Email:         b.CustomerEmail,
			Phone:         b.CustomerPhone,
			Seats:         b.NumberOfSeats,
			PropertyName:  name,
			PaymentStatus: b.PaymentStatus,
			BookingID:     b.ID,
		})
	}

	utils.LogEvent(s.RequestID, "manifest", "generate",
		"trip="+strconv.FormatInt(tripID, 10)+" rows="+strconv.Itoa(len(rows)))
	return rows, nil
}

// RenderPDF builds the printable manifest handed to the driver at departure.
func (s ManifestService) RenderPDF(ctx context.Context, tripID int64) ([]byte, string, error) {
	trip, err := s.Store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, "", err
	}
	rows, err := s.Generate(ctx, tripID)
	if err != nil {
		return nil, "", err
	}
	return buildManifestPDF(trip, rows)
}

func buildManifestPDF(trip models.Trip, rows []models.ManifestRow) ([]byte, string, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Trip Manifest", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("PASSENGER MANIFEST - TRIP #%d", trip.ID))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Departure: %s %s from %s",
		utils.FormatDate(trip.DepartureDate), trip.DepartureTime, trip.DepartureLocation))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Return: %s %s from %s",
		utils.FormatDate(trip.ReturnDate), trip.ReturnTime, trip.ReturnLocation))
	pdf.Ln(10)

	headers := []string{"#", "Name", "Phone", "Email", "Seats", "Community", "Payment"}
	widths := []float64{14, 55, 35, 65, 16, 55, 26}

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	totalSeats := 0
	for _, r := range rows {
		cells := []string{
			strconv.FormatInt(r.BookingID, 10),
			r.Name,
			r.Phone,
			r.Email,
			strconv.Itoa(r.Seats),
			r.PropertyName,
			string(r.PaymentStatus),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		totalSeats += r.Seats
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Total passengers: %d seats across %d bookings (capacity %d)",
		totalSeats, len(rows), trip.MaxCapacity))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("MANIFEST_TRIP_%d_%s.pdf", trip.ID, utils.FormatDate(trip.DepartureDate))
	return buf.Bytes(), filename, nil
}
