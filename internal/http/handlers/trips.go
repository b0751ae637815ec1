package handlers

import (
	"net/http"
	"time"

	"shuttlebook/internal/domain/models"
	"shuttlebook/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/trips/:id
func (h *API) GetTrip(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	trip, err := h.Trips.GetTripWithAvailability(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// GET /api/admin/trips
//
// With ?from=YYYY-MM-DD&to=YYYY-MM-DD the list covers that departure window
// regardless of active flag; otherwise it is the active upcoming trips.
func (h *API) ListActiveTrips(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	if from != "" && to != "" {
		start, err := utils.ParseDate(from)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid from date", err)
			return
		}
		end, err := utils.ParseDate(to)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid to date", err)
			return
		}
		trips, err := h.Store.ListTripsByDateRange(c.Request.Context(), start, end.Add(24*time.Hour-time.Nanosecond))
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, trips)
		return
	}

	trips, err := h.Trips.ListActive(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// POST /api/admin/trips
func (h *API) CreateTrip(c *gin.Context) {
	var spec models.TripSpec
	if !BindJSONOrError(c, &spec) {
		return
	}
	trip, err := h.Trips.CreateTrip(c.Request.Context(), spec)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// PUT /api/admin/trips/:id
func (h *API) UpdateTrip(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	var upd models.TripUpdate
	if !BindJSONOrError(c, &upd) {
		return
	}
	trip, err := h.Trips.UpdateTrip(c.Request.Context(), id, upd)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// GET /api/admin/trips/:id/bookings
func (h *API) ListTripBookings(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	bookings, err := h.Bookings.ListByTrip(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

type assignPropertyRequest struct {
	PropertyID int64 `json:"propertyId"`
}

// POST /api/admin/trips/:id/property
func (h *API) AssignTripToProperty(c *gin.Context) {
	tripID, ok := IDParam(c)
	if !ok {
		return
	}
	var req assignPropertyRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.Trips.GetTrip(ctx, tripID); err != nil {
		RespondDomainError(c, err)
		return
	}
	if _, err := h.Store.GetProperty(ctx, req.PropertyID); err != nil {
		RespondDomainError(c, err)
		return
	}

	link, err := h.Store.AssignTripToProperty(ctx, req.PropertyID, tripID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

// GET /api/admin/stats
func (h *API) AdminStats(c *gin.Context) {
	ctx := c.Request.Context()

	upcoming, err := h.Store.ListUpcomingTrips(ctx, time.Now().UTC(), 5)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	counts := gin.H{}
	for _, status := range []models.BookingStatus{
		models.BookingReserved, models.BookingConfirmed, models.BookingCancelled, models.BookingWaitlist,
	} {
		n, err := h.Store.CountBookingsByStatus(ctx, status)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		counts[string(status)] = n
	}

	c.JSON(http.StatusOK, gin.H{
		"upcomingTrips":    upcoming,
		"bookingsByStatus": counts,
	})
}
