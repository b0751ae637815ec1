package handlers

import (
	"net/http"

	"shuttlebook/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// POST /api/bookings
func (h *API) CreateBooking(c *gin.Context) {
	var spec models.BookingSpec
	if !BindJSONOrError(c, &spec) {
		return
	}
	booking, err := h.Bookings.AdmitBooking(c.Request.Context(), spec)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GET /api/bookings/:id
func (h *API) GetBooking(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	booking, err := h.Bookings.GetBooking(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// POST /api/admin/bookings/:id/cancel
func (h *API) CancelBooking(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	booking, err := h.Bookings.CancelBooking(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}
