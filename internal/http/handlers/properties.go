package handlers

import (
	"net/http"
	"strings"

	"shuttlebook/internal/domain/models"
	"shuttlebook/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/properties
func (h *API) ListProperties(c *gin.Context) {
	properties, err := h.Store.ListProperties(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

// GET /api/properties/:slug
func (h *API) GetPropertyBySlug(c *gin.Context) {
	property, err := h.Store.GetPropertyBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

// GET /api/properties/:slug/trips
func (h *API) ListPropertyTrips(c *gin.Context) {
	ctx := c.Request.Context()
	property, err := h.Store.GetPropertyBySlug(ctx, c.Param("slug"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	trips, err := h.Trips.ListForProperty(ctx, property.ID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// GET /api/admin/properties/:id/bookings
func (h *API) ListPropertyBookings(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := h.Store.GetProperty(ctx, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	bookings, err := h.Store.ListBookingsByProperty(ctx, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// POST /api/admin/properties
func (h *API) CreateProperty(c *gin.Context) {
	var spec models.PropertySpec
	if !BindJSONOrError(c, &spec) {
		return
	}
	spec.Name = utils.NormalizeSpace(spec.Name)
	if spec.Name == "" || strings.TrimSpace(spec.MeetingPoint) == "" {
		RespondError(c, http.StatusBadRequest, "name and meetingPoint are required", nil)
		return
	}
	if strings.TrimSpace(spec.Slug) == "" {
		spec.Slug = utils.Slugify(spec.Name)
	}

	property, err := h.Store.CreateProperty(c.Request.Context(), spec)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, property)
}
