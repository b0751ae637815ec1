package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"shuttlebook/internal/http/middleware"
	"shuttlebook/internal/services"
	"shuttlebook/internal/store"

	"github.com/gin-gonic/gin"
)

// API bundles the services behind the HTTP surface. The store is injected so
// the same handlers run against memory or MySQL.
type API struct {
	Store     store.Store
	DB        *sql.DB // nil when running on the in-memory store
	Trips     services.TripService
	Bookings  *services.BookingService
	Manifests services.ManifestService
	Payments  services.PaymentService
	JWTSecret []byte
}

// RespondError sends a standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

// IDParam parses the :id path segment; 0 with false means it was malformed.
func IDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return 0, false
	}
	return id, true
}
