package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type paymentIntentRequest struct {
	BookingID int64 `json:"bookingId"`
}

// POST /api/payments/intent
func (h *API) CreatePaymentIntent(c *gin.Context) {
	var req paymentIntentRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.BookingID <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "bookingId must be set", nil)
		return
	}
	booking, err := h.Payments.CreateIntent(c.Request.Context(), req.BookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookingId":   booking.ID,
		"paymentRef":  booking.PaymentRef,
		"totalAmount": booking.TotalAmount,
	})
}

type paymentWebhookRequest struct {
	BookingID  int64  `json:"bookingId"`
	PaymentRef string `json:"paymentRef"`
	Succeeded  bool   `json:"succeeded"`
}

// POST /api/payments/webhook
//
// The provider retries deliveries, so the same outcome may arrive more than
// once; duplicates are acknowledged without reapplying anything.
func (h *API) PaymentWebhook(c *gin.Context) {
	var req paymentWebhookRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.BookingID <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "bookingId must be set", nil)
		return
	}

	outcome, err := h.Bookings.RecordPaymentOutcome(c.Request.Context(), req.BookingID, req.PaymentRef, req.Succeeded)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"received":       true,
		"alreadyApplied": outcome.AlreadyApplied,
		"bookingStatus":  outcome.Booking.BookingStatus,
		"paymentStatus":  outcome.Booking.PaymentStatus,
	})
}
