package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listPayments returns payment views, narrowed by an optional search term
func (h *Handler) listPayments(c *gin.Context) {
	views, err := h.payments.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		fetchError(c, "Failed to fetch payments", err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// createPayment records a payment
func (h *Handler) createPayment(c *gin.Context) {
	var req PaymentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	payment := req.toModel()
	if err := h.payments.Record(c.Request.Context(), payment); err != nil {
		mutationError(c, "Failed to record payment", err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// updatePayment rewrites a payment
func (h *Handler) updatePayment(c *gin.Context) {
	var req PaymentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	payment := req.toModel()
	payment.ID = c.Param("id")
	if err := h.payments.Update(c.Request.Context(), payment); err != nil {
		mutationError(c, "Failed to update payment", err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// deletePayment removes a payment
func (h *Handler) deletePayment(c *gin.Context) {
	if err := h.payments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		mutationError(c, "Failed to delete payment", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// listBookings returns booking views, narrowed by an optional search term
func (h *Handler) listBookings(c *gin.Context) {
	views, err := h.bookings.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		fetchError(c, "Failed to fetch bookings", err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// createBooking handles booking creation
func (h *Handler) createBooking(c *gin.Context) {
	var req BookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	booking := req.toModel()
	if err := h.bookings.Create(c.Request.Context(), booking); err != nil {
		mutationError(c, "Failed to create booking", err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// updateBooking rewrites a booking
func (h *Handler) updateBooking(c *gin.Context) {
	var req BookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	booking := req.toModel()
	booking.ID = c.Param("id")
	if err := h.bookings.Update(c.Request.Context(), booking); err != nil {
		mutationError(c, "Failed to update booking", err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// updateBookingStatus updates only a booking's status
func (h *Handler) updateBookingStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required,oneof=pending completed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.bookings.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		mutationError(c, "Failed to update booking status", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

// deleteBooking removes a booking
func (h *Handler) deleteBooking(c *gin.Context) {
	if err := h.bookings.Delete(c.Request.Context(), c.Param("id")); err != nil {
		mutationError(c, "Failed to delete booking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
