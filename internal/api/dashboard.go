package api

import (
	"errors"
	"net/http"

	"newsdesk/internal/auth"

	"github.com/gin-gonic/gin"
)

// login handles operator sign-in
func (h *Handler) login(c *gin.Context) {
	var req LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	session, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) || errors.Is(err, auth.ErrLoginDisabled) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Failed to create session",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, session)
}

// logout revokes the current session
func (h *Handler) logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Request.Context(), auth.TokenFromRequest(c)); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Failed to revoke session",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}

// session returns the current session
func (h *Handler) session(c *gin.Context) {
	session, _ := c.Get("session")
	c.JSON(http.StatusOK, session)
}

// dashboardStats returns the stat-card counts. Never fails: broken counts
// come back as zeros.
func (h *Handler) dashboardStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.Stats(c.Request.Context()))
}

// dashboardAnalytics returns the subscription aggregates. Never fails: a
// broken snapshot comes back as empty aggregates.
func (h *Handler) dashboardAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.Analytics(c.Request.Context()))
}

// bookingAlert returns the latest booking alert and its indicator state
func (h *Handler) bookingAlert(c *gin.Context) {
	pending, unacked := h.alerts.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"alert":   pending,
		"unacked": unacked,
	})
}

// ackBookingAlert clears the alert indicator, keeping the payload
func (h *Handler) ackBookingAlert(c *gin.Context) {
	h.alerts.Acknowledge()
	pending, unacked := h.alerts.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"alert":   pending,
		"unacked": unacked,
	})
}
