package api

import (
	"net/http"
	"strconv"
	"time"

	"newsdesk/internal/alert"
	"newsdesk/internal/auth"
	"newsdesk/internal/service"
	"newsdesk/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	dashboard     *service.DashboardService
	subscriptions *service.SubscriptionService
	payments      *service.PaymentService
	bookings      *service.BookingService
	directory     *service.DirectoryService
	alerts        *alert.Listener
	sessions      *auth.Manager
}

// NewHandler creates a new HTTP handler
func NewHandler(
	dashboard *service.DashboardService,
	subscriptions *service.SubscriptionService,
	payments *service.PaymentService,
	bookings *service.BookingService,
	directory *service.DirectoryService,
	alerts *alert.Listener,
	sessions *auth.Manager,
) *Handler {
	return &Handler{
		dashboard:     dashboard,
		subscriptions: subscriptions,
		payments:      payments,
		bookings:      bookings,
		directory:     directory,
		alerts:        alerts,
		sessions:      sessions,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/api/v1/auth/login", h.login)

	v1 := router.Group("/api/v1")
	v1.Use(h.sessions.Middleware())
	{
		v1.POST("/auth/logout", h.logout)
		v1.GET("/auth/session", h.session)

		v1.GET("/dashboard/stats", h.dashboardStats)
		v1.GET("/dashboard/analytics", h.dashboardAnalytics)
		v1.GET("/alerts/booking", h.bookingAlert)
		v1.POST("/alerts/booking/ack", h.ackBookingAlert)

		v1.GET("/subscriptions", h.listSubscriptions)
		v1.POST("/subscriptions", h.createSubscription)
		v1.PUT("/subscriptions/:id", h.updateSubscription)
		v1.DELETE("/subscriptions/:id", h.deleteSubscription)
		v1.POST("/subscriptions/:id/complete", h.completeSubscription)
		v1.POST("/subscriptions/:id/mark-paid", h.markSubscriptionPaid)

		v1.GET("/payments", h.listPayments)
		v1.POST("/payments", h.createPayment)
		v1.PUT("/payments/:id", h.updatePayment)
		v1.DELETE("/payments/:id", h.deletePayment)

		v1.GET("/bookings", h.listBookings)
		v1.POST("/bookings", h.createBooking)
		v1.PUT("/bookings/:id", h.updateBooking)
		v1.POST("/bookings/:id/status", h.updateBookingStatus)
		v1.DELETE("/bookings/:id", h.deleteBooking)

		h.directoryRoutes(v1)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// mutationError renders a failed write with its underlying message
func mutationError(c *gin.Context, msg string, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   msg,
		"details": err.Error(),
	})
}

// fetchError renders a failed read with its underlying message
func fetchError(c *gin.Context, msg string, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   msg,
		"details": err.Error(),
	})
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
