package api

import (
	"net/http"

	"newsdesk/internal/service"

	"github.com/gin-gonic/gin"
)

// listSubscriptions returns the denormalized subscription list, narrowed by
// query-string filters
func (h *Handler) listSubscriptions(c *gin.Context) {
	filter := service.SubscriptionFilter{
		Search:          c.Query("search"),
		PaymentType:     c.Query("payment_type"),
		Language:        c.Query("language"),
		AreaID:          c.Query("area_id"),
		DeliveryAgentID: c.Query("delivery_agent_id"),
	}

	views, err := h.subscriptions.List(c.Request.Context(), filter)
	if err != nil {
		fetchError(c, "Failed to fetch subscriptions", err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// createSubscription handles subscription creation
func (h *Handler) createSubscription(c *gin.Context) {
	var req SubscriptionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	sub := req.toModel()
	if err := h.subscriptions.Create(c.Request.Context(), sub); err != nil {
		mutationError(c, "Failed to create subscription", err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// updateSubscription handles subscription updates
func (h *Handler) updateSubscription(c *gin.Context) {
	var req SubscriptionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	sub := req.toModel()
	sub.ID = c.Param("id")
	if err := h.subscriptions.Update(c.Request.Context(), sub); err != nil {
		mutationError(c, "Failed to update subscription", err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// deleteSubscription handles subscription deletion
func (h *Handler) deleteSubscription(c *gin.Context) {
	if err := h.subscriptions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		mutationError(c, "Failed to delete subscription", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// completeSubscription marks a subscription completed
func (h *Handler) completeSubscription(c *gin.Context) {
	if err := h.subscriptions.MarkCompleted(c.Request.Context(), c.Param("id")); err != nil {
		mutationError(c, "Failed to update subscription status", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "completed"})
}

// markSubscriptionPaid marks a subscription's payment status paid
func (h *Handler) markSubscriptionPaid(c *gin.Context) {
	if err := h.subscriptions.MarkPaid(c.Request.Context(), c.Param("id")); err != nil {
		mutationError(c, "Failed to update payment status", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "paid"})
}
