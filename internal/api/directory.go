package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// directoryRoutes wires the routine per-entity CRUD screens
func (h *Handler) directoryRoutes(v1 *gin.RouterGroup) {
	v1.GET("/profiles", h.listProfiles)
	v1.POST("/profiles", h.createProfile)
	v1.PUT("/profiles/:id", h.updateProfile)
	v1.DELETE("/profiles/:id", h.deleteProfile)

	v1.GET("/newspapers", h.listNewspapers)
	v1.POST("/newspapers", h.createNewspaper)
	v1.PUT("/newspapers/:id", h.updateNewspaper)
	v1.DELETE("/newspapers/:id", h.deleteNewspaper)

	v1.GET("/plans", h.listPlans)
	v1.POST("/plans", h.createPlan)
	v1.PUT("/plans/:id", h.updatePlan)
	v1.DELETE("/plans/:id", h.deletePlan)

	v1.GET("/areas", h.listAreas)
	v1.POST("/areas", h.createArea)
	v1.PUT("/areas/:id", h.updateArea)
	v1.DELETE("/areas/:id", h.deleteArea)

	v1.GET("/delivery-agents", h.listDeliveryAgents)
	v1.POST("/delivery-agents", h.createDeliveryAgent)
	v1.PUT("/delivery-agents/:id", h.updateDeliveryAgent)
	v1.DELETE("/delivery-agents/:id", h.deleteDeliveryAgent)

	v1.GET("/coupons", h.listCoupons)
	v1.POST("/coupons", h.createCoupon)
	v1.PUT("/coupons/:id", h.updateCoupon)
	v1.DELETE("/coupons/:id", h.deleteCoupon)

	v1.GET("/services", h.listServices)
	v1.POST("/services", h.createService)
	v1.PUT("/services/:id", h.updateService)
	v1.DELETE("/services/:id", h.deleteService)

	v1.GET("/announcements", h.listAnnouncements)
	v1.POST("/announcements", h.createAnnouncement)
	v1.PUT("/announcements/:id", h.updateAnnouncement)
	v1.DELETE("/announcements/:id", h.deleteAnnouncement)
}

func (h *Handler) listProfiles(c *gin.Context) {
	profiles, err := h.directory.ListProfiles(c.Request.Context(), c.Query("search"))
	if err != nil {
		fetchError(c, "Failed to fetch profiles", err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

func (h *Handler) createProfile(c *gin.Context) {
	var req ProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	p := req.toModel()
	if err := h.directory.CreateProfile(c.Request.Context(), p); err != nil {
		mutationError(c, "Failed to create profile", err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) updateProfile(c *gin.Context) {
	var req ProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	p := req.toModel()
	p.ID = c.Param("id")
	if err := h.directory.UpdateProfile(c.Request.Context(), p); err != nil {
		mutationError(c, "Failed to update profile", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) deleteProfile(c *gin.Context) {
	if err := h.directory.DeleteProfile(c.Request.Context(), c.Param("id")); err != nil {
		mutationError(c, "Failed to delete profile", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) listNewspapers(c *gin.Context) {
	papers, err := h.directory.ListNewspapers(c.Request.Context(), c.Query("search"))
	if err != nil {
		fetchError(c, "Failed to fetch newspapers", err)
		return
	}
	c.JSON(http.StatusOK, papers)
}

func (h *Handler) createNewspaper(c *gin.Context) {
	var req NewspaperInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	n := req.toModel()
	if err := h.directory.CreateNewspaper(c.Request.Context(), n); err != nil {
		mutationError(c, "Failed to create newspaper", err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (h *Handler) updateNewspaper(c *gin.Context) {
	var req NewspaperInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	n := req.toModel()
	n.ID = c.Param("id")
	if err := h.directory.UpdateNewspaper(c.Request.Context(), n); err != nil {
		mutationError(c, "Failed to update newspaper", err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *Handler) deleteNewspaper(c *gin.Context) {
	if err := h.directory.DeleteNewspaper(c.Request.Context(), c.Param("id")); err != nil {
		mutationError(c, "Failed to delete newspaper", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) listPlans(c *gin.Context) {
	plans, err := h.directory.ListPlans(c.Request.Context())
	if err != nil {
		fetchError(c, "Failed to fetch plans", err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (h *Handler) createPlan(c *gin.Context) {
	var req PlanInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	p := req.toModel()
	if err := h.directory.CreatePlan(c.Request.Context(), p); err != nil {
		mutationError(c, "Failed to create plan", err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) updatePlan(c *gin.Context) {
	var req PlanInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	p := req.toModel()
	p.ID = c.Param("id")
	if err := h.directory.UpdatePlan(c.Request.Context(), p); err != nil {
		mutationError(c, "Failed to update plan", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) deletePlan(c *gin.Context) {
	if err := h.directory.DeletePlan(c.Request.Context(), c.Param("id")); err != nil {
		mutationError(c, "Failed to delete plan", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) listAreas(c *gin.Context) {
	areas, err := h.directory.ListAreas(c.Request.Context(), c.Query("search"))
	if err != nil {
		fetchError(c, "Failed to fetch areas", err)
		return
	}
	c.JSON(http.StatusOK, areas)
}

func (h *Handler) createArea(c *gin.Context) {
	var req AreaInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	a := req.toModel()
	if err := h.directory.CreateArea(c.Request.Context(), a); err != nil {
		mutationError(c, "Failed to create area", err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *Handler) updateArea(c *gin.Context) {
	var req AreaInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	a := req.toModel()
	a.ID = c.Param("id")
	if err := h.directory.UpdateArea(c.Request.Context(), a); err != nil {
		mutationError(c, "Failed to update area", err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) deleteArea(c *gin.Context) {
	if err := h.directory.DeleteArea(c.Request.Context(), c.Param("id")); err != nil {
		mutationError(c, "Failed to delete area", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) listDeliveryAgents(c *gin.Context) {
	agents, err := h.directory.ListDeliveryAgents(c.Request.Context(), c.Query("search"))
	if err != nil {
		fetchError(c, "Failed to fetch delivery agents", err)
		return
	}
	c.JSON(http.StatusOK, agents)
}

func (h *Handler) createDeliveryAgent(c *gin.Context) {
	var req AgentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	a := req.toModel()
	if err := h.directory.CreateDeliveryAgent(c.Request.Context(), a); err != nil {
		mutationError(c, "Failed to create delivery agent", err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *Handler) updateDeliveryAgent(c *gin.Context) {
	var req AgentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	a := req.toModel()
	a.ID = c.Param("id")
	if err := h.directory.UpdateDeliveryAgent(c.Request.Context(), a); err != nil {
		mutationError(c, "Failed to update delivery agent", err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) deleteDeliveryAgent(c *gin.Context) {
	if err := h.directory.DeleteDeliveryAgent(c.Request.Context(), c.Param("id")); err != nil {
		mutationError(c, "Failed to delete delivery agent", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) listCoupons(c *gin.Context) {
	coupons, err := h.directory.ListCoupons(c.Request.Context(), c.Query("search"))
	if err != nil {
		fetchError(c, "Failed to fetch coupons", err)
		return
	}
	c.JSON(http.StatusOK, coupons)
}

func (h *Handler) createCoupon(c *gin.Context) {
	var req CouponInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	coupon := req.toModel()
	if err := h.directory.CreateCoupon(c.Request.Context(), coupon); err != nil {
		mutationError(c, "Failed to create coupon", err)
		return
	}
	c.JSON(http.StatusCreated, coupon)
}

func (h *Handler) updateCoupon(c *gin.Context) {
	var req CouponInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	coupon := req.toModel()
	coupon.ID = c.Param("id")
	if err := h.directory.UpdateCoupon(c.Request.Context(), coupon); err != nil {
		mutationError(c, "Failed to update coupon", err)
		return
	}
	c.JSON(http.StatusOK, coupon)
}

func (h *Handler) deleteCoupon(c *gin.Context) {
	if err := h.directory.DeleteCoupon(c.Request.Context(), c.Param("id")); err != nil {
		mutationError(c, "Failed to delete coupon", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) listServices(c *gin.Context) {
	services, err := h.directory.ListServices(c.Request.Context(), c.Query("search"))
	if err != nil {
		fetchError(c, "Failed to fetch services", err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *Handler) createService(c *gin.Context) {
	var req ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	sv := req.toModel()
	if err := h.directory.CreateService(c.Request.Context(), sv); err != nil {
		mutationError(c, "Failed to create service", err)
		return
	}
	c.JSON(http.StatusCreated, sv)
}

func (h *Handler) updateService(c *gin.Context) {
	var req ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	sv := req.toModel()
	sv.ID = c.Param("id")
	if err := h.directory.UpdateService(c.Request.Context(), sv); err != nil {
		mutationError(c, "Failed to update service", err)
		return
	}
	c.JSON(http.StatusOK, sv)
}

func (h *Handler) deleteService(c *gin.Context) {
	if err := h.directory.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		mutationError(c, "Failed to delete service", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) listAnnouncements(c *gin.Context) {
	items, err := h.directory.ListAnnouncements(c.Request.Context())
	if err != nil {
		fetchError(c, "Failed to fetch announcements", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) createAnnouncement(c *gin.Context) {
	var req AnnouncementInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	a := req.toModel()
	if err := h.directory.CreateAnnouncement(c.Request.Context(), a); err != nil {
		mutationError(c, "Failed to create announcement", err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *Handler) updateAnnouncement(c *gin.Context) {
	var req AnnouncementInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	a := req.toModel()
	a.ID = c.Param("id")
	if err := h.directory.UpdateAnnouncement(c.Request.Context(), a); err != nil {
		mutationError(c, "Failed to update announcement", err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) deleteAnnouncement(c *gin.Context) {
	if err := h.directory.DeleteAnnouncement(c.Request.Context(), c.Param("id")); err != nil {
		mutationError(c, "Failed to delete announcement", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
