package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/cricket-stats-service/internal/service"
	"github.com/maxviazov/cricket-stats-service/pkg/response"
)

type VenueHandler struct {
	svc service.VenueService
}

func NewVenueHandler(svc service.VenueService) *VenueHandler { return &VenueHandler{svc: svc} }

func (h *VenueHandler) Register(r *gin.RouterGroup) {
	venues := r.Group("/venues")
	venues.GET("/:name/stats", h.stats)
}

func (h *VenueHandler) stats(c *gin.Context) {
	filters, err := filtersFromRequest(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	res, err := h.svc.GetVenueStats(c.Request.Context(), c.Param("name"), filters)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}
