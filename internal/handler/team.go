package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/cricket-stats-service/internal/service"
	"github.com/maxviazov/cricket-stats-service/pkg/response"
)

type TeamHandler struct {
	svc service.TeamService
}

func NewTeamHandler(svc service.TeamService) *TeamHandler { return &TeamHandler{svc: svc} }

func (h *TeamHandler) Register(r *gin.RouterGroup) {
	teams := r.Group("/teams")
	// The literal route must register before the parameterized one.
	teams.GET("/compare", h.compare)
	teams.GET("/:name/stats", h.stats)
}

func (h *TeamHandler) stats(c *gin.Context) {
	filters, err := filtersFromRequest(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	res, err := h.svc.GetTeamStats(c.Request.Context(), c.Param("name"), filters)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *TeamHandler) compare(c *gin.Context) {
	filters, err := filtersFromRequest(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	res, err := h.svc.CompareTeams(c.Request.Context(), c.Query("team1"), c.Query("team2"), filters)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}
