package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/cricket-stats-service/internal/service"
	"github.com/maxviazov/cricket-stats-service/pkg/response"
)

type PlayerHandler struct {
	svc service.PlayerService
}

func NewPlayerHandler(svc service.PlayerService) *PlayerHandler { return &PlayerHandler{svc: svc} }

func (h *PlayerHandler) Register(r *gin.RouterGroup) {
	players := r.Group("/players")
	players.GET("/:name/stats", h.stats)
	players.GET("/:name/rivalries", h.rivalries)
}

func (h *PlayerHandler) stats(c *gin.Context) {
	filters, err := filtersFromRequest(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	res, err := h.svc.GetPlayerStats(c.Request.Context(), c.Param("name"), filters)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *PlayerHandler) rivalries(c *gin.Context) {
	filters, err := filtersFromRequest(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			response.WriteError(c, service.NewInvalidInputError([]service.FieldError{
				{Field: "limit", Message: "must be an integer"},
			}))
			return
		}
		limit = v
	}
	res, err := h.svc.GetRivalries(c.Request.Context(), c.Param("name"), filters, c.Query("granularity"), limit)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}
