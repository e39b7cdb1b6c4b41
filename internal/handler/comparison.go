package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/cricket-stats-service/internal/service"
	"github.com/maxviazov/cricket-stats-service/pkg/response"
)

type ComparisonHandler struct {
	svc service.ComparisonService
}

func NewComparisonHandler(svc service.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{svc: svc}
}

func (h *ComparisonHandler) Register(r *gin.RouterGroup) {
	r.Group("/players").GET("/compare", h.compare)
}

func (h *ComparisonHandler) compare(c *gin.Context) {
	filters, err := filtersFromRequest(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	res, err := h.svc.ComparePlayers(c.Request.Context(), c.Query("player1"), c.Query("player2"), filters)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}
