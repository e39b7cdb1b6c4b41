package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/cricket-stats-service/internal/service"
	"github.com/maxviazov/cricket-stats-service/pkg/response"
)

// MetaHandler serves the dataset catalogs used to populate filter values.
type MetaHandler struct {
	svc service.MetaService
}

func NewMetaHandler(svc service.MetaService) *MetaHandler {
	return &MetaHandler{svc: svc}
}

func (h *MetaHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/meta")
	g.GET("/players", catalog("players", h.svc.Players))
	g.GET("/teams", catalog("teams", h.svc.Teams))
	g.GET("/venues", catalog("venues", h.svc.Venues))
	g.GET("/years", catalog("years", h.svc.Years))
	g.GET("/match-categories", catalog("match_categories", h.svc.Categories))
}

// catalog adapts a list-returning service call into a handler so each
// endpoint shares the same envelope shape.
func catalog(key string, fetch func(ctx context.Context) ([]string, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		values, err := fetch(c.Request.Context())
		if err != nil {
			response.WriteError(c, err)
			return
		}
		response.WriteData(c, http.StatusOK, gin.H{key: values, "count": len(values)})
	}
}
