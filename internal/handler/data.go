package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/cricket-stats-service/internal/service"
	"github.com/maxviazov/cricket-stats-service/pkg/response"
)

// DataHandler exposes loader control: progress inspection and re-ingestion.
type DataHandler struct {
	svc service.MetaService
}

func NewDataHandler(svc service.MetaService) *DataHandler {
	return &DataHandler{svc: svc}
}

func (h *DataHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/data")
	g.GET("/status", h.status)
	g.POST("/reload", h.reload)
}

func (h *DataHandler) status(c *gin.Context) {
	response.WriteData(c, http.StatusOK, h.svc.LoadStatus(c.Request.Context()))
}

func (h *DataHandler) reload(c *gin.Context) {
	if err := h.svc.Reload(c.Request.Context()); err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusAccepted, gin.H{"status": "reload started"})
}
