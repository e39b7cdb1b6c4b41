package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/maxviazov/cricket-stats-service/internal/service"
)

// Register mounts all public routes on the given engine.
// Accepts service layer dependencies for API endpoints.
func Register(r *gin.Engine, store Pinger, playerSvc service.PlayerService, compareSvc service.ComparisonService, teamSvc service.TeamService, venueSvc service.VenueService, metaSvc service.MetaService) {
	h := NewHealthHandler(store)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	api := r.Group(APIV1Prefix) // Versioning added via single source of truth
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewComparisonHandler(compareSvc).Register(api)
		NewPlayerHandler(playerSvc).Register(api)
		NewTeamHandler(teamSvc).Register(api)
		NewVenueHandler(venueSvc).Register(api)
		NewMetaHandler(metaSvc).Register(api)
		NewDataHandler(metaSvc).Register(api)
	}
}
