package routes

import (
	"github.com/gin-gonic/gin"
)

const PathGigs = "/gigs"

func addGigRoutes(rg *gin.RouterGroup, deps Dependencies, requireAuth gin.HandlerFunc) {
	gigs := rg.Group(PathGigs)
	{
		gigs.GET("", deps.Gigs.ListGigs)
		gigs.GET("/stats", deps.Gigs.GigStats)
		gigs.GET("/:id", deps.Gigs.GetGig)
	}

	owned := rg.Group(PathGigs, requireAuth)
	{
		owned.POST("", deps.Gigs.CreateGig)
		owned.PUT("/:id", deps.Gigs.UpdateGig)
		owned.DELETE("/:id", deps.Gigs.DeleteGig)
		owned.PATCH("/:id/toggle", deps.Gigs.ToggleGig)
	}
}
