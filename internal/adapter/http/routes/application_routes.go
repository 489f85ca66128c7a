package routes

import (
	"quickgigs/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathApplications = "/applications"

func addApplicationRoutes(rg *gin.RouterGroup, deps Dependencies, requireAuth gin.HandlerFunc) {
	gigApplications := rg.Group(PathGigs+"/:id/applications", requireAuth)
	{
		gigApplications.POST("", middleware.RateLimit(deps.Limiter, "submit_application"), deps.Applications.SubmitApplication)
		gigApplications.GET("", deps.Applications.ListGigApplications)
	}

	applications := rg.Group(PathApplications, requireAuth)
	{
		applications.GET("/mine", deps.Applications.ListMyApplications)
		applications.GET("/:id", deps.Applications.GetApplication)
		applications.PATCH("/:id/status", deps.Applications.UpdateApplicationStatus)
		applications.POST("/:id/withdraw", deps.Applications.WithdrawApplication)
	}
}
