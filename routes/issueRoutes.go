package routes

import (
	"github.com/gin-gonic/gin"

	"ngoconnect-web/controllers"
	"ngoconnect-web/middlewares"
	"ngoconnect-web/models"
)

// IssueRoutes sets up the dashboard and report pages
func IssueRoutes(r *gin.Engine, ctl *controllers.Controller, limiter gin.HandlerFunc) {
	member := middlewares.RequireRole(ctl.Denied, models.RoleNGO, models.RoleUser)
	ngo := middlewares.RequireRole(ctl.Denied, models.RoleNGO)
	user := middlewares.RequireRole(ctl.Denied, models.RoleUser)

	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("", member, ctl.Dashboard)
		dashboard.POST("/issues/:id/resolve", ngo, ctl.ResolveIssue)
	}

	r.GET("/report", user, ctl.ReportPage)
	r.POST("/report", user, limiter, ctl.SubmitReport)
}
