package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"ngoconnect-web/controllers"
)

// UserRoutes sets up the home, profile, category and lookup endpoints
func UserRoutes(r *gin.Engine, ctl *controllers.Controller, corsOrigins []string) {
	r.GET("/", ctl.Home)
	r.GET("/profile", ctl.Profile)
	r.GET("/category/:slug", ctl.Category)
	r.GET("/location/reverse", ctl.ReverseGeocode)

	api := r.Group("/api")
	if len(corsOrigins) > 0 {
		api.Use(cors.New(cors.Config{
			AllowOrigins:     corsOrigins,
			AllowMethods:     []string{"GET", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Accept", "Content-Type"},
			AllowCredentials: true,
		}))
	}
	{
		api.GET("/session", ctl.SessionInfo)
		api.GET("/categories", ctl.CategoryList)
	}
}
