package routes

import (
	"github.com/gin-gonic/gin"

	"ngoconnect-web/controllers"
	"ngoconnect-web/middlewares"
	"ngoconnect-web/models"
)

// PostRoutes sets up the community feed and post management
func PostRoutes(r *gin.Engine, ctl *controllers.Controller) {
	ngo := middlewares.RequireRole(ctl.Denied, models.RoleNGO)

	r.GET("/community", ctl.Community)
	r.POST("/community/posts/:id/delete", ngo, ctl.DeletePost)

	r.GET("/post", ngo, ctl.PostPage)
	r.POST("/post", ngo, ctl.CreatePost)
}
