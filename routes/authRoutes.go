package routes

import (
	"github.com/gin-gonic/gin"

	"ngoconnect-web/controllers"
)

// AuthRoutes sets up the login, registration and logout pages
func AuthRoutes(r *gin.Engine, ctl *controllers.Controller) {
	r.GET("/login-ngo", ctl.LoginNGOPage)
	r.POST("/login-ngo", ctl.LoginNGO)
	r.GET("/login-user", ctl.LoginUserPage)
	r.POST("/login-user", ctl.LoginUser)

	r.GET("/register-ngo", ctl.RegisterNGOPage)
	r.POST("/register-ngo", ctl.RegisterNGO)
	r.GET("/register-ngo-info", ctl.NGOInfoPage)
	r.POST("/register-ngo-info", ctl.RegisterNGOInfo)
	r.GET("/register-user", ctl.RegisterUserPage)
	r.POST("/register-user", ctl.RegisterUser)

	r.POST("/logout", ctl.Logout)
}
