package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ngoconnect-web/middlewares"
)

// SessionInfo exposes the shared session context to client scripts.
func (ctl *Controller) SessionInfo(c *gin.Context) {
	id := middlewares.CurrentIdentity(c)
	c.JSON(http.StatusOK, gin.H{
		"state":    id.State,
		"id":       id.SubjectID,
		"loggedIn": id.Authenticated(),
	})
}

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
