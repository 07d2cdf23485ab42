package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ngoconnect-web/middlewares"
)

// Profile shows the account behind the session, or login buttons.
func (ctl *Controller) Profile(c *gin.Context) {
	id := middlewares.CurrentIdentity(c)
	if !id.Resolved() {
		ctl.Denied(c)
		return
	}
	if !id.Authenticated() {
		ctl.render(c, http.StatusOK, "profile.html", gin.H{"Title": "Profile"})
		return
	}

	s := middlewares.CurrentSession(c)
	acc, _, err := ctl.Accounts.Account(c.Request.Context(), s.Token, id.Role())
	if err != nil {
		msg, ok := ctl.failure(c, err)
		if !ok {
			return
		}
		ctl.render(c, http.StatusBadGateway, "profile.html", gin.H{"Title": "Profile", "Message": msg})
		return
	}
	ctl.render(c, http.StatusOK, "profile.html", gin.H{"Title": "Profile", "Account": acc})
}
