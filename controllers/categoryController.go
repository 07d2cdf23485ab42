package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ngoconnect-web/backend"
)

func (ctl *Controller) Home(c *gin.Context) {
	ctl.render(c, http.StatusOK, "home.html", gin.H{
		"Categories": ctl.Categories.All(),
	})
}

// Category lists the NGOs registered under the category of slug.
func (ctl *Controller) Category(c *gin.Context) {
	cat, ok := ctl.Categories.BySlug(c.Param("slug"))
	if !ok {
		ctl.NotFound(c)
		return
	}

	data := gin.H{"Title": cat.Name, "Category": cat}
	ngos, err := ctl.API.NGOsByCategory(c.Request.Context(), cat.Value)
	switch {
	case err == nil:
		data["NGOs"] = ngos
	case errors.Is(err, backend.ErrNotFound):
		data["NGOs"] = nil
	default:
		msg, ok := ctl.failure(c, err)
		if !ok {
			return
		}
		data["Message"] = msg
		ctl.render(c, http.StatusBadGateway, "category.html", data)
		return
	}
	ctl.render(c, http.StatusOK, "category.html", data)
}

// CategoryList is the JSON catalogue used by form widgets.
func (ctl *Controller) CategoryList(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Categories.All())
}
