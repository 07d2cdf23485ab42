package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ngoconnect-web/geocode"
)

// ReverseGeocode fills location fields from the browser's coordinates.
func (ctl *Controller) ReverseGeocode(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon are required"})
		return
	}

	location, err := ctl.Geocoder.Reverse(c.Request.Context(), lat, lon)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"location": location})
	case errors.Is(err, geocode.ErrInvalidCoordinates):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
	case errors.Is(err, geocode.ErrNoAddress):
		c.JSON(http.StatusNotFound, gin.H{"error": "no address found"})
	default:
		slog.WarnContext(c.Request.Context(), "reverse geocoding failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "location lookup failed"})
	}
}
