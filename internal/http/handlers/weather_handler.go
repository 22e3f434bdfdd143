// README: Weather and clothing advice handler.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"forkcast/internal/modules/weather"
)

type WeatherHandler struct {
	weather *weather.Service
}

func NewWeatherHandler(svc *weather.Service) *WeatherHandler {
	return &WeatherHandler{weather: svc}
}

// Get handles GET /weather?location=...
func (h *WeatherHandler) Get(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		writeError(c, http.StatusBadRequest, "missing location")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	rec, err := h.weather.Advise(ctx, location)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, rec)
}
