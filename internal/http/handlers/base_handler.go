// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"forkcast/internal/modules/discovery"
	"forkcast/internal/modules/feedback"
	"forkcast/internal/modules/prefs"
	"forkcast/internal/modules/weather"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeServiceError maps module sentinel errors onto HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, discovery.ErrBadRequest),
		errors.Is(err, prefs.ErrBadRequest),
		errors.Is(err, feedback.ErrBadRequest),
		errors.Is(err, weather.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, prefs.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, prefs.ErrUnavailable),
		errors.Is(err, feedback.ErrUnavailable),
		errors.Is(err, weather.ErrUnconfigured):
		writeError(c, http.StatusServiceUnavailable, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
