// README: User preference handlers for get/upsert.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"forkcast/internal/modules/prefs"
)

type PrefsHandler struct {
	prefs *prefs.Service
}

func NewPrefsHandler(svc *prefs.Service) *PrefsHandler {
	return &PrefsHandler{prefs: svc}
}

// Get handles GET /preferences/:userId.
func (h *PrefsHandler) Get(c *gin.Context) {
	userID := c.Param("userId")

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	p, err := h.prefs.Get(ctx, userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, p)
}

// Upsert handles POST /preferences.
func (h *PrefsHandler) Upsert(c *gin.Context) {
	var p prefs.UserPreference
	if err := c.ShouldBindJSON(&p); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.prefs.Upsert(ctx, &p); err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"status": "saved", "user_id": p.UserID})
}
