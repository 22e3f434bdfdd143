// README: Proactive meal suggestion handler.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"forkcast/internal/modules/suggest"
)

type SuggestHandler struct {
	suggest *suggest.Service
}

func NewSuggestHandler(svc *suggest.Service) *SuggestHandler {
	return &SuggestHandler{suggest: svc}
}

type suggestReq struct {
	UserID   string `json:"user_id"`
	Location string `json:"location"`
	Time     string `json:"time"` // optional RFC 3339; defaults to now
}

// Handle handles POST /suggestions.
func (h *SuggestHandler) Handle(c *gin.Context) {
	var req suggestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	var at time.Time
	if req.Time != "" {
		parsed, err := time.Parse(time.RFC3339, req.Time)
		if err != nil {
			writeError(c, http.StatusBadRequest, "invalid time, want RFC 3339")
			return
		}
		at = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	s, err := h.suggest.Suggest(ctx, req.UserID, req.Location, at)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, s)
}
