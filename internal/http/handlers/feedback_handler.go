// README: Restaurant feedback handlers.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"forkcast/internal/modules/feedback"
)

type FeedbackHandler struct {
	feedback *feedback.Service
}

func NewFeedbackHandler(svc *feedback.Service) *FeedbackHandler {
	return &FeedbackHandler{feedback: svc}
}

// Submit handles POST /feedback.
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var f feedback.Feedback
	if err := c.ShouldBindJSON(&f); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.feedback.Submit(ctx, &f); err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, map[string]any{"id": f.ID, "status": "recorded"})
}

// ListByRestaurant handles GET /feedback/restaurant/:id.
func (h *FeedbackHandler) ListByRestaurant(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	items, err := h.feedback.ListByRestaurant(ctx, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"feedback": items, "count": len(items)})
}

// ListByUser handles GET /feedback/user/:id.
func (h *FeedbackHandler) ListByUser(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	items, err := h.feedback.ListByUser(ctx, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"feedback": items, "count": len(items)})
}
