// README: Natural-language restaurant query handler.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"forkcast/internal/modules/discovery"
)

const requestTimeout = 10 * time.Second

// Searcher is the slice of the discovery service the HTTP layer needs.
type Searcher interface {
	Search(ctx context.Context, query, location, userID string) (*discovery.Result, error)
}

type QueryHandler struct {
	search Searcher
}

func NewQueryHandler(search Searcher) *QueryHandler {
	return &QueryHandler{search: search}
}

type queryReq struct {
	Query    string `json:"query"`
	Location string `json:"location"`
	UserID   string `json:"user_id"`
}

type queryResp struct {
	Restaurants    []discovery.Restaurant `json:"restaurants"`
	Source         discovery.Source       `json:"source"`
	ProcessedQuery string                 `json:"processed_query"`
	Count          int                    `json:"count"`
}

// Handle handles POST /query.
func (h *QueryHandler) Handle(c *gin.Context) {
	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(c, http.StatusBadRequest, "missing query")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	result, err := h.search.Search(ctx, req.Query, req.Location, req.UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, queryResp{
		Restaurants:    result.Restaurants,
		Source:         result.Source,
		ProcessedQuery: result.Intent.RewrittenQuery,
		Count:          len(result.Restaurants),
	})
}
