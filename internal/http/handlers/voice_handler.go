// README: Voice query handler; returns a speech-friendly reply.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"forkcast/internal/modules/discovery"
)

type VoiceHandler struct {
	search Searcher
}

func NewVoiceHandler(search Searcher) *VoiceHandler {
	return &VoiceHandler{search: search}
}

type voiceReq struct {
	Transcription string `json:"transcription"`
	Location      string `json:"location"`
	UserID        string `json:"user_id"`
}

var (
	boldPattern    = regexp.MustCompile(`\*{1,2}([^*]*)\*{1,2}`)
	newlinePattern = regexp.MustCompile(`\n+`)
	spacePattern   = regexp.MustCompile(`\s{2,}`)
)

// speechClean strips markdown markup that text-to-speech engines read
// aloud, and flattens the text to a single line.
func speechClean(s string) string {
	s = boldPattern.ReplaceAllString(s, "$1")
	s = newlinePattern.ReplaceAllString(s, " ")
	s = spacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Handle handles POST /voice.
func (h *VoiceHandler) Handle(c *gin.Context) {
	var req voiceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Transcription) == "" {
		writeError(c, http.StatusBadRequest, "missing transcription")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	result, err := h.search.Search(ctx, req.Transcription, req.Location, req.UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	reply := composeSpokenReply(result.Restaurants)
	writeJSON(c, http.StatusOK, map[string]any{
		"reply":       speechClean(reply),
		"restaurants": result.Restaurants,
	})
}

// composeSpokenReply names up to three results in plain prose.
func composeSpokenReply(restaurants []discovery.Restaurant) string {
	if len(restaurants) == 0 {
		return "I could not find any restaurants matching that. Try a different search."
	}

	names := make([]string, 0, 3)
	for i, r := range restaurants {
		if i == 3 {
			break
		}
		names = append(names, r.Name)
	}

	top := restaurants[0]
	noun := "places"
	if len(restaurants) == 1 {
		noun = "place"
	}
	reply := fmt.Sprintf("I found %d %s. ", len(restaurants), noun)
	switch len(names) {
	case 1:
		reply += fmt.Sprintf("The best match is %s.", names[0])
	case 2:
		reply += fmt.Sprintf("The top picks are %s and %s.", names[0], names[1])
	default:
		reply += fmt.Sprintf("The top picks are %s, %s, and %s.", names[0], names[1], names[2])
	}
	if top.Rating != nil {
		reply += fmt.Sprintf(" %s is rated %.1f stars.", top.Name, *top.Rating)
	}
	return reply
}
