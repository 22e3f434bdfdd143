// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"forkcast/internal/http/handlers"
	"forkcast/internal/http/middleware"
	"forkcast/internal/modules/feedback"
	"forkcast/internal/modules/prefs"
	"forkcast/internal/modules/suggest"
	"forkcast/internal/modules/weather"
)

type RouterDeps struct {
	Search   handlers.Searcher
	Prefs    *prefs.Service
	Feedback *feedback.Service
	Suggest  *suggest.Service
	Weather  *weather.Service
}

func NewRouter(deps RouterDeps) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	queryHandler := handlers.NewQueryHandler(deps.Search)
	r.POST("/query", queryHandler.Handle)

	prefsHandler := handlers.NewPrefsHandler(deps.Prefs)
	r.GET("/preferences/:userId", prefsHandler.Get)
	r.POST("/preferences", prefsHandler.Upsert)

	feedbackHandler := handlers.NewFeedbackHandler(deps.Feedback)
	r.POST("/feedback", feedbackHandler.Submit)
	r.GET("/feedback/restaurant/:id", feedbackHandler.ListByRestaurant)
	r.GET("/feedback/user/:id", feedbackHandler.ListByUser)

	voiceHandler := handlers.NewVoiceHandler(deps.Search)
	r.POST("/voice", voiceHandler.Handle)

	suggestHandler := handlers.NewSuggestHandler(deps.Suggest)
	r.POST("/suggestions", suggestHandler.Handle)

	weatherHandler := handlers.NewWeatherHandler(deps.Weather)
	r.GET("/weather", weatherHandler.Get)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
