// README: Entry point; loads config, wires providers and services, starts HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"forkcast/internal/ai"
	"forkcast/internal/config"
	httptransport "forkcast/internal/http"
	"forkcast/internal/infra"
	"forkcast/internal/modules/discovery"
	"forkcast/internal/modules/feedback"
	"forkcast/internal/modules/prefs"
	"forkcast/internal/modules/suggest"
	"forkcast/internal/modules/weather"
	"forkcast/internal/places"
	"forkcast/internal/yelp"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	externalTimeout := time.Duration(cfg.Search.TimeoutSeconds) * time.Second

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	if dbPool == nil {
		log.Println("no FORKCAST_DB_DSN set, preferences and feedback run without persistence")
	}

	redisClient := infra.NewRedis(ctx, cfg.Redis.Addr)

	googleClient, err := places.NewClient(cfg.Providers.GooglePlacesKey)
	if err != nil {
		log.Fatalf("google places init: %v", err)
	}

	yelpClient := yelp.NewClient(cfg.Providers.YelpKey, externalTimeout, googleClient)
	if !yelpClient.Available() {
		log.Println("no YELP_API_KEY set, all searches use Google Places")
	}

	var llm ai.Extractor
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiExtractor(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Printf("gemini init failed, using keyword extraction: %v", err)
		} else {
			defer gemini.Close()
			llm = gemini
		}
	} else {
		log.Println("no GEMINI_API_KEY set, using keyword extraction")
	}

	prefsStore := prefs.NewNoopStore()
	feedbackStore := feedback.NewNoopStore()
	if dbPool != nil {
		prefsStore = prefs.NewPgStore(dbPool)
		feedbackStore = feedback.NewPgStore(dbPool)
	}
	prefsSvc := prefs.NewService(prefsStore)
	feedbackSvc := feedback.NewService(feedbackStore)

	discoverySvc := discovery.NewService(discovery.Deps{
		LLM:    llm,
		Google: googleClient,
		Yelp:   yelpClient,
		Prefs:  prefsStore,
		Search: cfg.Search,
	})

	suggestSvc := suggest.NewService(discoverySvc, prefsStore)

	weatherClient := weather.NewClient(cfg.Providers.OpenWeatherKey, externalTimeout)
	weatherSvc := weather.NewService(weatherClient, redisClient)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Search:   discoverySvc,
		Prefs:    prefsSvc,
		Feedback: feedbackSvc,
		Suggest:  suggestSvc,
		Weather:  weatherSvc,
	})

	handler := cors.Default().Handler(router)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
