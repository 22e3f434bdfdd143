// README: Config loader with env defaults for HTTP, DB, Redis, and provider API keys.
package config

import (
	"errors"
	"os"
	"strconv"
)

type SearchConfig struct {
	RadiusMeters    int
	DefaultLocation string
	TimeoutSeconds  int
}

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	Search    SearchConfig
	Providers struct {
		GooglePlacesKey string
		YelpKey         string
		OpenWeatherKey  string
	}
	AI struct {
		GeminiKey string
	}
}

// Load reads configuration from the environment. GOOGLE_PLACES_API_KEY is the
// only hard requirement: without the primary search provider the service
// cannot do anything useful. Everything else degrades to a disabled feature.
func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("FORKCAST_HTTP_ADDR", ":8080")
	cfg.DB.DSN = os.Getenv("FORKCAST_DB_DSN")
	cfg.Redis.Addr = os.Getenv("FORKCAST_REDIS_ADDR")
	cfg.Search.RadiusMeters = envOrDefaultInt("FORKCAST_SEARCH_RADIUS_M", 10000)
	cfg.Search.DefaultLocation = envOrDefault("FORKCAST_DEFAULT_LOCATION", "San Francisco")
	cfg.Search.TimeoutSeconds = envOrDefaultInt("FORKCAST_EXTERNAL_TIMEOUT_S", 8)
	cfg.Providers.GooglePlacesKey = os.Getenv("GOOGLE_PLACES_API_KEY")
	cfg.Providers.YelpKey = os.Getenv("YELP_API_KEY")
	cfg.Providers.OpenWeatherKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	if cfg.Providers.GooglePlacesKey == "" {
		return cfg, errors.New("GOOGLE_PLACES_API_KEY is required")
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
