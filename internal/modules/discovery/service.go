// README: Discovery service; extract -> rewrite -> select source -> fetch -> rank.
package discovery

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"forkcast/internal/ai"
	"forkcast/internal/config"
	"forkcast/internal/intent"
	"forkcast/internal/modules/prefs"
)

var ErrBadRequest = errors.New("bad request")

// PreferenceReader is the read-only view of the preference store the ranker
// needs. A miss or failure silently skips the preference stage.
type PreferenceReader interface {
	Get(ctx context.Context, userID string) (*prefs.UserPreference, error)
}

type Deps struct {
	LLM    ai.Extractor // optional; nil means keyword extraction only
	Google Provider
	Yelp   Provider // optional
	Prefs  PreferenceReader
	Search config.SearchConfig
}

type Service struct {
	llm    ai.Extractor
	google Provider
	yelp   Provider
	prefs  PreferenceReader
	cfg    config.SearchConfig
}

func NewService(deps Deps) *Service {
	return &Service{
		llm:    deps.LLM,
		google: deps.Google,
		yelp:   deps.Yelp,
		prefs:  deps.Prefs,
		cfg:    deps.Search,
	}
}

// Result bundles the ranked restaurants with the interpretation that
// produced them, so callers can echo the processed query back.
type Result struct {
	Restaurants []Restaurant       `json:"restaurants"`
	Intent      intent.QueryIntent `json:"-"`
	Source      Source             `json:"source"`
}

// Search runs the full pipeline for one query. External calls degrade
// rather than fail: a provider error yields an empty result set, a missing
// preference record keeps the directive order.
func (s *Service) Search(ctx context.Context, query, location, userID string) (*Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrBadRequest
	}
	if location == "" {
		location = s.cfg.DefaultLocation
	}

	qi := s.interpret(ctx, query)
	source := SelectSource(qi, s.yelpConfigured())
	params := s.buildParams(qi, location)

	restaurants := s.fetch(ctx, source, params)
	SortByDirective(restaurants, qi.SortBy)
	restaurants = filterDietary(restaurants, qi.DietaryRestrictions)
	restaurants = s.applyStoredPreferences(ctx, restaurants, userID)

	return &Result{Restaurants: restaurants, Intent: qi, Source: source}, nil
}

// interpret prefers the LLM extractor when one is wired; any LLM failure
// falls back to the keyword extractor so interpretation never fails.
func (s *Service) interpret(ctx context.Context, query string) intent.QueryIntent {
	if s.llm != nil {
		cctx, cancel := context.WithTimeout(ctx, s.timeout())
		defer cancel()
		if qi, err := s.llm.ExtractIntent(cctx, query); err == nil {
			return *qi
		} else {
			log.Printf("llm extraction failed, using keyword extractor: %v", err)
		}
	}
	return intent.Extract(query)
}

func (s *Service) fetch(ctx context.Context, source Source, params SearchParams) []Restaurant {
	provider := s.google
	if source == SourceYelp && s.yelp != nil {
		provider = s.yelp
	}

	cctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	restaurants, err := provider.Search(cctx, params)
	if err != nil {
		log.Printf("provider %s search failed: %v", source, err)
		return nil
	}
	return restaurants
}

func (s *Service) applyStoredPreferences(ctx context.Context, list []Restaurant, userID string) []Restaurant {
	if s.prefs == nil || userID == "" {
		return list
	}

	cctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	p, err := s.prefs.Get(cctx, userID)
	if err != nil {
		// Absent record or unavailable store both skip the stage silently.
		if !errors.Is(err, prefs.ErrNotFound) {
			log.Printf("preference lookup failed for %s: %v", userID, err)
		}
		return list
	}
	return ApplyPreferences(list, p)
}

// buildParams derives provider-agnostic search inputs from the intent:
// the search term is the cuisine plus "restaurant" when a cuisine was
// recognised, otherwise the rewritten query.
func (s *Service) buildParams(qi intent.QueryIntent, location string) SearchParams {
	term := qi.RewrittenQuery
	if qi.Cuisine != nil {
		term = *qi.Cuisine + " restaurant"
	}

	params := SearchParams{
		Term:         term,
		Location:     location,
		OpenNow:      true,
		RadiusMeters: s.cfg.RadiusMeters,
	}

	switch qi.PricePreference {
	case intent.PriceLow:
		params.MaxPrice = intPtr(1)
	case intent.PriceMedium:
		params.MinPrice = intPtr(1)
		params.MaxPrice = intPtr(2)
	case intent.PriceHigh:
		params.MinPrice = intPtr(3)
	}

	return params
}

// filterDietary is a pass-through today: provider data carries no reliable
// dietary labels, so the restriction list is surfaced to callers via the
// intent instead of filtering on it.
func filterDietary(list []Restaurant, restrictions []string) []Restaurant {
	return list
}

func (s *Service) yelpConfigured() bool {
	if s.yelp == nil {
		return false
	}
	if a, ok := s.yelp.(interface{ Available() bool }); ok {
		return a.Available()
	}
	return true
}

func (s *Service) timeout() time.Duration {
	if s.cfg.TimeoutSeconds <= 0 {
		return 8 * time.Second
	}
	return time.Duration(s.cfg.TimeoutSeconds) * time.Second
}

func intPtr(v int) *int { return &v }
