package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"forkcast/internal/intent"
)

// rawIntent mirrors the JSON schema the model is asked to produce.
type rawIntent struct {
	Cuisine             *string  `json:"cuisine"`
	PricePreference     string   `json:"price_preference"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	Occasion            string   `json:"occasion"`
	SortBy              string   `json:"sort_by"`
	RewrittenQuery      string   `json:"rewritten_query"`
}

// parseIntentResponse extracts the first JSON object from the model output
// (which may be wrapped in markdown fences or surrounded by prose) and maps
// it onto a QueryIntent, discarding any field values outside the fixed
// enumerations.
func parseIntentResponse(raw, originalQuery string) (*intent.QueryIntent, error) {
	obj, ok := firstJSONObject(cleanJSONString(raw))
	if !ok {
		return nil, fmt.Errorf("no JSON object in model response")
	}

	var r rawIntent
	if err := json.Unmarshal([]byte(obj), &r); err != nil {
		return nil, fmt.Errorf("parse model response: %w", err)
	}

	qi := &intent.QueryIntent{
		OriginalQuery:  originalQuery,
		RewrittenQuery: originalQuery,
	}

	if r.Cuisine != nil {
		c := strings.ToLower(strings.TrimSpace(*r.Cuisine))
		if intent.KnownCuisine(c) {
			qi.Cuisine = &c
		}
	}

	switch intent.PricePreference(r.PricePreference) {
	case intent.PriceLow, intent.PriceMedium, intent.PriceHigh:
		qi.PricePreference = intent.PricePreference(r.PricePreference)
	}

	switch intent.SortDirective(r.SortBy) {
	case intent.SortPriceAsc, intent.SortPriceDesc, intent.SortRating:
		qi.SortBy = intent.SortDirective(r.SortBy)
	}

	switch intent.Occasion(r.Occasion) {
	case intent.OccasionRomantic, intent.OccasionBusiness, intent.OccasionFamily,
		intent.OccasionCelebration, intent.OccasionCasual:
		qi.Occasion = intent.Occasion(r.Occasion)
	}

	for _, d := range r.DietaryRestrictions {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			qi.DietaryRestrictions = append(qi.DietaryRestrictions, d)
		}
	}

	// Same guard as the keyword rewriter: never hand the providers a search
	// string too short to be useful.
	if rq := strings.TrimSpace(r.RewrittenQuery); len(rq) >= 3 {
		qi.RewrittenQuery = rq
	}

	return qi, nil
}

// firstJSONObject returns the first balanced {...} block in s. Braces inside
// JSON strings are ignored.
func firstJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
