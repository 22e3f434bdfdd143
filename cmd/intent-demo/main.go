package main

import (
	"fmt"

	"forkcast/internal/intent"
)

// Runs the offline keyword extractor over a handful of sample queries so
// the interpretation pipeline can be inspected without any API keys.
func main() {
	queries := []string{
		"I want a cheap Italian dinner",
		"best rated vegan restaurant for a date night",
		"somewhere not too expensive for a business lunch",
		"fancy sushi place",
		"gluten free thai food near me",
	}

	for _, q := range queries {
		qi := intent.Extract(q)
		fmt.Printf("Query: %s\n", q)
		if qi.Cuisine != nil {
			fmt.Printf("  Cuisine:   %s\n", *qi.Cuisine)
		}
		if qi.PricePreference != "" {
			fmt.Printf("  Price:     %s\n", qi.PricePreference)
		}
		if len(qi.DietaryRestrictions) > 0 {
			fmt.Printf("  Dietary:   %v\n", qi.DietaryRestrictions)
		}
		if qi.Occasion != "" {
			fmt.Printf("  Occasion:  %s\n", qi.Occasion)
		}
		if qi.SortBy != "" {
			fmt.Printf("  Sort:      %s\n", qi.SortBy)
		}
		fmt.Printf("  Rewritten: %s\n\n", qi.RewrittenQuery)
	}
}
