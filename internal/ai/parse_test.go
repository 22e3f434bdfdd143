package ai

import (
	"testing"
)

func TestFirstJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"prose around object", `Sure! Here you go: {"a":1} hope that helps`, `{"a":1}`, true},
		{"nested braces", `{"a":{"b":2}}`, `{"a":{"b":2}}`, true},
		{"brace inside string", `{"a":"}{"}`, `{"a":"}{"}`, true},
		{"escaped quote inside string", `{"a":"say \"}\" ok"}`, `{"a":"say \"}\" ok"}`, true},
		{"unbalanced", `{"a":1`, "", false},
		{"no object", `nothing here`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := firstJSONObject(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("firstJSONObject(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseIntentResponse(t *testing.T) {
	raw := "Here is the extraction:\n```json\n" +
		`{"cuisine":"Italian","price_preference":"low","dietary_restrictions":["Vegan"],` +
		`"occasion":"romantic","sort_by":"price_asc","rewritten_query":"Italian dinner"}` +
		"\n```"

	qi, err := parseIntentResponse(raw, "cheap Italian dinner for a date")
	if err != nil {
		t.Fatalf("parseIntentResponse() error = %v", err)
	}
	if qi.Cuisine == nil || *qi.Cuisine != "italian" {
		t.Errorf("Cuisine = %v, want italian", qi.Cuisine)
	}
	if qi.PricePreference != "low" || qi.SortBy != "price_asc" || qi.Occasion != "romantic" {
		t.Errorf("unexpected enums: pref=%q sort=%q occasion=%q", qi.PricePreference, qi.SortBy, qi.Occasion)
	}
	if len(qi.DietaryRestrictions) != 1 || qi.DietaryRestrictions[0] != "vegan" {
		t.Errorf("DietaryRestrictions = %v, want [vegan]", qi.DietaryRestrictions)
	}
	if qi.RewrittenQuery != "Italian dinner" {
		t.Errorf("RewrittenQuery = %q", qi.RewrittenQuery)
	}
}

func TestParseIntentResponse_InvalidValuesDropped(t *testing.T) {
	raw := `{"cuisine":"klingon","price_preference":"free","occasion":"apocalypse","sort_by":"vibes","rewritten_query":"x"}`

	qi, err := parseIntentResponse(raw, "original query")
	if err != nil {
		t.Fatalf("parseIntentResponse() error = %v", err)
	}
	if qi.Cuisine != nil {
		t.Errorf("Cuisine = %q, want nil for unknown cuisine", *qi.Cuisine)
	}
	if qi.PricePreference != "" || qi.SortBy != "" || qi.Occasion != "" {
		t.Errorf("invalid enum values should be dropped: pref=%q sort=%q occasion=%q",
			qi.PricePreference, qi.SortBy, qi.Occasion)
	}
	// "x" is under the minimum useful length; fall back to the original.
	if qi.RewrittenQuery != "original query" {
		t.Errorf("RewrittenQuery = %q, want original query", qi.RewrittenQuery)
	}
}

func TestParseIntentResponse_GarbageIsError(t *testing.T) {
	if _, err := parseIntentResponse("I could not understand that request.", "q"); err == nil {
		t.Error("expected error for response without JSON")
	}
}
