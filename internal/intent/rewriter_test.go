package intent

import "testing"

func TestRewrite_ShortResultRevertsToOriginal(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		// Stripping "cheap" leaves nothing; the original must come back.
		{"only a qualifier", "cheap", "cheap"},
		{"qualifier plus tiny remainder", "cheap ok", "cheap ok"},
		{"normal strip", "cheap tacos", "tacos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qi := Extract(tt.query)
			if qi.RewrittenQuery != tt.want {
				t.Errorf("RewrittenQuery = %q, want %q", qi.RewrittenQuery, tt.want)
			}
		})
	}
}

func TestRewrite_NeverEmpty(t *testing.T) {
	queries := []string{"cheap", "expensive", "best rated", "moderate", "x"}
	for _, q := range queries {
		if qi := Extract(q); qi.RewrittenQuery == "" {
			t.Errorf("Extract(%q) produced empty RewrittenQuery", q)
		}
	}
}

func TestRewrite_CollapsesWhitespace(t *testing.T) {
	qi := Extract("I want a cheap Italian dinner")
	if qi.RewrittenQuery != "I want a Italian dinner" {
		t.Errorf("RewrittenQuery = %q, want single-spaced result", qi.RewrittenQuery)
	}
}
