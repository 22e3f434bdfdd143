package ai

import (
	"context"

	"forkcast/internal/intent"
)

// Extractor defines the contract for LLM-backed query interpretation.
// This interface allows swapping different AI providers (Gemini, OpenAI, etc.)
// and stubbing the provider in tests. A failed extraction returns an error
// and the caller falls back to the keyword extractor.
type Extractor interface {
	// ExtractIntent analyses a free-text food query and returns a structured
	// QueryIntent. The returned intent always carries a usable RewrittenQuery.
	ExtractIntent(ctx context.Context, query string) (*intent.QueryIntent, error)
}
