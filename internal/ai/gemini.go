package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"forkcast/internal/intent"
)

// GeminiExtractor implements Extractor using Google's Gemini models.
type GeminiExtractor struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiExtractor initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiExtractor(ctx context.Context, apiKey string) (*GeminiExtractor, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"

	// Low temperature: extraction should be deterministic, not creative.
	model.SetTemperature(0.2)

	return &GeminiExtractor{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiExtractor) Close() {
	p.client.Close()
}

// ExtractIntent asks the model to interpret the food query and parses the
// structured result. Any transport or parse failure is returned as an error;
// the caller decides the fallback (keyword extraction).
func (p *GeminiExtractor) ExtractIntent(ctx context.Context, query string) (*intent.QueryIntent, error) {
	prompt := fmt.Sprintf("%s\n\nUser query: %s", systemPrompt, query)

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	return parseIntentResponse(responseText.String(), query)
}

const systemPrompt = `Role: You are the query-interpretation core of a restaurant discovery service.
Given one free-text food query, extract the user's structured intent.

RULES:
1. "cuisine": a single lowercase cuisine name (e.g. "italian", "thai", "dim sum") or null if none is mentioned.
2. "price_preference": "low" | "medium" | "high" | null.
   - Negated phrases like "not too expensive" mean "medium", NOT "high".
3. "dietary_restrictions": every dietary constraint mentioned, lowercase (e.g. ["vegan", "gluten-free"]). Empty array if none.
4. "occasion": "romantic" | "business" | "family" | "celebration" | "casual" | null.
   A date, anniversary, or a wish for ambiance/atmosphere means "romantic".
5. "sort_by": "price_asc" | "price_desc" | "rating" | null.
   - cheap/budget/affordable -> "price_asc"
   - expensive/fancy/high-end/luxury -> "price_desc"
   - best rated/top rated -> "rating"
6. "rewritten_query": the query with price and rating qualifier phrases removed, suitable as a search term. Never empty.

Output JSON Schema:
{
  "cuisine": "string or null",
  "price_preference": "low" | "medium" | "high" | null,
  "dietary_restrictions": ["string"],
  "occasion": "string or null",
  "sort_by": "price_asc" | "price_desc" | "rating" | null,
  "rewritten_query": "string"
}`
