// README: Keyword extractor; scans free text against fixed vocabularies.
package intent

import (
	"regexp"
	"strings"
)

// pricePatterns holds one compiled word-boundary pattern per price phrase,
// indexed by rule. Compiled once at package init; the vocab tables are fixed.
var pricePatterns [][]*regexp.Regexp

func init() {
	pricePatterns = make([][]*regexp.Regexp, len(priceRules))
	for i, rule := range priceRules {
		pricePatterns[i] = make([]*regexp.Regexp, len(rule.phrases))
		for j, phrase := range rule.phrases {
			pricePatterns[i][j] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
		}
	}
}

// Extract interprets a raw query against the fixed vocabularies and returns
// a fully populated QueryIntent, including the rewritten search string.
// It is a pure function over the vocab tables.
func Extract(query string) QueryIntent {
	lower := strings.ToLower(query)

	qi := QueryIntent{
		OriginalQuery:  query,
		RewrittenQuery: query,
	}

	for _, c := range cuisines {
		if strings.Contains(lower, c) {
			cuisine := c
			qi.Cuisine = &cuisine
			break
		}
	}

	for _, d := range dietaryTerms {
		if strings.Contains(lower, d.term) && !containsString(qi.DietaryRestrictions, d.canonical) {
			qi.DietaryRestrictions = append(qi.DietaryRestrictions, d.canonical)
		}
	}

	for _, cat := range occasionTriggers {
		for _, phrase := range cat.phrases {
			if strings.Contains(lower, phrase) {
				qi.Occasion = cat.occasion
				break
			}
		}
		if qi.Occasion != "" {
			break
		}
	}

	sortBy, pref, matched := matchPriceRules(query)
	qi.SortBy = sortBy
	qi.PricePreference = pref
	qi.RewrittenQuery = Rewrite(query, matched)

	return qi
}

// matchPriceRules evaluates the ordered price/sort rule list top to bottom.
// The first rule with any phrase hit wins; all of that rule's matching
// phrase patterns are returned so the rewriter can strip them.
func matchPriceRules(query string) (SortDirective, PricePreference, []*regexp.Regexp) {
	for i, rule := range priceRules {
		var matched []*regexp.Regexp
		for _, pat := range pricePatterns[i] {
			if pat.MatchString(query) {
				matched = append(matched, pat)
			}
		}
		if len(matched) > 0 {
			return rule.sortBy, rule.pref, matched
		}
	}
	return "", "", nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
