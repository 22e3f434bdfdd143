// README: Query rewriter; strips matched qualifier phrases from the search string.
package intent

import (
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// minRewrittenLen guards against producing a search string too short to be
// useful to the downstream provider.
const minRewrittenLen = 3

// Rewrite removes the matched qualifier phrases from the original query and
// normalises whitespace. If the result drops under minRewrittenLen
// characters the original query is returned unchanged, so the rewritten
// query is never empty.
func Rewrite(original string, matched []*regexp.Regexp) string {
	out := original
	for _, pat := range matched {
		out = pat.ReplaceAllString(out, " ")
	}
	out = strings.TrimSpace(whitespace.ReplaceAllString(out, " "))
	if len(out) < minRewrittenLen {
		return original
	}
	return out
}
