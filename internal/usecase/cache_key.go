package usecase

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/scope4/google-sheets/internal/domain"
)

const cacheKeyPrefix = "lca-search"

// CacheKey derives the deterministic cache key for one normalized parameter
// set. Every field that affects the outbound query is included, so two
// searches differing in any input never share a key. String fields are
// percent-escaped before joining: the separator cannot occur inside an
// escaped value, which keeps distinct tuples distinct.
func CacheKey(p domain.QueryParameters) string {
	parts := []string{
		cacheKeyPrefix,
		url.QueryEscape(p.ItemName),
		url.QueryEscape(p.Year),
		url.QueryEscape(p.Geography),
		url.QueryEscape(p.Metric),
		url.QueryEscape(p.Domain),
		strconv.Itoa(p.NumMatches),
		url.QueryEscape(p.Mode),
		strconv.FormatBool(p.NotEnglish),
		url.QueryEscape(p.Unit),
	}
	return strings.Join(parts, "|")
}
