// Package score ranks how well a record's display text matches a query.
package score

import "strings"

// Score bands. First matching rule wins.
const (
	exact     = 100
	prefix    = 90
	substring = 70
	overlap   = 50 // scaled by the fraction of query words found
)

// Score returns a 0-100 relevance score for text against query,
// case-insensitive. An empty query scores 0: inclusion of records for empty
// queries is the adapters' job, not the scorer's.
func Score(text, query string) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0
	}
	t := strings.ToLower(text)

	switch {
	case t == q:
		return exact
	case strings.HasPrefix(t, q):
		return prefix
	case strings.Contains(t, q):
		return substring
	}

	qWords := strings.Fields(q)
	if len(qWords) == 0 {
		return 0
	}
	tWords := strings.Fields(t)

	matched := 0
	for _, qw := range qWords {
		for _, tw := range tWords {
			if strings.Contains(tw, qw) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(qWords)) * overlap
}
