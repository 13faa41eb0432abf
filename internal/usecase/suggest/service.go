// Package suggest serves type-ahead suggestions and popular search terms
// from static, process-wide vocabulary data. No persistence is involved;
// both lookups are pure and safe to call unauthenticated.
package suggest

import "strings"

// DefaultLimit bounds suggestion responses when the caller passes none.
const DefaultLimit = 10

// vocabulary is the domain term list, in suggestion order.
var vocabulary = []string{
	"container",
	"dry-bulk",
	"tanker",
	"reefer",
	"trade finance",
	"invoice financing",
	"letter of credit",
	"bill of lading",
	"freight forward",
	"jebel ali",
	"dubai",
	"rotterdam",
	"singapore",
	"kyc",
	"investor",
	"analyst",
	"direct investment",
	"pooled investment",
	"settled",
	"pending",
}

// popular is the popularity-ranked list of past search terms.
var popular = []string{
	"container",
	"dubai",
	"trade finance",
	"tanker",
	"reefer",
	"invoice financing",
	"rotterdam",
	"kyc",
}

// Service answers suggestion lookups.
type Service struct{}

// New creates a suggestion service.
func New() *Service { return &Service{} }

// Suggest returns up to limit vocabulary terms containing the query,
// case-insensitive, in vocabulary order. An empty query returns nothing.
func (s *Service) Suggest(query string, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []string{}
	}
	limit = normalizeLimit(limit)

	out := make([]string, 0, limit)
	for _, term := range vocabulary {
		if len(out) == limit {
			break
		}
		if strings.Contains(term, q) {
			out = append(out, term)
		}
	}
	return out
}

// Popular returns the top limit entries of the static popularity ranking.
func (s *Service) Popular(limit int) []string {
	limit = normalizeLimit(limit)
	if limit > len(popular) {
		limit = len(popular)
	}
	return append([]string(nil), popular[:limit]...)
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
