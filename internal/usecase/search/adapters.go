package search

import (
	"strings"
	"time"

	"github.com/harborline/invsearch/internal/domain"
	"github.com/harborline/invsearch/internal/domain/search/query"
	"github.com/harborline/invsearch/internal/domain/search/result"
	"github.com/harborline/invsearch/internal/domain/search/score"
)

// Entity adapters: pure filter+map from raw records to uniform hits.
// A record is included iff every active filter dimension passes; an empty
// query text passes the text dimension for every record.

func assetResults(assets []domain.Asset, q query.Query) []result.Result {
	out := make([]result.Result, 0, len(assets))
	for _, a := range assets {
		if !matchAsset(a, q) {
			continue
		}
		out = append(out, result.New(
			a.ID, result.TypeAsset, a.Name, a.Description,
			score.Score(a.Name, q.Text()),
			a.Type, a.Status, a.CreatedAt,
			result.AssetMetadata{Value: a.Value, APR: a.APR, Risk: a.Risk, Route: a.Route, Cargo: a.Cargo},
		))
	}
	return out
}

func matchAsset(a domain.Asset, q query.Query) bool {
	if !matchesText(q.Text(), a.Name, a.Description, a.Route, a.Cargo, a.Type) {
		return false
	}
	if c := q.Category(); c != "" && c != a.Type {
		return false
	}
	if st := q.Status(); st != "" && st != a.Status {
		return false
	}
	if !withinValue(domain.ParseMoney(a.Value), q) {
		return false
	}
	return withinDates(a.CreatedAt, q)
}

func userResults(users []domain.User, q query.Query) []result.Result {
	out := make([]result.Result, 0, len(users))
	for _, u := range users {
		if !matchUser(u, q) {
			continue
		}
		out = append(out, result.New(
			u.ID, result.TypeUser, u.FullName(), u.Email,
			score.Score(u.FullName(), q.Text()),
			u.Role, u.Status, u.CreatedAt,
			result.UserMetadata{Email: u.Email, Role: u.Role, Country: u.Country},
		))
	}
	return out
}

func matchUser(u domain.User, q query.Query) bool {
	if !matchesText(q.Text(), u.FirstName, u.LastName, u.Email, u.Phone, u.Role, u.Country) {
		return false
	}
	if c := q.Category(); c != "" && c != u.Role {
		return false
	}
	if st := q.Status(); st != "" && st != u.Status {
		return false
	}
	// Value bounds never apply to users.
	return withinDates(u.CreatedAt, q)
}

func investmentResults(investments []domain.Investment, q query.Query) []result.Result {
	out := make([]result.Result, 0, len(investments))
	for _, inv := range investments {
		if !matchInvestment(inv, q) {
			continue
		}
		out = append(out, result.New(
			inv.ID, result.TypeInvestment, inv.AssetID, inv.Type+" investment",
			score.Score(inv.AssetID, q.Text()),
			inv.Type, inv.Status, inv.CreatedAt,
			result.InvestmentMetadata{AssetID: inv.AssetID, UserID: inv.UserID, Amount: inv.Amount},
		))
	}
	return out
}

func matchInvestment(inv domain.Investment, q query.Query) bool {
	if !matchesText(q.Text(), inv.AssetID, inv.UserID, inv.Status, inv.Type) {
		return false
	}
	if c := q.Category(); c != "" && c != inv.Type {
		return false
	}
	if st := q.Status(); st != "" && st != inv.Status {
		return false
	}
	if !withinValue(inv.Amount, q) {
		return false
	}
	return withinDates(inv.CreatedAt, q)
}

// matchesText reports whether the query is a case-insensitive substring of
// at least one field. An empty (or all-whitespace) query matches everything.
func matchesText(text string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(text))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func withinValue(v float64, q query.Query) bool {
	if minV := q.MinValue(); minV != nil && v < *minV {
		return false
	}
	if maxV := q.MaxValue(); maxV != nil && v > *maxV {
		return false
	}
	return true
}

// withinDates checks the inclusive [from, to] bounds on CreatedAt.
func withinDates(t time.Time, q query.Query) bool {
	if from := q.DateFrom(); from != nil && t.Before(*from) {
		return false
	}
	if to := q.DateTo(); to != nil && t.After(*to) {
		return false
	}
	return true
}
