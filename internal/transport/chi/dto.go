package chi

import (
	"time"

	"github.com/harborline/invsearch/internal/domain/search/query"
	"github.com/harborline/invsearch/internal/domain/search/result"
	healthuc "github.com/harborline/invsearch/internal/usecase/health"
	searchuc "github.com/harborline/invsearch/internal/usecase/search"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type searchResponse struct {
	Results []searchItem `json:"results"`
	Total   int          `json:"total"`
	Limit   int          `json:"limit"`
	Offset  int          `json:"offset"`
}

type searchItem struct {
	ID             string  `json:"id"`
	Type           string  `json:"type"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	RelevanceScore float64 `json:"relevance_score"`
	Category       string  `json:"category"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
	Metadata       any     `json:"metadata"`
}

type assetMetadataDTO struct {
	Value string  `json:"value"`
	APR   float64 `json:"apr"`
	Risk  string  `json:"risk"`
	Route string  `json:"route"`
	Cargo string  `json:"cargo"`
}

type userMetadataDTO struct {
	Email   string `json:"email"`
	Role    string `json:"role"`
	Country string `json:"country"`
}

type investmentMetadataDTO struct {
	AssetID string  `json:"asset_id"`
	UserID  string  `json:"user_id"`
	Amount  float64 `json:"amount"`
}

type suggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

type popularResponse struct {
	Searches []string `json:"searches"`
}

type healthResponse struct {
	Status string                          `json:"status"`
	Checks map[string]healthuc.CheckResult `json:"checks"`
}

func searchPageToResponse(page searchuc.Page, q query.Query) searchResponse {
	items := make([]searchItem, len(page.Results))
	for i := range page.Results {
		items[i] = searchResultToItem(&page.Results[i])
	}
	return searchResponse{
		Results: items,
		Total:   page.Total,
		Limit:   q.Limit(),
		Offset:  q.Offset(),
	}
}

func searchResultToItem(r *result.Result) searchItem {
	var meta any
	switch m := r.Meta().(type) {
	case result.AssetMetadata:
		meta = assetMetadataDTO{Value: m.Value, APR: m.APR, Risk: m.Risk, Route: m.Route, Cargo: m.Cargo}
	case result.UserMetadata:
		meta = userMetadataDTO{Email: m.Email, Role: m.Role, Country: m.Country}
	case result.InvestmentMetadata:
		meta = investmentMetadataDTO{AssetID: m.AssetID, UserID: m.UserID, Amount: m.Amount}
	}

	return searchItem{
		ID:             r.ID(),
		Type:           string(r.Type()),
		Title:          r.Title(),
		Description:    r.Description(),
		RelevanceScore: r.Score(),
		Category:       r.Category(),
		Status:         r.Status(),
		CreatedAt:      r.CreatedAt().UTC().Format(time.RFC3339),
		Metadata:       meta,
	}
}
