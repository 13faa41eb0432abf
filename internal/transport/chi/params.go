package chi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/harborline/invsearch/internal/domain"
	"github.com/harborline/invsearch/internal/domain/search/query"
)

// queryFromParams builds a validated search query from URL parameters.
// All parsing errors are wrapped as domain.ErrInvalidQuery so the caller
// maps them to 400.
func (s *Server) queryFromParams(r *http.Request) (query.Query, error) {
	params := r.URL.Query()
	opts := make([]query.Option, 0, 8)

	if v := params.Get("type"); v != "" {
		opts = append(opts, query.WithType(query.Type(v)))
	}
	if v := params.Get("category"); v != "" {
		opts = append(opts, query.WithCategory(v))
	}
	if v := params.Get("status"); v != "" {
		opts = append(opts, query.WithStatus(v))
	}

	minValue, err := floatParamPtr(params.Get("min_value"), "min_value")
	if err != nil {
		return query.Query{}, err
	}
	maxValue, err := floatParamPtr(params.Get("max_value"), "max_value")
	if err != nil {
		return query.Query{}, err
	}
	if minValue != nil || maxValue != nil {
		opts = append(opts, query.WithValueRange(minValue, maxValue))
	}

	dateFrom, err := dateParamPtr(params.Get("date_from"), "date_from")
	if err != nil {
		return query.Query{}, err
	}
	dateTo, err := dateParamPtr(params.Get("date_to"), "date_to")
	if err != nil {
		return query.Query{}, err
	}
	if dateFrom != nil || dateTo != nil {
		opts = append(opts, query.WithDateRange(dateFrom, dateTo))
	}

	limit, err := intParam(r, "limit", s.limits.Default)
	if err != nil {
		return query.Query{}, fmt.Errorf("%w: %s", domain.ErrInvalidQuery, err)
	}
	if limit > s.limits.Max {
		limit = s.limits.Max
	}
	opts = append(opts, query.WithLimit(limit))

	offset, err := intParam(r, "offset", 0)
	if err != nil {
		return query.Query{}, fmt.Errorf("%w: %s", domain.ErrInvalidQuery, err)
	}
	opts = append(opts, query.WithOffset(offset))

	sortBy := query.SortRelevance
	if v := params.Get("sort_by"); v != "" {
		sortBy = query.SortKey(v)
	}
	order := query.Desc
	if v := params.Get("sort_order"); v != "" {
		order = query.Order(v)
	}
	opts = append(opts, query.WithSort(sortBy, order))

	return query.New(params.Get("q"), opts...)
}

// intParam parses an optional integer query parameter.
func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}

func floatParamPtr(raw, name string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidQuery, name)
	}
	return &v, nil
}

// dateParamPtr accepts RFC 3339 timestamps or bare dates (2006-01-02).
func dateParamPtr(raw, name string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an RFC 3339 timestamp or YYYY-MM-DD date", domain.ErrInvalidQuery, name)
	}
	return &t, nil
}
