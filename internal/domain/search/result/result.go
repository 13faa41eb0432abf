// Package result holds the uniform search hit returned for every record kind.
package result

import (
	"time"

	"github.com/harborline/invsearch/internal/domain"
)

// Type discriminates the record kind behind a hit.
type Type string

const (
	TypeAsset      Type = "asset"
	TypeUser       Type = "user"
	TypeInvestment Type = "investment"
)

// Metadata is the per-kind payload of a hit. It is a sealed sum: exactly
// AssetMetadata, UserMetadata, or InvestmentMetadata.
type Metadata interface {
	metadataType() Type
}

// AssetMetadata carries the asset-specific result fields.
type AssetMetadata struct {
	Value string
	APR   float64
	Risk  string
	Route string
	Cargo string
}

func (AssetMetadata) metadataType() Type { return TypeAsset }

// UserMetadata carries the user-specific result fields.
type UserMetadata struct {
	Email   string
	Role    string
	Country string
}

func (UserMetadata) metadataType() Type { return TypeUser }

// InvestmentMetadata carries the investment-specific result fields.
type InvestmentMetadata struct {
	AssetID string
	UserID  string
	Amount  float64
}

func (InvestmentMetadata) metadataType() Type { return TypeInvestment }

// Result is a single search hit.
type Result struct {
	id        string
	typ       Type
	title     string
	desc      string
	score     float64
	category  string
	status    string
	createdAt time.Time
	meta      Metadata
}

// New creates a search hit.
func New(
	id string, typ Type, title, desc string, score float64,
	category, status string, createdAt time.Time, meta Metadata,
) Result {
	return Result{
		id: id, typ: typ, title: title, desc: desc, score: score,
		category: category, status: status, createdAt: createdAt, meta: meta,
	}
}

// ID returns the stable identifier of the source record.
func (r *Result) ID() string { return r.id }

// Type returns the record kind.
func (r *Result) Type() Type { return r.typ }

// Title returns the headline line.
func (r *Result) Title() string { return r.title }

// Description returns the secondary line.
func (r *Result) Description() string { return r.desc }

// Score returns the 0-100 relevance score.
func (r *Result) Score() float64 { return r.score }

// Category returns the classifier used for filtering and display.
func (r *Result) Category() string { return r.category }

// Status returns the lifecycle status of the source record.
func (r *Result) Status() string { return r.status }

// CreatedAt returns the source record's creation time.
func (r *Result) CreatedAt() time.Time { return r.createdAt }

// Meta returns the per-kind payload.
func (r *Result) Meta() Metadata { return r.meta }

// Value returns the sortable monetary value of the hit: the parsed asset
// value or the investment amount. Kinds without a natural monetary value
// yield 0 and sort together.
func (r *Result) Value() float64 {
	switch m := r.meta.(type) {
	case AssetMetadata:
		return domain.ParseMoney(m.Value)
	case InvestmentMetadata:
		return m.Amount
	default:
		return 0
	}
}
