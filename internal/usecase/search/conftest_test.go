package search

import (
	"context"
	"time"

	"github.com/harborline/invsearch/internal/domain"
)

// mockSource implements Source for tests.
type mockSource struct {
	assets      []domain.Asset
	users       []domain.User
	investments []domain.Investment

	assetsErr      error
	usersErr       error
	investmentsErr error

	assetCalls      int
	userCalls       int
	investmentCalls int
}

func (m *mockSource) FetchAssets(_ context.Context) ([]domain.Asset, error) {
	m.assetCalls++
	return m.assets, m.assetsErr
}

func (m *mockSource) FetchUsers(_ context.Context) ([]domain.User, error) {
	m.userCalls++
	return m.users, m.usersErr
}

func (m *mockSource) FetchInvestments(_ context.Context) ([]domain.Investment, error) {
	m.investmentCalls++
	return m.investments, m.investmentsErr
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr(f float64) *float64 { return &f }

// fixtureSource returns a small dataset covering all three kinds.
func fixtureSource() *mockSource {
	return &mockSource{
		assets: []domain.Asset{
			{
				ID: "ast-1", Name: "Jebel Ali-Dubai Container", Type: "container",
				Description: "Electronics consignment", Value: "$45,000",
				Route: "Jebel Ali - Dubai", Cargo: "Electronics", Risk: "low",
				APR: 9.5, Status: "active", CreatedAt: day(2025, time.January, 15),
			},
			{
				ID: "ast-2", Name: "Rotterdam Grain Consignment", Type: "dry-bulk",
				Description: "Wheat parcel", Value: "$120,000",
				Route: "Constanta - Rotterdam", Cargo: "Wheat", Risk: "medium",
				APR: 11.2, Status: "closed", CreatedAt: day(2025, time.February, 3),
			},
		},
		users: []domain.User{
			{
				ID: "usr-1", FirstName: "Alice", LastName: "Johnson",
				Email: "alice@example.com", Phone: "+1-555-0114", Role: "investor",
				Country: "US", Status: "active", CreatedAt: day(2024, time.November, 4),
			},
			{
				ID: "usr-2", FirstName: "Alicia", LastName: "Jones",
				Email: "alicia@example.com", Phone: "+44-555-0958", Role: "investor",
				Country: "GB", Status: "active", CreatedAt: day(2024, time.December, 12),
			},
		},
		investments: []domain.Investment{
			{
				ID: "inv-1", AssetID: "ast-1", UserID: "usr-1", Type: "direct",
				Status: "active", Amount: 50000, CreatedAt: day(2025, time.January, 20),
			},
			{
				ID: "inv-2", AssetID: "ast-2", UserID: "usr-2", Type: "pooled",
				Status: "pending", Amount: 8000, CreatedAt: day(2025, time.February, 10),
			},
		},
	}
}
