package static

import (
	"time"

	"github.com/harborline/invsearch/internal/domain"
)

// Demo dataset served by the fallback source and seeded into Redis on
// first start. Read-only after init; record order is the source order the
// merge contract's stable sort relies on.

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var demoAssets = []domain.Asset{
	{
		ID: "ast-001", Name: "Jebel Ali-Dubai Container", Type: "container",
		Description: "Short-haul container consignment on the Jebel Ali feeder lane",
		Value:       "$45,000", Route: "Jebel Ali - Dubai", Cargo: "Electronics",
		Risk: "low", APR: 9.5, Status: "active", CreatedAt: date(2025, time.January, 15),
	},
	{
		ID: "ast-002", Name: "Rotterdam Grain Consignment", Type: "dry-bulk",
		Description: "Handysize wheat parcel bound for the ARA hub",
		Value:       "$120,000", Route: "Constanta - Rotterdam", Cargo: "Wheat",
		Risk: "medium", APR: 11.2, Status: "active", CreatedAt: date(2025, time.February, 3),
	},
	{
		ID: "ast-003", Name: "Singapore Reefer Lane", Type: "reefer",
		Description: "Temperature-controlled seafood shipment",
		Value:       "$78,500", Route: "Ho Chi Minh - Singapore", Cargo: "Frozen seafood",
		Risk: "low", APR: 8.9, Status: "active", CreatedAt: date(2025, time.February, 20),
	},
	{
		ID: "ast-004", Name: "Gulf Crude Parcel", Type: "tanker",
		Description: "Aframax crude cargo within the Gulf",
		Value:       "$310,000", Route: "Ras Tanura - Fujairah", Cargo: "Crude oil",
		Risk: "high", APR: 14.0, Status: "funded", CreatedAt: date(2025, time.March, 11),
	},
	{
		ID: "ast-005", Name: "Mombasa Coffee Lot", Type: "container",
		Description: "Green coffee consignment to the Adriatic",
		Value:       "$23,400", Route: "Mombasa - Trieste", Cargo: "Green coffee",
		Risk: "medium", APR: 10.1, Status: "active", CreatedAt: date(2025, time.April, 2),
	},
	{
		ID: "ast-006", Name: "Dubai Logistics Hub", Type: "container",
		Description: "Machinery export consolidated at Jebel Ali",
		Value:       "$96,000", Route: "Jebel Ali - Hamburg", Cargo: "Machinery",
		Risk: "medium", APR: 10.8, Status: "closed", CreatedAt: date(2025, time.April, 28),
	},
}

var demoUsers = []domain.User{
	{
		ID: "usr-001", FirstName: "Alice", LastName: "Johnson",
		Email: "alice.johnson@example.com", Phone: "+1-202-555-0114",
		Role: "investor", Country: "US", Status: "active", CreatedAt: date(2024, time.November, 4),
	},
	{
		ID: "usr-002", FirstName: "Alicia", LastName: "Jones",
		Email: "alicia.jones@example.com", Phone: "+44-20-7946-0958",
		Role: "investor", Country: "GB", Status: "active", CreatedAt: date(2024, time.December, 12),
	},
	{
		ID: "usr-003", FirstName: "Omar", LastName: "Haddad",
		Email: "omar.haddad@example.com", Phone: "+971-4-555-0199",
		Role: "analyst", Country: "AE", Status: "active", CreatedAt: date(2025, time.January, 8),
	},
	{
		ID: "usr-004", FirstName: "Priya", LastName: "Nair",
		Email: "priya.nair@example.com", Phone: "+91-22-5550-0172",
		Role: "admin", Country: "IN", Status: "active", CreatedAt: date(2025, time.January, 27),
	},
	{
		ID: "usr-005", FirstName: "Mei", LastName: "Chen",
		Email: "mei.chen@example.com", Phone: "+65-6555-0143",
		Role: "investor", Country: "SG", Status: "pending", CreatedAt: date(2025, time.March, 19),
	},
}

var demoInvestments = []domain.Investment{
	{
		ID: "inv-001", AssetID: "ast-001", UserID: "usr-001",
		Type: "direct", Status: "active", Amount: 15000, CreatedAt: date(2025, time.January, 20),
	},
	{
		ID: "inv-002", AssetID: "ast-002", UserID: "usr-002",
		Type: "pooled", Status: "active", Amount: 50000, CreatedAt: date(2025, time.February, 10),
	},
	{
		ID: "inv-003", AssetID: "ast-004", UserID: "usr-001",
		Type: "direct", Status: "pending", Amount: 125000, CreatedAt: date(2025, time.March, 14),
	},
	{
		ID: "inv-004", AssetID: "ast-003", UserID: "usr-005",
		Type: "pooled", Status: "active", Amount: 8200, CreatedAt: date(2025, time.March, 22),
	},
	{
		ID: "inv-005", AssetID: "ast-001", UserID: "usr-002",
		Type: "direct", Status: "settled", Amount: 30000, CreatedAt: date(2025, time.April, 30),
	},
}
