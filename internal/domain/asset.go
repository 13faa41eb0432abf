package domain

import "time"

// Asset is a tradeable platform asset (a financed shipment, route, or
// cargo position). Value is kept as the display string the catalog stores
// ("$45,000"); use ParseMoney wherever a number is needed.
type Asset struct {
	ID          string
	Name        string
	Description string
	Type        string // container, dry-bulk, tanker, reefer, ...
	Value       string
	Route       string
	Cargo       string
	Risk        string
	Status      string
	APR         float64
	CreatedAt   time.Time
}

// User is an investor account as the directory exposes it to search.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      string // investor, admin, analyst, ...
	Country   string
	Status    string
	CreatedAt time.Time
}

// FullName returns the display name used for relevance scoring.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Investment is a position a user holds in an asset.
type Investment struct {
	ID        string
	AssetID   string
	UserID    string
	Type      string // direct, pooled, ...
	Status    string
	Amount    float64
	CreatedAt time.Time
}
