package catalog

import (
	"strconv"
	"time"

	"github.com/harborline/invsearch/internal/domain"
)

// Hash mapping is tolerant on read: a missing or malformed numeric or
// timestamp field hydrates to its zero value. One bad record must never
// fail a whole search.

func assetToHash(a domain.Asset) map[string]string {
	return map[string]string{
		"id":          a.ID,
		"name":        a.Name,
		"description": a.Description,
		"type":        a.Type,
		"value":       a.Value,
		"route":       a.Route,
		"cargo":       a.Cargo,
		"risk":        a.Risk,
		"status":      a.Status,
		"apr":         strconv.FormatFloat(a.APR, 'f', -1, 64),
		"created_at":  a.CreatedAt.Format(time.RFC3339),
	}
}

func assetFromHash(m map[string]string) domain.Asset {
	return domain.Asset{
		ID:          m["id"],
		Name:        m["name"],
		Description: m["description"],
		Type:        m["type"],
		Value:       m["value"],
		Route:       m["route"],
		Cargo:       m["cargo"],
		Risk:        m["risk"],
		Status:      m["status"],
		APR:         parseFloat(m["apr"]),
		CreatedAt:   parseTime(m["created_at"]),
	}
}

func userToHash(u domain.User) map[string]string {
	return map[string]string{
		"id":         u.ID,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"email":      u.Email,
		"phone":      u.Phone,
		"role":       u.Role,
		"country":    u.Country,
		"status":     u.Status,
		"created_at": u.CreatedAt.Format(time.RFC3339),
	}
}

func userFromHash(m map[string]string) domain.User {
	return domain.User{
		ID:        m["id"],
		FirstName: m["first_name"],
		LastName:  m["last_name"],
		Email:     m["email"],
		Phone:     m["phone"],
		Role:      m["role"],
		Country:   m["country"],
		Status:    m["status"],
		CreatedAt: parseTime(m["created_at"]),
	}
}

func investmentToHash(inv domain.Investment) map[string]string {
	return map[string]string{
		"id":         inv.ID,
		"asset_id":   inv.AssetID,
		"user_id":    inv.UserID,
		"type":       inv.Type,
		"status":     inv.Status,
		"amount":     strconv.FormatFloat(inv.Amount, 'f', -1, 64),
		"created_at": inv.CreatedAt.Format(time.RFC3339),
	}
}

func investmentFromHash(m map[string]string) domain.Investment {
	return domain.Investment{
		ID:        m["id"],
		AssetID:   m["asset_id"],
		UserID:    m["user_id"],
		Type:      m["type"],
		Status:    m["status"],
		Amount:    parseFloat(m["amount"]),
		CreatedAt: parseTime(m["created_at"]),
	}
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
