package result

import (
	"testing"
	"time"
)

func TestValue_PerKind(t *testing.T) {
	now := time.Now()

	asset := New("a1", TypeAsset, "Jebel Ali-Dubai Container", "", 70,
		"container", "active", now, AssetMetadata{Value: "$45,000"})
	if got := asset.Value(); got != 45000 {
		t.Errorf("asset value = %v, want 45000", got)
	}

	inv := New("i1", TypeInvestment, "a1", "", 0,
		"direct", "active", now, InvestmentMetadata{Amount: 50000})
	if got := inv.Value(); got != 50000 {
		t.Errorf("investment value = %v, want 50000", got)
	}

	user := New("u1", TypeUser, "Alice Johnson", "", 90,
		"investor", "active", now, UserMetadata{Email: "alice@example.com"})
	if got := user.Value(); got != 0 {
		t.Errorf("user value = %v, want 0", got)
	}
}

func TestValue_MalformedMoney(t *testing.T) {
	asset := New("a2", TypeAsset, "x", "", 0, "", "", time.Time{},
		AssetMetadata{Value: "tbd"})
	if got := asset.Value(); got != 0 {
		t.Errorf("malformed money must yield 0, got %v", got)
	}
}
