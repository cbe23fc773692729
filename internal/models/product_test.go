package models

import "testing"

func TestIsRemote(t *testing.T) {
	remote := Product{ID: "sheet-3-1700000000000"}
	if !remote.IsRemote() {
		t.Fatal("expected sheet-prefixed id to be remote")
	}

	local := Product{ID: "f47ac10b4"}
	if local.IsRemote() {
		t.Fatal("expected random id to be local")
	}
}

func TestValidRequiresPositivePriceAndName(t *testing.T) {
	cases := []struct {
		name  string
		p     Product
		valid bool
	}{
		{"ok", Product{Name: "Tai nghe", Price: 450000}, true},
		{"zero price", Product{Name: "Tai nghe", Price: 0}, false},
		{"negative price", Product{Name: "Tai nghe", Price: -1}, false},
		{"blank name", Product{Name: "   ", Price: 1000}, false},
	}
	for _, tc := range cases {
		if got := tc.p.Valid(); got != tc.valid {
			t.Fatalf("%s: Valid()=%v, want %v", tc.name, got, tc.valid)
		}
	}
}

func TestIsKnownCategory(t *testing.T) {
	if !IsKnownCategory(CategoryElectronics) {
		t.Fatal("expected Điện tử to be a known category")
	}
	if IsKnownCategory("Đồ chơi") {
		t.Fatal("expected free-text category to be unknown")
	}
}
