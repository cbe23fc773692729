package catalog

import (
	"testing"

	"vietmarket/internal/models"
)

func TestBuildCatalogUsesSeedWhenRemoteEmpty(t *testing.T) {
	local := []models.Product{{ID: "L1"}}
	seed := []models.Product{{ID: "S1"}, {ID: "S2"}}

	got := BuildCatalog(nil, local, seed)
	want := []string{"L1", "S1", "S2"}
	if len(got) != len(want) {
		t.Fatalf("expected %d products, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestBuildCatalogExcludesSeedWhenRemoteNonEmpty(t *testing.T) {
	remote := []models.Product{{ID: "R1"}}
	local := []models.Product{{ID: "L1"}}
	seed := []models.Product{{ID: "S1"}, {ID: "S2"}}

	got := BuildCatalog(remote, local, seed)
	if len(got) != 2 || got[0].ID != "L1" || got[1].ID != "R1" {
		t.Fatalf("expected [L1 R1], got %v", got)
	}
}

func TestChooseSource(t *testing.T) {
	if ChooseSource(nil) != SourceSeed {
		t.Fatal("empty remote must choose seed")
	}
	if ChooseSource([]models.Product{{ID: "R1"}}) != SourceRemote {
		t.Fatal("non-empty remote must choose remote")
	}
}

func TestPersistableExcludesRemoteProvenance(t *testing.T) {
	catalog := []models.Product{
		{ID: "abc123"},
		{ID: models.RemoteIDPrefix + "0-1700000000000"},
		{ID: "def456"},
	}

	got := Persistable(catalog)
	if len(got) != 2 {
		t.Fatalf("expected 2 persistable products, got %d", len(got))
	}
	for _, p := range got {
		if p.IsRemote() {
			t.Fatalf("remote product leaked into persistable set: %s", p.ID)
		}
	}
}

func TestSeedProductsAreValid(t *testing.T) {
	for _, p := range SeedProducts(1700000000000) {
		if !p.Valid() {
			t.Fatalf("seed product %s fails validity rule", p.ID)
		}
		if p.IsRemote() {
			t.Fatalf("seed product %s must not carry remote provenance", p.ID)
		}
		if p.CreatedAt != 1700000000000 {
			t.Fatalf("seed product %s did not take the supplied timestamp", p.ID)
		}
	}
}
