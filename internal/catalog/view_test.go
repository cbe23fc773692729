package catalog

import (
	"reflect"
	"testing"

	"vietmarket/internal/models"
)

func sampleCatalog() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Tai nghe Bluetooth", Category: models.CategoryElectronics, CreatedAt: 100},
		{ID: "2", Name: "Áo thun nam", Category: models.CategoryFashion, CreatedAt: 300},
		{ID: "3", Name: "Tai nghe gaming RGB", Category: models.CategoryElectronics, CreatedAt: 200},
		{ID: "4", Name: "Nồi chiên", Category: models.CategoryHousehold, CreatedAt: 400},
	}
}

func TestVisibleProductsWildcardReturnsAllSorted(t *testing.T) {
	got := VisibleProducts(sampleCatalog(), models.CategoryAll, "")
	if len(got) != 4 {
		t.Fatalf("expected all 4 products, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].CreatedAt < got[i].CreatedAt {
			t.Fatalf("not sorted newest first: %v", got)
		}
	}
}

func TestVisibleProductsCategoryAndSearch(t *testing.T) {
	got := VisibleProducts(sampleCatalog(), models.CategoryElectronics, "TAI NGHE")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].ID != "3" || got[1].ID != "1" {
		t.Fatalf("expected [3 1] (newest first), got [%s %s]", got[0].ID, got[1].ID)
	}
}

func TestVisibleProductsCategoryMatchIsExact(t *testing.T) {
	catalog := []models.Product{
		{ID: "1", Name: "Loa mini", Category: "điện tử", CreatedAt: 1},
	}
	if got := VisibleProducts(catalog, models.CategoryElectronics, ""); len(got) != 0 {
		t.Fatal("case-mismatched category must not match a specific filter")
	}
	if got := VisibleProducts(catalog, models.CategoryAll, ""); len(got) != 1 {
		t.Fatal("wildcard must still match free-text categories")
	}
}

func TestVisibleProductsIdempotent(t *testing.T) {
	catalog := sampleCatalog()
	first := VisibleProducts(catalog, models.CategoryAll, "tai")
	second := VisibleProducts(catalog, models.CategoryAll, "tai")
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs produced different outputs")
	}
}

func TestVisibleProductsDoesNotMutateInput(t *testing.T) {
	catalog := sampleCatalog()
	VisibleProducts(catalog, models.CategoryAll, "")
	if catalog[0].ID != "1" || catalog[3].ID != "4" {
		t.Fatal("input catalog order was mutated")
	}
}

func TestVisibleProductsStableTies(t *testing.T) {
	catalog := []models.Product{
		{ID: "a", Name: "A", Category: models.CategoryOther, CreatedAt: 100},
		{ID: "b", Name: "B", Category: models.CategoryOther, CreatedAt: 100},
	}
	got := VisibleProducts(catalog, models.CategoryAll, "")
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Fatal("equal timestamps must keep input order")
	}
}
