package catalog

import (
	"sort"
	"strings"

	"vietmarket/internal/models"
)

// VisibleProducts derives the displayed subset: category match (exact, or
// the wildcard), case-insensitive substring search on the name, newest
// first. Pure function of its inputs; the catalog slice is not mutated.
func VisibleProducts(catalog []models.Product, category, search string) []models.Product {
	needle := strings.ToLower(search)

	visible := make([]models.Product, 0, len(catalog))
	for _, p := range catalog {
		if category != models.CategoryAll && p.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		visible = append(visible, p)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].CreatedAt > visible[j].CreatedAt
	})
	return visible
}
