package models

import "strings"

// Category labels shown in the storefront. CategoryAll is only a filter
// wildcard: the submission flow remaps it to CategoryOther before saving.
const (
	CategoryAll         = "Tất cả"
	CategoryElectronics = "Điện tử"
	CategoryFashion     = "Thời trang"
	CategoryHousehold   = "Gia dụng"
	CategoryFood        = "Ẩm thực"
	CategoryOther       = "Khác"
)

// Categories returns the closed label set in display order.
func Categories() []string {
	return []string{
		CategoryAll,
		CategoryElectronics,
		CategoryFashion,
		CategoryHousehold,
		CategoryFood,
		CategoryOther,
	}
}

// IsKnownCategory reports whether name is one of the closed labels.
// Feed rows carry free-text categories and are never checked against this.
func IsKnownCategory(name string) bool {
	for _, c := range Categories() {
		if c == name {
			return true
		}
	}
	return false
}

const (
	// RemoteIDPrefix marks products built from sheet rows. Ids carrying it
	// must never reach the submission store.
	RemoteIDPrefix = "sheet-"

	// RemoteSellerID identifies sheet-sourced listings as system-owned.
	RemoteSellerID = "system-sync"
)

// Product is the catalog entity. Remote-sourced products are rebuilt on
// every feed fetch; user submissions persist as JSON in the submission
// store, so only json tags apply here.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       int64   `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	SellerID    string  `json:"sellerId"`
	SellerName  string  `json:"sellerName"`
	SellerZalo  string  `json:"sellerZalo,omitempty"`
	SellerFB    string  `json:"sellerFB,omitempty"`
	CreatedAt   int64   `json:"createdAt"`
	Rating      float64 `json:"rating,omitempty"`
	SoldCount   int     `json:"soldCount,omitempty"`
	Location    string  `json:"location,omitempty"`
}

// IsRemote reports whether the product came from the sheet feed.
func (p Product) IsRemote() bool {
	return strings.HasPrefix(p.ID, RemoteIDPrefix)
}

// Valid is the row-validity rule: a displayable product has a positive
// price and a non-empty name.
func (p Product) Valid() bool {
	return p.Price > 0 && strings.TrimSpace(p.Name) != ""
}
