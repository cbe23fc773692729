package catalog

import "vietmarket/internal/models"

// Source tags which dataset backs the remote half of the catalog. Seed
// data and live feed data are mutually exclusive: stale demo listings must
// never sit next to real ones.
type Source int

const (
	SourceRemote Source = iota
	SourceSeed
)

func (s Source) String() string {
	if s == SourceSeed {
		return "seed"
	}
	return "remote"
}

// ChooseSource is the single predicate deciding between feed and seed.
func ChooseSource(remote []models.Product) Source {
	if len(remote) == 0 {
		return SourceSeed
	}
	return SourceRemote
}

// BuildCatalog merges the three inputs under the source-priority policy:
// local submissions always lead, followed by the feed when it produced
// anything, otherwise by the bundled seed set.
func BuildCatalog(remote, local, seed []models.Product) []models.Product {
	var tail []models.Product
	if ChooseSource(remote) == SourceRemote {
		tail = remote
	} else {
		tail = seed
	}

	merged := make([]models.Product, 0, len(local)+len(tail))
	merged = append(merged, local...)
	merged = append(merged, tail...)
	return merged
}

// Persistable filters the catalog down to the records allowed into the
// submission store: everything without the remote provenance prefix.
func Persistable(catalog []models.Product) []models.Product {
	out := make([]models.Product, 0, len(catalog))
	for _, p := range catalog {
		if p.IsRemote() {
			continue
		}
		out = append(out, p)
	}
	return out
}
