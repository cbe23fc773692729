package catalog

import (
	"context"
	"log"
	"sync"
	"time"

	"vietmarket/internal/models"
)

// FeedReader supplies the remote half of the catalog. Implementations
// never fail; they degrade to an empty slice.
type FeedReader interface {
	Fetch(ctx context.Context) []models.Product
}

// SubmissionStore persists the user-authored product list.
type SubmissionStore interface {
	Load(ctx context.Context) ([]models.Product, error)
	Save(ctx context.Context, products []models.Product) error
}

// Controller is the single owner of the merged in-memory catalog. The
// slice is replaced wholesale on refresh and prepend, never mutated in
// place; reads hand out copies.
type Controller struct {
	feed  FeedReader
	store SubmissionStore
	now   func() time.Time

	mu       sync.RWMutex
	products []models.Product
	source   Source
}

func NewController(feed FeedReader, store SubmissionStore) *Controller {
	return &Controller{
		feed:   feed,
		store:  store,
		now:    time.Now,
		source: SourceSeed,
	}
}

// Refresh refetches the feed and the submission store and rebuilds the
// catalog. A submission-store failure degrades to an empty local set with
// a warning, mirroring the feed's failure mode.
//
// Only the feed fetch runs outside the lock. Submissions are re-read and
// merged under the write lock: Add persists under the same lock, so a
// submission accepted during a slow fetch is picked up here instead of
// being overwritten.
func (c *Controller) Refresh(ctx context.Context) Source {
	remote := c.feed.Fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	local, err := c.store.Load(ctx)
	if err != nil {
		log.Println("[CATALOG] [WARN] loading submissions failed, continuing with none:", err)
		local = nil
	}

	seed := SeedProducts(c.now().UnixMilli())
	c.products = BuildCatalog(remote, local, seed)
	c.source = ChooseSource(remote)

	log.Printf("[CATALOG] refreshed: %d products (source=%s, local=%d)", len(c.products), c.source, len(local))
	return c.source
}

// Products returns a copy of the current catalog.
func (c *Controller) Products() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Source reports which dataset backs the current catalog's remote half.
func (c *Controller) Source() Source {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.source
}

// Find looks a product up by id.
func (c *Controller) Find(id string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Add prepends a submission and persists the filtered catalog. If the
// store rejects the write the catalog is left unchanged, so memory and
// persistence cannot drift apart.
func (c *Controller) Add(ctx context.Context, product models.Product) error {
	return c.AddBatch(ctx, []models.Product{product})
}

// AddBatch prepends several submissions at once (spreadsheet import).
func (c *Controller) AddBatch(ctx context.Context, products []models.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	updated := make([]models.Product, 0, len(products)+len(c.products))
	updated = append(updated, products...)
	updated = append(updated, c.products...)

	if err := c.store.Save(ctx, Persistable(updated)); err != nil {
		return err
	}

	c.products = updated
	return nil
}
