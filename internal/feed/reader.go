package feed

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vietmarket/internal/models"
)

// Positional column layout of the sheet export. Missing or empty columns
// take the fixed defaults below.
const (
	colName = iota
	colPrice
	colCategory
	colImage
	colDescription
	colZalo
	colFB
	colSellerName
	colLocation
)

const (
	defaultName        = "Sản phẩm Shopee"
	defaultCategory    = models.CategoryOther
	defaultImageURL    = "https://via.placeholder.com/400?text=No+Image"
	defaultDescription = "Sản phẩm chất lượng cao, giá tốt nhất thị trường."
	defaultSellerName  = "Cửa hàng chính hãng"
	defaultLocation    = "Hà Nội"
)

// Reader fetches the public CSV export of the catalog spreadsheet.
type Reader struct {
	client  *http.Client
	baseURL string
	sheetID string
	timeout time.Duration
	now     func() time.Time
}

func NewReader(baseURL, sheetID string, timeout time.Duration) *Reader {
	return &Reader{
		client:  &http.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		sheetID: sheetID,
		timeout: timeout,
		now:     time.Now,
	}
}

// Fetch downloads and parses the feed. It never fails: any transport
// error, non-success status, or unusable body degrades to an empty slice
// and the caller falls back to seed data.
func (r *Reader) Fetch(ctx context.Context) []models.Product {
	fetchedAt := r.now().UnixMilli()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	// The timestamp query parameter keeps intermediate caches from serving
	// a stale export.
	url := fmt.Sprintf("%s/d/%s/export?format=csv&gid=0&t=%d", r.baseURL, r.sheetID, fetchedAt)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Println("[FEED] [ERROR] building request failed:", err)
		return nil
	}
	req.Header.Set("Content-Type", "text/csv;charset=UTF-8")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := r.client.Do(req)
	if err != nil {
		log.Println("[FEED] [ERROR] fetch failed:", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[FEED] [ERROR] unexpected status %d", resp.StatusCode)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Println("[FEED] [ERROR] reading body failed:", err)
		return nil
	}

	products := parseFeed(string(body), fetchedAt)
	log.Printf("[FEED] parsed %d products from sheet", len(products))
	return products
}

// parseFeed turns a CSV body into products. The first non-blank line is a
// header and is discarded. A malformed row degrades to defaults and is
// then dropped by the price rule, never aborting the batch.
func parseFeed(body string, fetchedAt int64) []models.Product {
	lines := splitLines(body)
	if len(lines) <= 1 {
		return nil
	}

	products := make([]models.Product, 0, len(lines)-1)
	for i, line := range lines[1:] {
		cols := splitLine(line)

		p := models.Product{
			ID:          fmt.Sprintf("%s%d-%d", models.RemoteIDPrefix, i, fetchedAt),
			Name:        field(cols, colName, defaultName),
			Price:       parsePrice(field(cols, colPrice, "")),
			Category:    field(cols, colCategory, defaultCategory),
			ImageURL:    field(cols, colImage, defaultImageURL),
			Description: field(cols, colDescription, defaultDescription),
			SellerZalo:  field(cols, colZalo, ""),
			SellerFB:    field(cols, colFB, ""),
			SellerName:  field(cols, colSellerName, defaultSellerName),
			SellerID:    models.RemoteSellerID,
			CreatedAt:   fetchedAt,
			Location:    field(cols, colLocation, defaultLocation),
			Rating:      4.5 + rand.Float64()*0.5,
			SoldCount:   rand.Intn(1200) + 100,
		}

		// Garbage rows surface here as price 0.
		if p.Price <= 0 {
			continue
		}

		products = append(products, p)
	}
	return products
}

func splitLines(body string) []string {
	raw := strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// splitLine splits a CSV line on commas, treating double-quoted fields as
// atomic. Surrounding quotes are stripped and each field is trimmed.
// Empty fields are preserved so later columns stay aligned.
func splitLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}

// parsePrice strips everything but digits and parses the remainder.
// A field with no digits parses to 0 and fails the validity rule.
func parsePrice(raw string) int64 {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	price, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return price
}

func field(cols []string, index int, fallback string) string {
	if index < len(cols) && cols[index] != "" {
		return cols[index]
	}
	return fallback
}
