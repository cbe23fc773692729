package feed

import (
	"bytes"
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"vietmarket/internal/models"
)

// ParseWorkbook reads products from the first sheet of an uploaded xlsx
// workbook. The column layout matches the CSV feed, including the header
// row. Rows failing the price/name rule are skipped, not fatal.
//
// Identity fields (id, seller, createdAt) are left for the caller to fill
// in: imported rows belong to the uploading user, not the sync system.
func ParseWorkbook(data []byte) ([]models.Product, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	products := make([]models.Product, 0, len(rows)-1)
	for i, row := range rows[1:] {
		p := models.Product{
			Name:        field(row, colName, ""),
			Price:       parsePrice(field(row, colPrice, "")),
			Category:    field(row, colCategory, defaultCategory),
			ImageURL:    field(row, colImage, defaultImageURL),
			Description: field(row, colDescription, defaultDescription),
			SellerZalo:  field(row, colZalo, ""),
			SellerFB:    field(row, colFB, ""),
			SellerName:  field(row, colSellerName, ""),
			Location:    field(row, colLocation, ""),
		}

		if !p.Valid() {
			log.Printf("[IMPORT] row %d skipped: name=%q price=%d", i+2, p.Name, p.Price)
			continue
		}

		products = append(products, p)
	}
	return products, nil
}
