package feed

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestParseWorkbook(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Tên", "Giá", "Danh mục", "Ảnh", "Mô tả", "Zalo", "Facebook", "Người bán", "Khu vực"},
		{"Tai nghe A", "120.000đ", "Điện tử", "http://img", "Mô tả", "0900", "fb.com/x", "Shop A", "Hà Nội"},
		{"Hàng lỗi", "khong co"},
		{"Áo thun B", "200000"},
	})

	products, err := ParseWorkbook(data)
	if err != nil {
		t.Fatalf("ParseWorkbook returned error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Name != "Tai nghe A" || products[0].Price != 120000 {
		t.Fatalf("unexpected first product: %+v", products[0])
	}
	if products[1].Category != defaultCategory {
		t.Fatalf("expected default category for sparse row, got %q", products[1].Category)
	}
	if products[0].ID != "" || products[0].SellerID != "" {
		t.Fatal("identity fields must be left empty for the caller")
	}
}

func TestParseWorkbookHeaderOnly(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Tên", "Giá"},
	})
	products, err := ParseWorkbook(data)
	if err != nil {
		t.Fatalf("ParseWorkbook returned error: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected no products, got %d", len(products))
	}
}

func TestParseWorkbookRejectsGarbage(t *testing.T) {
	if _, err := ParseWorkbook([]byte("not a workbook")); err == nil {
		t.Fatal("expected error for non-xlsx payload")
	}
}
