package handlers

import (
	"testing"
	"time"

	"vietmarket/internal/models"
)

var testUser = models.User{ID: "user-1", Name: "Khách hàng Shopee"}

func validRequest() PostProductRequest {
	return PostProductRequest{
		Name:        "Tai nghe Gaming Pro",
		Price:       250000,
		Description: "Mô tả chi tiết",
		Category:    models.CategoryElectronics,
		ImageURL:    "data:image/png;base64,abc",
		SellerZalo:  "0912345678",
	}
}

func TestBuildSubmission(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	product, err := buildSubmission(validRequest(), testUser, now)
	if err != nil {
		t.Fatalf("buildSubmission returned error: %v", err)
	}
	if product.ID == "" || product.IsRemote() {
		t.Fatalf("expected a local random id, got %q", product.ID)
	}
	if product.SellerID != testUser.ID || product.SellerName != testUser.Name {
		t.Fatalf("seller fields not taken from user: %+v", product)
	}
	if product.CreatedAt != 1700000000000 {
		t.Fatalf("unexpected createdAt %d", product.CreatedAt)
	}
	if !product.Valid() {
		t.Fatal("submission must satisfy the validity rule")
	}
}

func TestBuildSubmissionRemapsWildcardCategory(t *testing.T) {
	req := validRequest()
	req.Category = models.CategoryAll

	product, err := buildSubmission(req, testUser, time.Now())
	if err != nil {
		t.Fatalf("buildSubmission returned error: %v", err)
	}
	if product.Category != models.CategoryOther {
		t.Fatalf("expected wildcard remapped to %q, got %q", models.CategoryOther, product.Category)
	}
}

func TestBuildSubmissionRejectsUnknownCategory(t *testing.T) {
	req := validRequest()
	req.Category = "Đồ chơi"

	if _, err := buildSubmission(req, testUser, time.Now()); err == nil {
		t.Fatal("expected error for category outside the closed set")
	}
}

func TestBuildSubmissionRejectsNonPositivePrice(t *testing.T) {
	for _, price := range []int64{0, -100} {
		req := validRequest()
		req.Price = price
		if _, err := buildSubmission(req, testUser, time.Now()); err == nil {
			t.Fatalf("expected error for price %d", price)
		}
	}
}

func TestBuildSubmissionRequiresImage(t *testing.T) {
	req := validRequest()
	req.ImageURL = "   "
	if _, err := buildSubmission(req, testUser, time.Now()); err == nil {
		t.Fatal("expected error for missing image")
	}
}

func TestBuildSubmissionGeneratesUniqueIDs(t *testing.T) {
	first, err := buildSubmission(validRequest(), testUser, time.Now())
	if err != nil {
		t.Fatalf("buildSubmission returned error: %v", err)
	}
	second, err := buildSubmission(validRequest(), testUser, time.Now())
	if err != nil {
		t.Fatalf("buildSubmission returned error: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("expected distinct ids for separate submissions")
	}
}
