package catalog

import "vietmarket/internal/models"

// SeedProducts is the bundled demo set, shown only when the live feed
// produced nothing. Timestamps are assigned at call time so they sort
// like fresh listings.
func SeedProducts(now int64) []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Tai nghe Bluetooth Pro 2024",
			Price:       450000,
			Description: "Âm thanh sống động, chống ồn chủ động, thời lượng pin lên đến 24h liên tục.",
			Category:    models.CategoryElectronics,
			ImageURL:    "https://picsum.photos/seed/earbuds/400/400",
			SellerID:    "admin",
			SellerName:  "Shop Công Nghệ",
			SellerZalo:  "0901234567",
			CreatedAt:   now,
		},
		{
			ID:          "2",
			Name:        "Áo thun Cotton Premium",
			Price:       185000,
			Description: "Chất liệu vải cotton 100% co giãn 4 chiều, thấm hút mồ hôi cực tốt.",
			Category:    models.CategoryFashion,
			ImageURL:    "https://picsum.photos/seed/tshirt/400/400",
			SellerID:    "admin",
			SellerName:  "Fashion Việt",
			SellerFB:    "facebook.com/vietfashion",
			CreatedAt:   now,
		},
		{
			ID:          "3",
			Name:        "Nồi chiên không dầu Lock&Lock",
			Price:       1250000,
			Description: "Dung tích 5.5L, công nghệ Rapid Air giảm 80% lượng dầu mỡ thừa.",
			Category:    models.CategoryHousehold,
			ImageURL:    "https://picsum.photos/seed/airfryer/400/400",
			SellerID:    "user1",
			SellerName:  "Gia Dụng Thông Minh",
			SellerZalo:  "0988776655",
			CreatedAt:   now,
		},
		{
			ID:          "4",
			Name:        "Hạt điều rang muối Bình Phước",
			Price:       120000,
			Description: "Hạt điều loại 1, rang muối thủ công, giữ trọn hương vị bùi béo tự nhiên.",
			Category:    models.CategoryFood,
			ImageURL:    "https://picsum.photos/seed/cashew/400/400",
			SellerID:    "user2",
			SellerName:  "Đặc Sản Quê",
			SellerZalo:  "0123456789",
			CreatedAt:   now,
		},
	}
}
