package main

import (
	"fmt"

	"github.com/emily-flower/api/internal/config"
	"github.com/emily-flower/api/internal/logger"
	"github.com/emily-flower/api/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{
			NameJSON: models.JSON(map[string]interface{}{
				"vi-VN": "Bó hoa sáp",
				"en-US": "Wax Flower Bouquets",
			}),
			Slug:      "bo-hoa-sap",
			SortOrder: 300,
		},
		{
			NameJSON: models.JSON(map[string]interface{}{
				"vi-VN": "Gấu bông hoa sáp",
				"en-US": "Wax Flower Bears",
			}),
			Slug:      "gau-bong-hoa-sap",
			SortOrder: 200,
		},
		{
			NameJSON: models.JSON(map[string]interface{}{
				"vi-VN": "Hộp quà hoa sáp",
				"en-US": "Wax Flower Gift Boxes",
			}),
			Slug:      "hop-qua-hoa-sap",
			SortOrder: 100,
		},
	}

	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	// 获取分类ID
	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Where("slug IN ?", []string{"bo-hoa-sap", "gau-bong-hoa-sap", "hop-qua-hoa-sap"}).Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}
	bouquetID := categoryIDs["bo-hoa-sap"]
	bearID := categoryIDs["gau-bong-hoa-sap"]
	giftBoxID := categoryIDs["hop-qua-hoa-sap"]

	originalPrice := func(amount int64) *models.Money {
		m := models.NewMoneyFromInt(amount)
		return &m
	}

	// 添加商品
	products := []models.Product{
		{
			NameJSON: models.JSON(map[string]interface{}{
				"vi-VN": "Bó hoa sáp hồng pastel 20 bông",
				"en-US": "Pastel Pink Wax Rose Bouquet (20 stems)",
			}),
			Slug: "bo-hoa-sap-hong-pastel-20-bong",
			DescriptionJSON: models.JSON(map[string]interface{}{
				"vi-VN": "Bó hoa sáp tông hồng pastel, 20 bông hồng sáp thơm nhẹ, gói giấy Hàn Quốc kèm thiệp viết tay.",
				"en-US": "Pastel pink wax bouquet with 20 lightly scented wax roses, Korean wrapping paper and a handwritten card.",
			}),
			CategoryID:    bouquetID,
			Price:         models.NewMoneyFromInt(289000),
			OriginalPrice: originalPrice(350000),
			Image:         "https://images.unsplash.com/photo-1487530811176-3780de880c2d?w=800",
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1487530811176-3780de880c2d?w=800",
				"https://images.unsplash.com/photo-1518895949257-7621c3c786d7?w=800",
			}),
			Tag:       "Bán chạy",
			Rating:    4.9,
			Reviews:   132,
			InStock:   true,
			Featured:  true,
			SortOrder: 300,
		},
		{
			NameJSON: models.JSON(map[string]interface{}{
				"vi-VN": "Bó hoa sáp đỏ nhung 33 bông",
				"en-US": "Velvet Red Wax Rose Bouquet (33 stems)",
			}),
			Slug: "bo-hoa-sap-do-nhung-33-bong",
			DescriptionJSON: models.JSON(map[string]interface{}{
				"vi-VN": "33 bông hồng sáp đỏ nhung tượng trưng cho lời yêu bền lâu, phù hợp tặng dịp kỷ niệm.",
				"en-US": "33 velvet red wax roses symbolizing lasting love, perfect for anniversaries.",
			}),
			CategoryID:    bouquetID,
			Price:         models.NewMoneyFromInt(459000),
			OriginalPrice: originalPrice(520000),
			Image:         "https://images.unsplash.com/photo-1494972308805-463bc619d34e?w=800",
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1494972308805-463bc619d34e?w=800",
			}),
			Tag:       "Mới",
			Rating:    4.8,
			Reviews:   57,
			InStock:   true,
			Featured:  true,
			SortOrder: 280,
		},
		{
			NameJSON: models.JSON(map[string]interface{}{
				"vi-VN": "Gấu bông hoa sáp trái tim",
				"en-US": "Heart Wax Flower Bear",
			}),
			Slug: "gau-bong-hoa-sap-trai-tim",
			DescriptionJSON: models.JSON(map[string]interface{}{
				"vi-VN": "Gấu bông ôm trái tim kết từ hoa hồng sáp mini, cao 40cm, kèm đèn led trang trí.",
				"en-US": "Plush bear hugging a heart made of mini wax roses, 40cm tall, with decorative LED lights.",
			}),
			CategoryID: bearID,
			Price:      models.NewMoneyFromInt(399000),
			Image:      "https://images.unsplash.com/photo-1559715541-5daf8a0296d0?w=800",
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1559715541-5daf8a0296d0?w=800",
			}),
			Rating:    4.7,
			Reviews:   89,
			InStock:   true,
			Featured:  true,
			SortOrder: 260,
		},
		{
			NameJSON: models.JSON(map[string]interface{}{
				"vi-VN": "Hộp quà hoa sáp kèm socola",
				"en-US": "Wax Flower Gift Box with Chocolate",
			}),
			Slug: "hop-qua-hoa-sap-kem-socola",
			DescriptionJSON: models.JSON(map[string]interface{}{
				"vi-VN": "Hộp quà sang trọng gồm hoa sáp thơm, socola Ferrero và thiệp chúc, giao trong ngày tại TP.HCM.",
				"en-US": "Luxury gift box with scented wax flowers, Ferrero chocolate and a greeting card, same-day delivery in HCMC.",
			}),
			CategoryID:    giftBoxID,
			Price:         models.NewMoneyFromInt(549000),
			OriginalPrice: originalPrice(620000),
			Image:         "https://images.unsplash.com/photo-1549465220-1a8b9238cd48?w=800",
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1549465220-1a8b9238cd48?w=800",
			}),
			Tag:       "Quà tặng",
			Rating:    5,
			Reviews:   41,
			InStock:   true,
			Featured:  false,
			SortOrder: 240,
		},
		{
			NameJSON: models.JSON(map[string]interface{}{
				"vi-VN": "Bó hoa sáp hướng dương mini",
				"en-US": "Mini Wax Sunflower Bouquet",
			}),
			Slug: "bo-hoa-sap-huong-duong-mini",
			DescriptionJSON: models.JSON(map[string]interface{}{
				"vi-VN": "Bó hướng dương sáp mini rực rỡ, thích hợp tặng dịp tốt nghiệp.",
				"en-US": "Bright mini wax sunflower bouquet, great for graduations.",
			}),
			CategoryID: bouquetID,
			Price:      models.NewMoneyFromInt(189000),
			Image:      "https://images.unsplash.com/photo-1470509037663-253afd7f0f51?w=800",
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1470509037663-253afd7f0f51?w=800",
			}),
			Rating:    4.6,
			Reviews:   23,
			InStock:   false,
			Featured:  false,
			SortOrder: 220,
		},
	}

	for _, prod := range products {
		if prod.CategoryID == 0 {
			stdLog.Printf("Skip product %s: category_id missing", prod.Slug)
			continue
		}
		var existing models.Product
		if err := models.DB.Where("slug = ?", prod.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Slug, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Slug)
			}
		} else {
			existing.NameJSON = prod.NameJSON
			existing.DescriptionJSON = prod.DescriptionJSON
			existing.CategoryID = prod.CategoryID
			existing.Price = prod.Price
			existing.OriginalPrice = prod.OriginalPrice
			existing.Image = prod.Image
			existing.Images = prod.Images
			existing.Tag = prod.Tag
			existing.Rating = prod.Rating
			existing.Reviews = prod.Reviews
			existing.InStock = prod.InStock
			existing.Featured = prod.Featured
			existing.SortOrder = prod.SortOrder
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update product %s: %v", prod.Slug, err)
			} else {
				stdLog.Printf("Updated product: %s", prod.Slug)
			}
		}
	}

	fmt.Println("\n✅ Seed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 3 Categories")
	fmt.Println("- 5 Products")
}
