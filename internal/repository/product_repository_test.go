package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/emily-flower/api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupRepositoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Order{}, &models.OrderItem{}, &models.Setting{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func createTestCategory(t *testing.T, db *gorm.DB, slug string) *models.Category {
	t.Helper()
	category := &models.Category{
		Slug:     slug,
		NameJSON: models.JSON{"vi-VN": "Hoa sáp", "en-US": "Wax Flowers"},
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return category
}

func createTestProduct(t *testing.T, repo *GormProductRepository, categoryID uint, slug string, price int64, featured bool, inStock bool) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID: categoryID,
		Slug:       slug,
		NameJSON:   models.JSON{"vi-VN": "Bó hoa sáp hồng", "en-US": "Pink Wax Bouquet"},
		Price:      models.NewMoneyFromInt(price),
		Image:      "/images/" + slug + ".jpg",
		InStock:    inStock,
		Featured:   featured,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestProductListFiltersByCategorySlugAndStock(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewProductRepository(db)
	waxCategory := createTestCategory(t, db, "wax-flowers")
	giftCategory := createTestCategory(t, db, "gift-boxes")

	createTestProduct(t, repo, waxCategory.ID, "pink-wax-bouquet", 450000, true, true)
	createTestProduct(t, repo, waxCategory.ID, "sold-out-bouquet", 350000, false, false)
	createTestProduct(t, repo, giftCategory.ID, "red-gift-box", 650000, false, true)

	products, total, err := repo.List(ProductListFilter{CategorySlug: "wax-flowers", OnlyInStock: true, Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("total want 1 got %d", total)
	}
	if len(products) != 1 || products[0].Slug != "pink-wax-bouquet" {
		t.Fatalf("unexpected products: %+v", products)
	}
}

func TestProductListSearchMatchesLocalizedName(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewProductRepository(db)
	category := createTestCategory(t, db, "wax-flowers")

	product := &models.Product{
		CategoryID: category.ID,
		Slug:       "sunflower-basket",
		NameJSON:   models.JSON{"vi-VN": "Giỏ hoa hướng dương", "en-US": "Sunflower Basket"},
		Price:      models.NewMoneyFromInt(550000),
		Image:      "/images/sunflower-basket.jpg",
		InStock:    true,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	products, total, err := repo.List(ProductListFilter{Search: "hướng dương", Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 || len(products) != 1 {
		t.Fatalf("search want 1 result got total=%d len=%d", total, len(products))
	}

	products, total, err = repo.List(ProductListFilter{Search: "Sunflower", Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("english search failed: %v", err)
	}
	if total != 1 || len(products) != 1 {
		t.Fatalf("english search want 1 result got total=%d len=%d", total, len(products))
	}
}

func TestProductListFeaturedOrdersBySortOrder(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewProductRepository(db)
	category := createTestCategory(t, db, "wax-flowers")

	first := createTestProduct(t, repo, category.ID, "bouquet-a", 450000, true, true)
	second := createTestProduct(t, repo, category.ID, "bouquet-b", 650000, true, true)
	createTestProduct(t, repo, category.ID, "bouquet-hidden", 150000, false, true)

	second.SortOrder = 10
	if err := repo.Update(second); err != nil {
		t.Fatalf("update sort order failed: %v", err)
	}

	products, err := repo.ListFeatured(8)
	if err != nil {
		t.Fatalf("list featured failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("featured want 2 got %d", len(products))
	}
	if products[0].ID != second.ID || products[1].ID != first.ID {
		t.Fatalf("featured order wrong: %v, %v", products[0].Slug, products[1].Slug)
	}
}

func TestProductGetBySlugReturnsNilWhenMissing(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewProductRepository(db)

	product, err := repo.GetBySlug("no-such-product")
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if product != nil {
		t.Fatalf("want nil product got %+v", product)
	}
}

func TestProductCountBySlugExcludesID(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewProductRepository(db)
	category := createTestCategory(t, db, "wax-flowers")
	product := createTestProduct(t, repo, category.ID, "pink-wax-bouquet", 450000, false, true)

	count, err := repo.CountBySlug("pink-wax-bouquet", nil)
	if err != nil {
		t.Fatalf("count by slug failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count want 1 got %d", count)
	}

	id := fmt.Sprintf("%d", product.ID)
	count, err = repo.CountBySlug("pink-wax-bouquet", &id)
	if err != nil {
		t.Fatalf("count by slug with exclude failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("count with exclude want 0 got %d", count)
	}
}
