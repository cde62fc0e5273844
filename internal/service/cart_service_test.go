package service

import (
	"context"
	"errors"
	"testing"

	"github.com/emily-flower/api/internal/cartstore"
	"github.com/emily-flower/api/internal/models"
	"github.com/emily-flower/api/internal/repository"
)

func setupCartService(t *testing.T) (*CartService, uint) {
	t.Helper()
	db := setupServiceTestDB(t)
	category := &models.Category{Slug: "wax-flowers", NameJSON: models.JSON{"vi-VN": "Hoa sáp", "en-US": "Wax Flowers"}}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := &models.Product{
		CategoryID: category.ID,
		Slug:       "pink-wax-bouquet",
		NameJSON:   models.JSON{"vi-VN": "Bó hoa sáp hồng", "en-US": "Pink Wax Bouquet"},
		Price:      models.NewMoneyFromInt(450000),
		Image:      "/images/pink-wax-bouquet.jpg",
		InStock:    true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	store := cartstore.NewStore(cartstore.NewMemoryStorage())
	return NewCartService(store, repository.NewProductRepository(db)), product.ID
}

func TestCartServiceAddSnapshotsCatalogData(t *testing.T) {
	ctx := context.Background()
	svc, productID := setupCartService(t)

	cart, err := svc.Add(ctx, "token-a", "1", 2, "vi-VN")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("items want 1 got %d", len(cart.Items))
	}
	item := cart.Items[0]
	if item.Name != "Bó hoa sáp hồng" || item.Category != "Hoa sáp" {
		t.Fatalf("localized snapshot wrong: %+v", item)
	}
	if item.Quantity != 2 || item.Price.String() != "450000" {
		t.Fatalf("quantity/price wrong: %+v", item)
	}
	_ = productID
}

func TestCartServiceAddEnglishLocale(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupCartService(t)

	cart, err := svc.Add(ctx, "token-a", "1", 1, "en-US")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if cart.Items[0].Name != "Pink Wax Bouquet" {
		t.Fatalf("english name wrong: %+v", cart.Items[0])
	}
}

func TestCartServiceAddUnknownProduct(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupCartService(t)

	if _, err := svc.Add(ctx, "token-a", "999", 1, "vi-VN"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
}
