package cartstore

import (
	"testing"

	"github.com/emily-flower/api/internal/models"
)

func waxBouquet() Item {
	return Item{
		ProductID: "1",
		Name:      "Bó hoa sáp hồng",
		Slug:      "pink-wax-bouquet",
		Image:     "/images/pink-wax-bouquet.jpg",
		Category:  "Hoa sáp",
		Price:     models.NewMoneyFromInt(450000),
		Quantity:  1,
	}
}

func giftBox() Item {
	return Item{
		ProductID: "2",
		Name:      "Hộp quà hoa đỏ",
		Slug:      "red-gift-box",
		Image:     "/images/red-gift-box.jpg",
		Category:  "Hộp quà",
		Price:     models.NewMoneyFromInt(650000),
		Quantity:  2,
	}
}

func TestCartAddItemMergesByProductID(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(waxBouquet())
	cart.AddItem(waxBouquet())

	if len(cart.Items) != 1 {
		t.Fatalf("items want 1 got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 {
		t.Fatalf("quantity want 2 got %d", cart.Items[0].Quantity)
	}
}

func TestCartAddItemClampsQuantity(t *testing.T) {
	cart := &Cart{}
	item := waxBouquet()
	item.Quantity = -3
	cart.AddItem(item)

	if len(cart.Items) != 1 || cart.Items[0].Quantity != 1 {
		t.Fatalf("quantity should clamp to 1, got %+v", cart.Items)
	}
}

func TestCartAddItemIgnoresEmptyProductID(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(Item{Name: "nameless"})
	if len(cart.Items) != 0 {
		t.Fatalf("empty product id should be ignored, got %+v", cart.Items)
	}
}

func TestCartUpdateQuantityZeroRemoves(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(waxBouquet())
	cart.AddItem(giftBox())

	cart.UpdateQuantity("1", 0)
	if len(cart.Items) != 1 || cart.Items[0].ProductID != "2" {
		t.Fatalf("update to 0 should remove item, got %+v", cart.Items)
	}

	cart.UpdateQuantity("2", -5)
	if len(cart.Items) != 0 {
		t.Fatalf("negative quantity should remove item, got %+v", cart.Items)
	}
}

func TestCartRemoveAbsentIsNoop(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(waxBouquet())
	cart.RemoveItem("no-such-id")

	if len(cart.Items) != 1 {
		t.Fatalf("remove of absent id should not change cart, got %+v", cart.Items)
	}
}

func TestCartTotalsRecomputed(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(waxBouquet())
	cart.AddItem(giftBox())

	if cart.TotalItems() != 3 {
		t.Fatalf("total items want 3 got %d", cart.TotalItems())
	}
	if cart.TotalPrice().String() != "1750000" {
		t.Fatalf("total price want 1750000 got %s", cart.TotalPrice().String())
	}

	cart.UpdateQuantity("2", 1)
	if cart.TotalItems() != 2 {
		t.Fatalf("total items after update want 2 got %d", cart.TotalItems())
	}
	if cart.TotalPrice().String() != "1100000" {
		t.Fatalf("total price after update want 1100000 got %s", cart.TotalPrice().String())
	}
}

func TestCartPreservesInsertionOrder(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(giftBox())
	cart.AddItem(waxBouquet())
	cart.AddItem(giftBox())

	if len(cart.Items) != 2 {
		t.Fatalf("items want 2 got %d", len(cart.Items))
	}
	if cart.Items[0].ProductID != "2" || cart.Items[1].ProductID != "1" {
		t.Fatalf("insertion order not preserved: %+v", cart.Items)
	}
}

func TestCartDrawerFlag(t *testing.T) {
	cart := &Cart{}
	if cart.IsOpen() {
		t.Fatalf("drawer should start closed")
	}
	cart.Open()
	if !cart.IsOpen() {
		t.Fatalf("drawer should be open")
	}
	cart.Close()
	if cart.IsOpen() {
		t.Fatalf("drawer should be closed")
	}
}

func TestCartSnapshotIsIndependent(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(waxBouquet())

	snapshot := cart.Snapshot()
	cart.UpdateQuantity("1", 5)

	if snapshot[0].Quantity != 1 {
		t.Fatalf("snapshot should not track later mutations, got %d", snapshot[0].Quantity)
	}
}
