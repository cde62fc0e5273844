package cartstore

import (
	"context"
	"encoding/json"
	"testing"
)

func TestStorePersistsAfterEveryMutation(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	store := NewStore(storage)

	if _, err := store.AddItem(ctx, "token-a", waxBouquet()); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if _, err := store.AddItem(ctx, "token-a", giftBox()); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	data, found, err := storage.Load(ctx, "cart:token-a")
	if err != nil || !found {
		t.Fatalf("cart not persisted: found=%v err=%v", found, err)
	}
	var persisted persistedCart
	if err := json.Unmarshal(data, &persisted); err != nil {
		t.Fatalf("persisted payload invalid: %v", err)
	}
	if len(persisted.Items) != 2 {
		t.Fatalf("persisted items want 2 got %d", len(persisted.Items))
	}
}

func TestStoreRoundTripPreservesOrderAndTotals(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	first := NewStore(storage)
	if _, err := first.AddItem(ctx, "token-a", giftBox()); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if _, err := first.AddItem(ctx, "token-a", waxBouquet()); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	// 新 Store 实例模拟进程重启后的恢复
	second := NewStore(storage)
	cart, err := second.Get(ctx, "token-a")
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if len(cart.Items) != 2 {
		t.Fatalf("restored items want 2 got %d", len(cart.Items))
	}
	if cart.Items[0].ProductID != "2" || cart.Items[1].ProductID != "1" {
		t.Fatalf("restored order wrong: %+v", cart.Items)
	}
	if cart.TotalItems() != 3 || cart.TotalPrice().String() != "1750000" {
		t.Fatalf("restored totals wrong: items=%d price=%s", cart.TotalItems(), cart.TotalPrice().String())
	}
}

func TestStoreCorruptDataLoadsAsEmptyCart(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	if err := storage.Save(ctx, "cart:token-a", []byte("{not-json")); err != nil {
		t.Fatalf("seed corrupt data failed: %v", err)
	}

	store := NewStore(storage)
	cart, err := store.Get(ctx, "token-a")
	if err != nil {
		t.Fatalf("corrupt restore should not error: %v", err)
	}
	if !cart.IsEmpty() {
		t.Fatalf("corrupt restore should yield empty cart, got %+v", cart.Items)
	}
}

func TestStoreMissingKeyLoadsAsEmptyCart(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage())

	cart, err := store.Get(ctx, "unknown-token")
	if err != nil {
		t.Fatalf("missing key should not error: %v", err)
	}
	if !cart.IsEmpty() {
		t.Fatalf("missing key should yield empty cart, got %+v", cart.Items)
	}
}

func TestStoreClearPersistsEmptyList(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	store := NewStore(storage)

	if _, err := store.AddItem(ctx, "token-a", waxBouquet()); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	cart, err := store.Clear(ctx, "token-a")
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if !cart.IsEmpty() {
		t.Fatalf("cart should be empty after clear")
	}

	data, found, err := storage.Load(ctx, "cart:token-a")
	if err != nil || !found {
		t.Fatalf("cleared cart should still be persisted: found=%v err=%v", found, err)
	}
	var persisted persistedCart
	if err := json.Unmarshal(data, &persisted); err != nil {
		t.Fatalf("persisted payload invalid: %v", err)
	}
	if len(persisted.Items) != 0 {
		t.Fatalf("persisted items want 0 got %d", len(persisted.Items))
	}
}

func TestStoreDrawerFlagNotPersisted(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	first := NewStore(storage)
	if _, err := first.AddItem(ctx, "token-a", waxBouquet()); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	cart, err := first.SetOpen(ctx, "token-a", true)
	if err != nil {
		t.Fatalf("set open failed: %v", err)
	}
	if !cart.IsOpen() {
		t.Fatalf("drawer should be open")
	}

	second := NewStore(storage)
	restored, err := second.Get(ctx, "token-a")
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if restored.IsOpen() {
		t.Fatalf("drawer state should not survive restore")
	}
}

func TestStoreTokensAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage())

	if _, err := store.AddItem(ctx, "token-a", waxBouquet()); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	cart, err := store.Get(ctx, "token-b")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !cart.IsEmpty() {
		t.Fatalf("token-b cart should be empty, got %+v", cart.Items)
	}
}
