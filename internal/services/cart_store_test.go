package services_test

import (
	"testing"
	"time"

	"smartstore/internal/models"
	"smartstore/internal/repositories"
	"smartstore/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// countingNotifier records every broadcast so tests can verify the
// change-notification contract.
type countingNotifier struct {
	events []string
}

func (n *countingNotifier) Broadcast(event string) {
	n.events = append(n.events, event)
}

func newTestCartStore() (*services.CartStore, *repositories.MemoryKeyValueStore, *countingNotifier) {
	kv := repositories.NewMemoryKeyValueStore()
	notifier := &countingNotifier{}
	return services.NewCartStore(kv, notifier, "test_cart"), kv, notifier
}

func testProduct(id, name, price string) models.Product {
	return models.Product{
		ID:          id,
		Name:        name,
		Description: "test product",
		Price:       price,
		Category:    models.CategoryRobotVacuum,
		ImageURL:    "/images/" + id + ".jpg",
		Specifications: map[string]string{
			"color": "white",
		},
		Stock:     10,
		CreatedAt: time.Now(),
	}
}

func TestCartStore_EmptyWhenNothingStored(t *testing.T) {
	store, _, _ := newTestCartStore()

	cart := store.GetCart()
	assert.Empty(t, cart)
}

func TestCartStore_AddMergesByProductID(t *testing.T) {
	store, _, _ := newTestCartStore()
	p := testProduct("p1", "Robot Vacuum", "100.00")

	assert.NoError(t, store.AddToCart(p, 2))
	assert.NoError(t, store.AddToCart(p, 3))

	cart := store.GetCart()
	assert.Len(t, cart, 1)
	assert.Equal(t, "p1", cart[0].Product.ID)
	assert.Equal(t, 5, cart[0].Quantity)
}

func TestCartStore_UpdateQuantityZeroRemoves(t *testing.T) {
	store, _, _ := newTestCartStore()
	p := testProduct("p1", "Robot Vacuum", "100.00")

	assert.NoError(t, store.AddToCart(p, 1))
	assert.NoError(t, store.UpdateCartQuantity("p1", 0))
	assert.Empty(t, store.GetCart())

	// Negative quantities behave exactly like zero.
	assert.NoError(t, store.AddToCart(p, 1))
	assert.NoError(t, store.UpdateCartQuantity("p1", -5))
	assert.Empty(t, store.GetCart())
}

func TestCartStore_UpdateQuantityIsAbsoluteSet(t *testing.T) {
	store, _, _ := newTestCartStore()
	p := testProduct("p1", "Robot Vacuum", "100.00")

	assert.NoError(t, store.AddToCart(p, 2))
	assert.NoError(t, store.UpdateCartQuantity("p1", 7))

	cart := store.GetCart()
	assert.Len(t, cart, 1)
	assert.Equal(t, 7, cart[0].Quantity)
}

func TestCartStore_RemoveMissingIDIsNoOp(t *testing.T) {
	store, _, _ := newTestCartStore()
	p1 := testProduct("p1", "Robot Vacuum", "100.00")
	p2 := testProduct("p2", "Smart Plug", "19.90")

	assert.NoError(t, store.AddToCart(p1, 2))
	assert.NoError(t, store.AddToCart(p2, 1))

	before := store.GetCart()
	assert.NoError(t, store.RemoveFromCart("nonexistent"))
	assert.Equal(t, before, store.GetCart())
}

func TestCartStore_UpdateMissingIDIsNoOp(t *testing.T) {
	store, _, _ := newTestCartStore()
	p := testProduct("p1", "Robot Vacuum", "100.00")

	assert.NoError(t, store.AddToCart(p, 2))

	before := store.GetCart()
	assert.NoError(t, store.UpdateCartQuantity("nonexistent", 4))
	assert.Equal(t, before, store.GetCart())
}

func TestCartStore_InsertionOrderPreserved(t *testing.T) {
	store, _, _ := newTestCartStore()
	p1 := testProduct("p1", "Robot Vacuum", "100.00")
	p2 := testProduct("p2", "Smart Plug", "19.90")

	assert.NoError(t, store.AddToCart(p1, 1))
	assert.NoError(t, store.AddToCart(p2, 1))
	// Updating the first item must not move it to the end.
	assert.NoError(t, store.UpdateCartQuantity("p1", 5))

	cart := store.GetCart()
	assert.Len(t, cart, 2)
	assert.Equal(t, "p1", cart[0].Product.ID)
	assert.Equal(t, 5, cart[0].Quantity)
	assert.Equal(t, "p2", cart[1].Product.ID)
}

func TestCartStore_RemoveFromCart(t *testing.T) {
	store, _, _ := newTestCartStore()
	p1 := testProduct("p1", "Robot Vacuum", "100.00")
	p2 := testProduct("p2", "Smart Plug", "19.90")

	assert.NoError(t, store.AddToCart(p1, 1))
	assert.NoError(t, store.AddToCart(p2, 1))
	assert.NoError(t, store.RemoveFromCart("p1"))

	cart := store.GetCart()
	assert.Len(t, cart, 1)
	assert.Equal(t, "p2", cart[0].Product.ID)
}

func TestCartStore_ClearCart(t *testing.T) {
	store, kv, _ := newTestCartStore()
	p := testProduct("p1", "Robot Vacuum", "100.00")

	assert.NoError(t, store.AddToCart(p, 3))
	assert.NoError(t, store.ClearCart())
	assert.Empty(t, store.GetCart())

	// Clear is a single storage reset, not an item-by-item removal.
	_, ok, err := kv.Get("test_cart")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestCartStore_CorruptedStorageReadsAsEmpty(t *testing.T) {
	store, kv, _ := newTestCartStore()

	assert.NoError(t, kv.Set("test_cart", "{not valid json]]"))
	assert.NotPanics(t, func() {
		assert.Empty(t, store.GetCart())
	})
}

func TestCartStore_SnapshotRoundTripsAllFields(t *testing.T) {
	store, _, _ := newTestCartStore()
	p := testProduct("p1", "Robot Vacuum", "449.00")
	p.Images = []string{"/images/a.jpg", "/images/b.jpg"}
	p.Specifications = map[string]string{"suction": "4000Pa", "runtime": "180min"}
	p.Featured = true

	assert.NoError(t, store.AddToCart(p, 1))

	got := store.GetCart()[0].Product
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.Price, got.Price)
	assert.Equal(t, p.Images, got.Images)
	assert.Equal(t, p.Specifications, got.Specifications)
	assert.Equal(t, p.Featured, got.Featured)
}

func TestCartTotalAndItemCount(t *testing.T) {
	store, _, _ := newTestCartStore()
	p1 := testProduct("p1", "Robot Vacuum", "100.00")
	p2 := testProduct("p2", "Smart Plug", "50.50")

	assert.NoError(t, store.AddToCart(p1, 2))
	assert.NoError(t, store.AddToCart(p2, 1))

	cart := store.GetCart()
	total := services.CartTotal(cart)
	assert.True(t, total.Equal(decimal.RequireFromString("250.50")), "expected 250.50, got %s", total)

	// Item count sums quantities, it does not count lines.
	assert.Equal(t, 3, services.CartItemCount(cart))
}

func TestCartTotal_MalformedPriceContributesNothing(t *testing.T) {
	cart := []models.CartItem{
		{Product: testProduct("p1", "Robot Vacuum", "100.00"), Quantity: 1},
		{Product: testProduct("p2", "Broken", "not-a-price"), Quantity: 3},
	}

	total := services.CartTotal(cart)
	assert.True(t, total.Equal(decimal.RequireFromString("100.00")), "expected 100.00, got %s", total)
}

func TestCartStore_NotificationContract(t *testing.T) {
	store, _, notifier := newTestCartStore()
	p := testProduct("p1", "Robot Vacuum", "100.00")

	// Pure reads never broadcast.
	cart := store.GetCart()
	services.CartTotal(cart)
	services.CartItemCount(cart)
	assert.Empty(t, notifier.events)

	// Every mutator broadcasts exactly once per call, no-ops included.
	assert.NoError(t, store.AddToCart(p, 2))
	assert.Len(t, notifier.events, 1)

	assert.NoError(t, store.UpdateCartQuantity("p1", 4))
	assert.Len(t, notifier.events, 2)

	assert.NoError(t, store.UpdateCartQuantity("nonexistent", 4))
	assert.Len(t, notifier.events, 3)

	assert.NoError(t, store.RemoveFromCart("nonexistent"))
	assert.Len(t, notifier.events, 4)

	assert.NoError(t, store.RemoveFromCart("p1"))
	assert.Len(t, notifier.events, 5)

	assert.NoError(t, store.ClearCart())
	assert.Len(t, notifier.events, 6)

	for _, event := range notifier.events {
		assert.Equal(t, services.CartUpdatedEvent, event)
	}
}

// Two stores over the same key do read-modify-write without coordination;
// the last writer to persist wins. This documents the boundary condition,
// it is not behavior to rely on.
func TestCartStore_ConcurrentInstancesLastWriterWins(t *testing.T) {
	kv := repositories.NewMemoryKeyValueStore()
	notifier := &countingNotifier{}
	first := services.NewCartStore(kv, notifier, "shared_cart")
	second := services.NewCartStore(kv, notifier, "shared_cart")

	p1 := testProduct("p1", "Robot Vacuum", "100.00")
	p2 := testProduct("p2", "Smart Plug", "19.90")

	assert.NoError(t, first.AddToCart(p1, 1))
	// Both instances now see p1; the second's write includes it.
	assert.NoError(t, second.AddToCart(p2, 1))
	assert.Len(t, first.GetCart(), 2)

	// A stale instance that read before a clear resurrects the old state.
	cartBeforeClear := second.GetCart()
	assert.NoError(t, first.ClearCart())
	assert.NoError(t, second.AddToCart(p1, 1))
	assert.NotEqual(t, cartBeforeClear, second.GetCart())
	assert.Len(t, second.GetCart(), 1)
}
