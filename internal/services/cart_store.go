package services

import (
	"encoding/json"
	"fmt"

	"smartstore/internal/models"
	"smartstore/internal/repositories"

	"github.com/shopspring/decimal"
)

// CartUpdatedEvent is broadcast after every cart mutation.
const CartUpdatedEvent = "cart.updated"

// DefaultCartKey is the storage key used when a profile has no explicit one.
const DefaultCartKey = "smarthome_cart"

// Notifier broadcasts process-local change events to subscribed views.
type Notifier interface {
	Broadcast(event string)
}

// CartStore is the sole authority over one client profile's persisted cart.
// Items hold the product snapshot captured at add-time; price and stock are
// never re-read from the live catalog. Two stores sharing a key do
// read-modify-write without coordination, so the last writer to persist
// wins; callers that need stronger guarantees must serialize access
// themselves.
type CartStore struct {
	store    repositories.KeyValueStore
	notifier Notifier
	key      string
}

// NewCartStore creates a CartStore persisting under the given key.
func NewCartStore(store repositories.KeyValueStore, notifier Notifier, key string) *CartStore {
	if key == "" {
		key = DefaultCartKey
	}
	return &CartStore{
		store:    store,
		notifier: notifier,
		key:      key,
	}
}

// GetCart returns the current cart in insertion order. A missing entry or a
// blob that fails to deserialize is treated as an empty cart, never an
// error.
func (s *CartStore) GetCart() []models.CartItem {
	raw, ok, err := s.store.Get(s.key)
	if err != nil || !ok {
		return []models.CartItem{}
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []models.CartItem{}
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items
}

// AddToCart adds quantity units of product to the cart. An existing item
// for the same product id has its quantity incremented; otherwise a new
// item is appended, preserving insertion order. Stock is not checked here.
func (s *CartStore) AddToCart(product models.Product, quantity int) error {
	cart := s.GetCart()

	merged := false
	for i := range cart {
		if cart[i].Product.ID == product.ID {
			cart[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart = append(cart, models.CartItem{Product: product, Quantity: quantity})
	}

	if err := s.save(cart); err != nil {
		return err
	}
	s.notifier.Broadcast(CartUpdatedEvent)
	return nil
}

// RemoveFromCart removes the item for productID. Removing an id that is not
// in the cart is a no-op, not an error.
func (s *CartStore) RemoveFromCart(productID string) error {
	cart := s.GetCart()

	filtered := make([]models.CartItem, 0, len(cart))
	for _, item := range cart {
		if item.Product.ID != productID {
			filtered = append(filtered, item)
		}
	}

	if err := s.save(filtered); err != nil {
		return err
	}
	s.notifier.Broadcast(CartUpdatedEvent)
	return nil
}

// UpdateCartQuantity sets the quantity for productID to the given absolute
// value. A quantity of zero or less removes the item entirely; an unknown
// id is a no-op. Either way the change event fires once.
func (s *CartStore) UpdateCartQuantity(productID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveFromCart(productID)
	}

	cart := s.GetCart()
	for i := range cart {
		if cart[i].Product.ID == productID {
			cart[i].Quantity = quantity
			break
		}
	}

	if err := s.save(cart); err != nil {
		return err
	}
	s.notifier.Broadcast(CartUpdatedEvent)
	return nil
}

// ClearCart empties the cart with a single storage reset.
func (s *CartStore) ClearCart() error {
	if err := s.store.Delete(s.key); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	s.notifier.Broadcast(CartUpdatedEvent)
	return nil
}

func (s *CartStore) save(cart []models.CartItem) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}
	if err := s.store.Set(s.key, string(raw)); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// CartTotal sums price times quantity over all items, using the price
// string snapshotted at add-time. Items whose price does not parse
// contribute nothing. Pure: no persistence, no notification.
func CartTotal(cart []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range cart {
		price, err := decimal.NewFromString(item.Product.Price)
		if err != nil {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// CartItemCount sums quantities across all items, which is distinct from
// the number of items: two items with quantities 3 and 2 count as 5.
func CartItemCount(cart []models.CartItem) int {
	count := 0
	for _, item := range cart {
		count += item.Quantity
	}
	return count
}
