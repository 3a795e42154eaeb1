package handlers

import (
	"log"
	"strings"

	"smartstore/internal/repositories"
	"smartstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartProfileHeader names the header carrying the client profile the cart
// is scoped to. Each profile gets its own storage key, the way each browser
// profile gets its own local storage.
const CartProfileHeader = "X-Cart-Profile"

// CartHandler handles HTTP requests for the shopping cart.
type CartHandler struct {
	kv       repositories.KeyValueStore
	notifier services.Notifier
	products *services.ProductService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(kv repositories.KeyValueStore, notifier services.Notifier, products *services.ProductService) *CartHandler {
	return &CartHandler{
		kv:       kv,
		notifier: notifier,
		products: products,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Delete("/", h.HandleClearCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:productId", h.HandleUpdateItem)
	cartRoutes.Delete("/items/:productId", h.HandleRemoveItem)
}

// cartKeyFor maps the requesting client profile to its storage key. Both
// the cart surface and the checkout flow must go through this mapping so
// they always address the same cart.
func cartKeyFor(c *fiber.Ctx) string {
	if profile := c.Get(CartProfileHeader); profile != "" {
		return services.DefaultCartKey + ":" + profile
	}
	return services.DefaultCartKey
}

// storeFor builds the CartStore bound to the requesting client profile.
func (h *CartHandler) storeFor(c *fiber.Ctx) *services.CartStore {
	return services.NewCartStore(h.kv, h.notifier, cartKeyFor(c))
}

// HandleGetCart returns the cart with its derived totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart := h.storeFor(c).GetCart()
	return c.JSON(fiber.Map{
		"items":        cart,
		"total_amount": services.CartTotal(cart).StringFixed(2),
		"item_count":   services.CartItemCount(cart),
	})
}

// HandleAddItem adds a product to the cart, snapshotting the product as it
// looks in the catalog right now.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if req.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "product_id is required",
		})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "quantity must be at least 1",
		})
	}

	product, err := h.products.GetProductByID(req.ProductID)
	if err != nil {
		log.Printf("Error getting product %s for cart add: %v", req.ProductID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}

	store := h.storeFor(c)
	if err := store.AddToCart(*product, req.Quantity); err != nil {
		log.Printf("Error adding product %s to cart: %v", req.ProductID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add item to cart",
			"error":   err.Error(),
		})
	}

	cart := store.GetCart()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"items":        cart,
		"total_amount": services.CartTotal(cart).StringFixed(2),
		"item_count":   services.CartItemCount(cart),
	})
}

// HandleUpdateItem sets the absolute quantity for a cart line. A quantity
// of zero or less removes the line.
func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	productID := c.Params("productId")

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	store := h.storeFor(c)
	if err := store.UpdateCartQuantity(productID, req.Quantity); err != nil {
		log.Printf("Error updating cart quantity for %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart item",
			"error":   err.Error(),
		})
	}

	cart := store.GetCart()
	return c.JSON(fiber.Map{
		"items":        cart,
		"total_amount": services.CartTotal(cart).StringFixed(2),
		"item_count":   services.CartItemCount(cart),
	})
}

// HandleRemoveItem removes a cart line. Unknown product ids are a no-op.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	productID := c.Params("productId")

	store := h.storeFor(c)
	if err := store.RemoveFromCart(productID); err != nil {
		log.Printf("Error removing product %s from cart: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove item from cart",
			"error":   err.Error(),
		})
	}

	cart := store.GetCart()
	return c.JSON(fiber.Map{
		"items":        cart,
		"total_amount": services.CartTotal(cart).StringFixed(2),
		"item_count":   services.CartItemCount(cart),
	})
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	if err := h.storeFor(c).ClearCart(); err != nil {
		log.Printf("Error clearing cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not clear cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}
