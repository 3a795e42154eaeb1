package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"smartstore/internal/models"
	"smartstore/internal/repositories"
	"smartstore/pkg/rabbitmq"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderEventPublisher publishes order lifecycle events to the message
// broker. *rabbitmq.Client satisfies it.
type OrderEventPublisher interface {
	Publish(queue, eventType string, body []byte) error
}

// OrderService handles business logic related to orders. It is the
// submission endpoint the checkout flow hands a cart-derived draft to; on
// success the caller is expected to clear the cart.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	publisher   OrderEventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// Submit validates and persists an order draft. Each item is re-priced
// from the catalog and checked against available stock; the total is
// recomputed server-side rather than trusted from the draft. On success an
// order.created event is published.
func (s *OrderService) Submit(draft models.Order) (*models.Order, error) {
	total := decimal.Zero
	processedItems := make([]models.OrderItem, 0, len(draft.Items))

	for _, item := range draft.Items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s not found: %w", item.ProductID, err)
		}
		if product.Stock < item.Quantity {
			return nil, fmt.Errorf("insufficient stock for product %s (requested: %d, available: %d)", product.Name, item.Quantity, product.Stock)
		}

		price, err := decimal.NewFromString(product.Price)
		if err != nil {
			return nil, fmt.Errorf("product %s has malformed price %q: %w", product.ID, product.Price, err)
		}

		processedItems = append(processedItems, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			Price:       product.Price,
		})
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	newOrder := &models.Order{
		ID:              uuid.New().String(),
		CustomerName:    draft.CustomerName,
		CustomerEmail:   draft.CustomerEmail,
		CustomerPhone:   draft.CustomerPhone,
		ShippingAddress: draft.ShippingAddress,
		Notes:           draft.Notes,
		Items:           processedItems,
		TotalAmount:     total.StringFixed(2),
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publishOrderCreated(newOrder)

	return newOrder, nil
}

// publishOrderCreated emits the order.created event. Publish failures are
// logged, not returned: the order is already persisted and the broker will
// catch up when it recovers.
func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.publisher == nil {
		log.Println("Order event publisher is not configured. Skipping message publication.")
		return
	}

	event := map[string]interface{}{
		"order_id":       order.ID,
		"customer_email": order.CustomerEmail,
		"status":         order.Status,
		"total_amount":   order.TotalAmount,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event to JSON: %v", err)
		return
	}

	if err := s.publisher.Publish(rabbitmq.OrderQueue, "order.created", body); err != nil {
		log.Printf("Warning: Failed to publish order created event for order %s: %v", order.ID, err)
	} else {
		log.Printf("Successfully published order created event for order %s", order.ID)
	}
}

// UpdateOrderStatus updates the status of an existing order.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	validStatuses := map[string]bool{
		models.OrderStatusPending:    true,
		models.OrderStatusProcessing: true,
		models.OrderStatusCompleted:  true,
		models.OrderStatusCancelled:  true,
	}
	if _, ok := validStatuses[status]; !ok {
		return fmt.Errorf("invalid order status: %s", status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}
	return nil
}
