package memory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"cafepos/internal/models"
	"cafepos/internal/store"
)

// Storage keeps the whole back office in process memory: the product
// catalog and the order log. Nothing survives a restart.
type Storage struct {
	log *slog.Logger

	mu       sync.Mutex
	products []models.Product
	orders   []models.Order
	nextId   int
}

func New(log *slog.Logger) *Storage {
	return &Storage{
		log:    log,
		nextId: 1,
	}
}

// NewSeeded returns a storage preloaded with the demo menu.
func NewSeeded(log *slog.Logger) *Storage {
	s := New(log)
	for _, p := range seedProducts() {
		s.products = append(s.products, p)
		if p.Id >= s.nextId {
			s.nextId = p.Id + 1
		}
	}
	return s
}

func seedProducts() []models.Product {
	return []models.Product{
		{Id: 1, Name: "Black coffee", Description: "Traditional strong black coffee", Price: 25000, Category: models.CategoryCoffee, IsActive: true},
		{Id: 2, Name: "Milk coffee", Description: "Black coffee with condensed milk", Price: 30000, Category: models.CategoryCoffee, IsActive: true},
		{Id: 3, Name: "Cappuccino", Description: "Espresso with steamed milk and foam", Price: 45000, Category: models.CategoryCoffee, IsActive: true},
		{Id: 4, Name: "Latte", Description: "Espresso with plenty of steamed milk", Price: 50000, Category: models.CategoryCoffee, IsActive: true},
		{Id: 5, Name: "Milk tea", Description: "Milk tea with tapioca pearls", Price: 35000, Category: models.CategoryTea, IsActive: true},
		{Id: 6, Name: "Peach tea", Description: "Black tea with peach slices", Price: 40000, Category: models.CategoryTea, IsActive: true},
		{Id: 7, Name: "Croissant", Description: "Butter croissant", Price: 25000, Category: models.CategoryPastry, IsActive: true},
		{Id: 8, Name: "Tiramisu", Description: "Classic tiramisu slice", Price: 55000, Category: models.CategoryPastry, IsActive: true},
	}
}

func (s *Storage) checkCtx(ctx context.Context, op string) error {
	select {
	case <-ctx.Done():
		s.log.With("op", op).Warn("Context is over")
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
		return nil
	}
}

// ListProducts returns products matching the category (empty means all)
// and a case-insensitive name substring (empty means all), in catalog
// order.
func (s *Storage) ListProducts(ctx context.Context, category models.Category, search string) ([]models.Product, error) {
	const op = "store.memory.ListProducts"
	if err := s.checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(search)
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && p.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Storage) ProductById(ctx context.Context, id int) (models.Product, error) {
	const op = "store.memory.ProductById"
	if err := s.checkCtx(ctx, op); err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.Id == id {
			return p, nil
		}
	}
	return models.Product{}, fmt.Errorf("%s: %w", op, store.ErrNotFound)
}

// CreateProduct assigns the next free id and appends the product.
func (s *Storage) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	const op = "store.memory.CreateProduct"
	if err := s.checkCtx(ctx, op); err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product.Id = s.nextId
	s.nextId++
	s.products = append(s.products, product)
	return product, nil
}

func (s *Storage) UpdateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	const op = "store.memory.UpdateProduct"
	if err := s.checkCtx(ctx, op); err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].Id == product.Id {
			s.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, fmt.Errorf("%s: %w", op, store.ErrNotFound)
}

func (s *Storage) DeleteProduct(ctx context.Context, id int) error {
	const op = "store.memory.DeleteProduct"
	if err := s.checkCtx(ctx, op); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].Id == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s: %w", op, store.ErrNotFound)
}

// SaveOrder appends a confirmed order to the log.
func (s *Storage) SaveOrder(ctx context.Context, order models.Order) error {
	const op = "store.memory.SaveOrder"
	if err := s.checkCtx(ctx, op); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, order)
	return nil
}

// ListOrders returns orders newest first, optionally filtered by status.
func (s *Storage) ListOrders(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	const op = "store.memory.ListOrders"
	if err := s.checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		if status != "" && s.orders[i].Status != status {
			continue
		}
		out = append(out, s.orders[i])
	}
	return out, nil
}

func (s *Storage) OrderByNumber(ctx context.Context, number string) (models.Order, error) {
	const op = "store.memory.OrderByNumber"
	if err := s.checkCtx(ctx, op); err != nil {
		return models.Order{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.Number == number {
			return o, nil
		}
	}
	return models.Order{}, fmt.Errorf("%s: %w", op, store.ErrNotFound)
}

// UpdateOrderStatus moves an order along the pipeline. Only the next
// status in pending -> preparing -> ready -> completed is accepted;
// completion stamps CompletedAt.
func (s *Storage) UpdateOrderStatus(ctx context.Context, number string, status models.OrderStatus) (models.Order, error) {
	const op = "store.memory.UpdateOrderStatus"
	if err := s.checkCtx(ctx, op); err != nil {
		return models.Order{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].Number != number {
			continue
		}
		next, ok := s.orders[i].Status.Next()
		if !ok || next != status {
			return models.Order{}, fmt.Errorf("%s: %w", op, store.ErrBadTransition)
		}
		s.orders[i].Status = status
		if status == models.StatusCompleted {
			now := time.Now()
			s.orders[i].CompletedAt = &now
		}
		return s.orders[i], nil
	}
	return models.Order{}, fmt.Errorf("%s: %w", op, store.ErrNotFound)
}
