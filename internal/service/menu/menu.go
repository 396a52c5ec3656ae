package menuservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cafepos/internal/models"
	serviceerrors "cafepos/internal/service"
	"cafepos/internal/store"
	"cafepos/pkg/lib/logger/sl"
)

type ProductStorage interface {
	ListProducts(ctx context.Context, category models.Category, search string) ([]models.Product, error)
	ProductById(ctx context.Context, id int) (models.Product, error)
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	UpdateProduct(ctx context.Context, product models.Product) (models.Product, error)
	DeleteProduct(ctx context.Context, id int) error
}

type MenuService struct {
	log     *slog.Logger
	storage ProductStorage
}

func New(log *slog.Logger, storage ProductStorage) *MenuService {
	return &MenuService{
		log:     log,
		storage: storage,
	}
}

func (m *MenuService) checkCtx(ctx context.Context, op string) error {
	select {
	case <-ctx.Done():
		err := ctx.Err()
		log := m.log.With("op", op)
		if errors.Is(err, context.Canceled) {
			log.Warn("context canceled", sl.Err(err))
			return fmt.Errorf("%s: %w", op, serviceerrors.ErrContextCanceled)
		} else if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("deadline exceeded", sl.Err(err))
			return fmt.Errorf("%s: %w", op, serviceerrors.ErrDeadlineExceeded)
		}
		log.Error("unexpected error", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	default:
		return nil
	}
}

// ListProducts filters by category (empty means all) and by a
// case-insensitive name substring.
func (m *MenuService) ListProducts(ctx context.Context, category models.Category, search string) ([]models.Product, error) {
	const op = "service.menu.ListProducts"
	log := m.log.With("op", op)

	if err := m.checkCtx(ctx, op); err != nil {
		return nil, err
	}
	if category != "" && !category.Valid() {
		log.Warn("unknown category", slog.String("category", string(category)))
		return nil, fmt.Errorf("%s: %w", op, serviceerrors.ErrInvalidInput)
	}

	products, err := m.storage.ListProducts(ctx, category, search)
	if err != nil {
		log.Error("Failed to list products", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return products, nil
}

func (m *MenuService) GetProduct(ctx context.Context, id int) (models.Product, error) {
	const op = "service.menu.GetProduct"
	log := m.log.With("op", op)

	if err := m.checkCtx(ctx, op); err != nil {
		return models.Product{}, err
	}

	product, err := m.storage.ProductById(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("product not found", slog.Int("id", id))
			return models.Product{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrNotFound)
		}
		log.Error("Failed to get product", sl.Err(err))
		return models.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return product, nil
}

func validateProduct(product models.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return serviceerrors.ErrInvalidInput
	}
	if product.Price < 0 {
		return serviceerrors.ErrInvalidInput
	}
	if !product.Category.Valid() {
		return serviceerrors.ErrInvalidInput
	}
	return nil
}

// CreateProduct adds a menu entry. Name, a non-negative price and a
// known category are required, mirroring the admin form.
func (m *MenuService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	const op = "service.menu.CreateProduct"
	log := m.log.With("op", op)

	if err := m.checkCtx(ctx, op); err != nil {
		return models.Product{}, err
	}
	if err := validateProduct(product); err != nil {
		log.Warn("rejected product input", slog.String("name", product.Name))
		return models.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := m.storage.CreateProduct(ctx, product)
	if err != nil {
		log.Error("Failed to create product", sl.Err(err))
		return models.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("product created", slog.Int("id", created.Id), slog.String("name", created.Name))
	return created, nil
}

func (m *MenuService) UpdateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	const op = "service.menu.UpdateProduct"
	log := m.log.With("op", op)

	if err := m.checkCtx(ctx, op); err != nil {
		return models.Product{}, err
	}
	if err := validateProduct(product); err != nil {
		log.Warn("rejected product input", slog.Int("id", product.Id))
		return models.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := m.storage.UpdateProduct(ctx, product)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("product not found", slog.Int("id", product.Id))
			return models.Product{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrNotFound)
		}
		log.Error("Failed to update product", sl.Err(err))
		return models.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

func (m *MenuService) DeleteProduct(ctx context.Context, id int) error {
	const op = "service.menu.DeleteProduct"
	log := m.log.With("op", op)

	if err := m.checkCtx(ctx, op); err != nil {
		return err
	}

	if err := m.storage.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("product not found", slog.Int("id", id))
			return fmt.Errorf("%s: %w", op, serviceerrors.ErrNotFound)
		}
		log.Error("Failed to delete product", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("product deleted", slog.Int("id", id))
	return nil
}
