package mocks

import (
	"context"

	"cafepos/internal/models"

	"github.com/stretchr/testify/mock"
)

type Storage struct {
	mock.Mock
}

func (m *Storage) ListProducts(ctx context.Context, category models.Category, search string) ([]models.Product, error) {
	args := m.Called(ctx, category, search)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *Storage) ProductById(ctx context.Context, id int) (models.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *Storage) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *Storage) UpdateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *Storage) DeleteProduct(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
