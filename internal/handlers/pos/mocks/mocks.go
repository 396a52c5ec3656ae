package mocks

import (
	"context"

	"cafepos/internal/models"
	posservice "cafepos/internal/service/pos"

	"github.com/stretchr/testify/mock"
)

type Service struct {
	mock.Mock
}

func (m *Service) ViewCart(ctx context.Context) (posservice.CartView, error) {
	args := m.Called(ctx)
	return args.Get(0).(posservice.CartView), args.Error(1)
}

func (m *Service) AddProduct(ctx context.Context, productId int) (posservice.CartView, error) {
	args := m.Called(ctx, productId)
	return args.Get(0).(posservice.CartView), args.Error(1)
}

func (m *Service) SetQuantity(ctx context.Context, productId int, quantity int) (posservice.CartView, error) {
	args := m.Called(ctx, productId, quantity)
	return args.Get(0).(posservice.CartView), args.Error(1)
}

func (m *Service) RemoveProduct(ctx context.Context, productId int) (posservice.CartView, error) {
	args := m.Called(ctx, productId)
	return args.Get(0).(posservice.CartView), args.Error(1)
}

func (m *Service) ClearCart(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *Service) OpenCheckout(ctx context.Context) (models.CheckoutDraft, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.CheckoutDraft), args.Error(1)
}

func (m *Service) UpdateDraft(ctx context.Context, draft models.CheckoutDraft) (models.CheckoutDraft, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(models.CheckoutDraft), args.Error(1)
}

func (m *Service) ConfirmCheckout(ctx context.Context) (models.Confirmation, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Confirmation), args.Error(1)
}

func (m *Service) CancelCheckout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
