package mocks

import (
	"context"

	"cafepos/internal/models"
	"cafepos/internal/notifier"

	"github.com/stretchr/testify/mock"
)

type Products struct {
	mock.Mock
}

func (m *Products) ProductById(ctx context.Context, id int) (models.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Product), args.Error(1)
}

type Sink struct {
	mock.Mock
}

func (m *Sink) SaveOrder(ctx context.Context, order models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

type Notifier struct {
	mock.Mock
}

func (m *Notifier) Notify(ctx context.Context, n notifier.Notification) {
	m.Called(ctx, n)
}
