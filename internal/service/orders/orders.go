package orderservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cafepos/internal/models"
	serviceerrors "cafepos/internal/service"
	"cafepos/internal/store"
	"cafepos/pkg/lib/logger/sl"
)

type OrderStorage interface {
	ListOrders(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	OrderByNumber(ctx context.Context, number string) (models.Order, error)
	UpdateOrderStatus(ctx context.Context, number string, status models.OrderStatus) (models.Order, error)
}

type OrderService struct {
	log     *slog.Logger
	storage OrderStorage
}

func New(log *slog.Logger, storage OrderStorage) *OrderService {
	return &OrderService{
		log:     log,
		storage: storage,
	}
}

func (o *OrderService) checkCtx(ctx context.Context, op string) error {
	select {
	case <-ctx.Done():
		err := ctx.Err()
		log := o.log.With("op", op)
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

// ListOrders returns orders newest first, optionally filtered by status.
func (o *OrderService) ListOrders(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	const op = "service.orders.ListOrders"
	log := o.log.With("op", op)

	if err := o.checkCtx(ctx, op); err != nil {
		return nil, err
	}
	if status != "" && !status.Valid() {
		log.Warn("unknown status", slog.String("status", string(status)))
		return nil, fmt.Errorf("%s: %w", op, serviceerrors.ErrInvalidInput)
	}

	orders, err := o.storage.ListOrders(ctx, status)
	if err != nil {
		log.Error("Failed to list orders", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return orders, nil
}

func (o *OrderService) GetOrder(ctx context.Context, number string) (models.Order, error) {
	const op = "service.orders.GetOrder"
	log := o.log.With("op", op)

	if err := o.checkCtx(ctx, op); err != nil {
		return models.Order{}, err
	}

	order, err := o.storage.OrderByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("order not found", slog.String("number", number))
			return models.Order{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrNotFound)
		}
		log.Error("Failed to get order", sl.Err(err))
		return models.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	return order, nil
}

// AdvanceStatus moves an order one step along
// pending -> preparing -> ready -> completed.
func (o *OrderService) AdvanceStatus(ctx context.Context, number string, status models.OrderStatus) (models.Order, error) {
	const op = "service.orders.AdvanceStatus"
	log := o.log.With("op", op)

	if err := o.checkCtx(ctx, op); err != nil {
		return models.Order{}, err
	}
	if !status.Valid() {
		log.Warn("unknown status", slog.String("status", string(status)))
		return models.Order{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrInvalidInput)
	}

	order, err := o.storage.UpdateOrderStatus(ctx, number, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("order not found", slog.String("number", number))
			return models.Order{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrNotFound)
		} else if errors.Is(err, store.ErrBadTransition) {
			log.Warn("rejected status transition",
				slog.String("number", number), slog.String("status", string(status)))
			return models.Order{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrBadTransition)
		}
		log.Error("Failed to update order status", sl.Err(err))
		return models.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("order status updated",
		slog.String("number", number), slog.String("status", string(status)))
	return order, nil
}
