package summaryservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"cafepos/internal/models"
	serviceerrors "cafepos/internal/service"
	"cafepos/pkg/lib/logger/sl"
)

const recentOrderLimit = 5

type OrderStorage interface {
	ListOrders(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
}

// TopProduct is one row of the best-sellers card.
type TopProduct struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Revenue  int    `json:"revenue"`
}

// Summary backs the dashboard cards: today's revenue and order count,
// the status breakdown, best sellers and the latest orders.
type Summary struct {
	Revenue      int                        `json:"revenue"`
	OrderCount   int                        `json:"order_count"`
	StatusCounts map[models.OrderStatus]int `json:"status_counts"`
	TopProducts  []TopProduct               `json:"top_products"`
	RecentOrders []models.Order             `json:"recent_orders"`
}

type SummaryService struct {
	log     *slog.Logger
	storage OrderStorage
	now     func() time.Time
}

func New(log *slog.Logger, storage OrderStorage) *SummaryService {
	return &SummaryService{
		log:     log,
		storage: storage,
		now:     time.Now,
	}
}

// NewWithClock is New with an injectable clock for tests.
func NewWithClock(log *slog.Logger, storage OrderStorage, now func() time.Time) *SummaryService {
	return &SummaryService{
		log:     log,
		storage: storage,
		now:     now,
	}
}

// Today aggregates the orders created since local midnight.
func (s *SummaryService) Today(ctx context.Context) (Summary, error) {
	const op = "service.summary.Today"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		err := ctx.Err()
		if errors.Is(err, context.Canceled) {
			log.Warn("context canceled", sl.Err(err))
			return Summary{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrContextCanceled)
		} else if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("deadline exceeded", sl.Err(err))
			return Summary{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrDeadlineExceeded)
		}
		log.Error("unexpected error", sl.Err(err))
		return Summary{}, fmt.Errorf("%s: %w", op, err)
	default:
	}

	orders, err := s.storage.ListOrders(ctx, "")
	if err != nil {
		log.Error("Failed to list orders", sl.Err(err))
		return Summary{}, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	summary := Summary{
		StatusCounts: make(map[models.OrderStatus]int),
		RecentOrders: []models.Order{},
	}
	sold := make(map[string]*TopProduct)

	for _, order := range orders {
		if order.CreatedAt.Before(midnight) {
			continue
		}
		summary.Revenue += order.Total
		summary.OrderCount++
		summary.StatusCounts[order.Status]++
		if len(summary.RecentOrders) < recentOrderLimit {
			summary.RecentOrders = append(summary.RecentOrders, order)
		}
		for _, item := range order.Items {
			if _, ok := sold[item.Name]; !ok {
				sold[item.Name] = &TopProduct{Name: item.Name}
			}
			sold[item.Name].Quantity += item.Quantity
			sold[item.Name].Revenue += item.Subtotal()
		}
	}

	summary.TopProducts = make([]TopProduct, 0, len(sold))
	for _, tp := range sold {
		summary.TopProducts = append(summary.TopProducts, *tp)
	}
	sort.Slice(summary.TopProducts, func(i, j int) bool {
		if summary.TopProducts[i].Quantity != summary.TopProducts[j].Quantity {
			return summary.TopProducts[i].Quantity > summary.TopProducts[j].Quantity
		}
		return summary.TopProducts[i].Name < summary.TopProducts[j].Name
	})

	return summary, nil
}
