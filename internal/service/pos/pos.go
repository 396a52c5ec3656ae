package posservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"cafepos/internal/models"
	"cafepos/internal/notifier"
	"cafepos/internal/pos"
	serviceerrors "cafepos/internal/service"
	"cafepos/internal/store"
	"cafepos/pkg/lib/logger/sl"
)

type ProductProvider interface {
	ProductById(ctx context.Context, id int) (models.Product, error)
}

type OrderSink interface {
	SaveOrder(ctx context.Context, order models.Order) error
}

// CartView is what the cart panel renders: the lines, the running total
// and the badge count.
type CartView struct {
	Items     []models.LineItem `json:"items"`
	Total     int               `json:"total"`
	ItemCount int               `json:"item_count"`
}

// Session drives one cashier's cart and checkout. All mutations go
// through its mutex; the engine underneath is single-owner state.
type Session struct {
	log      *slog.Logger
	products ProductProvider
	sink     OrderSink
	notifier notifier.Notifier

	mu       sync.Mutex
	cart     *pos.Cart
	checkout *pos.Checkout
}

func New(log *slog.Logger, products ProductProvider, sink OrderSink, n notifier.Notifier) *Session {
	cart := pos.NewCart()
	return &Session{
		log:      log,
		products: products,
		sink:     sink,
		notifier: n,
		cart:     cart,
		checkout: pos.NewCheckout(cart, nil),
	}
}

// NewWithOrderNumber is New with the order numbering hook exposed, for
// tests and for callers that want collision-safe ids.
func NewWithOrderNumber(log *slog.Logger, products ProductProvider, sink OrderSink, n notifier.Notifier, orderNumber pos.OrderNumberFunc) *Session {
	cart := pos.NewCart()
	return &Session{
		log:      log,
		products: products,
		sink:     sink,
		notifier: n,
		cart:     cart,
		checkout: pos.NewCheckout(cart, orderNumber),
	}
}

func checkCtx(ctx context.Context, log *slog.Logger, op string) error {
	select {
	case <-ctx.Done():
		err := ctx.Err()
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

func (s *Session) view() CartView {
	return CartView{
		Items:     s.cart.Items(),
		Total:     s.cart.TotalAmount(),
		ItemCount: s.cart.ItemCount(),
	}
}

func (s *Session) ViewCart(ctx context.Context) (CartView, error) {
	const op = "service.pos.ViewCart"
	log := s.log.With("op", op)

	if err := checkCtx(ctx, log, op); err != nil {
		return CartView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(), nil
}

// AddProduct resolves the product and puts one unit into the cart.
func (s *Session) AddProduct(ctx context.Context, productId int) (CartView, error) {
	const op = "service.pos.AddProduct"
	log := s.log.With("op", op)

	if err := checkCtx(ctx, log, op); err != nil {
		return CartView{}, err
	}

	product, err := s.products.ProductById(ctx, productId)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("product not found", slog.Int("product_id", productId))
			return CartView{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrNotFound)
		}
		log.Error("Failed to look up product", sl.Err(err))
		return CartView{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.AddItem(product)
	return s.view(), nil
}

// SetQuantity overwrites a line's quantity; zero or less removes the
// line, unknown ids are a no-op.
func (s *Session) SetQuantity(ctx context.Context, productId int, quantity int) (CartView, error) {
	const op = "service.pos.SetQuantity"
	log := s.log.With("op", op)

	if err := checkCtx(ctx, log, op); err != nil {
		return CartView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetQuantity(productId, quantity)
	return s.view(), nil
}

func (s *Session) RemoveProduct(ctx context.Context, productId int) (CartView, error) {
	const op = "service.pos.RemoveProduct"
	log := s.log.With("op", op)

	if err := checkCtx(ctx, log, op); err != nil {
		return CartView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RemoveItem(productId)
	return s.view(), nil
}

func (s *Session) ClearCart(ctx context.Context) error {
	const op = "service.pos.ClearCart"
	log := s.log.With("op", op)

	if err := checkCtx(ctx, log, op); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	return nil
}

// OpenCheckout starts the checkout dialog. An empty cart is reported to
// the cashier and the flow stays idle.
func (s *Session) OpenCheckout(ctx context.Context) (models.CheckoutDraft, error) {
	const op = "service.pos.OpenCheckout"
	log := s.log.With("op", op)

	if err := checkCtx(ctx, log, op); err != nil {
		return models.CheckoutDraft{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkout.Open(); err != nil {
		if errors.Is(err, pos.ErrEmptyCart) {
			log.Warn("checkout opened on empty cart")
			s.notifier.Notify(ctx, notifier.Notification{
				Title:       "Cart is empty",
				Description: "Add products to the cart before checking out",
				Severity:    notifier.SeverityError,
			})
			return models.CheckoutDraft{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrEmptyCart)
		}
		log.Error("Failed to open checkout", sl.Err(err))
		return models.CheckoutDraft{}, fmt.Errorf("%s: %w", op, err)
	}

	draft, err := s.checkout.Draft()
	if err != nil {
		log.Error("Failed to read draft", sl.Err(err))
		return models.CheckoutDraft{}, fmt.Errorf("%s: %w", op, err)
	}
	return draft, nil
}

func (s *Session) UpdateDraft(ctx context.Context, draft models.CheckoutDraft) (models.CheckoutDraft, error) {
	const op = "service.pos.UpdateDraft"
	log := s.log.With("op", op)

	if err := checkCtx(ctx, log, op); err != nil {
		return models.CheckoutDraft{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkout.UpdateDraft(draft); err != nil {
		if errors.Is(err, pos.ErrCheckoutClosed) {
			log.Warn("draft update with no open checkout")
			return models.CheckoutDraft{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrCheckoutClosed)
		}
		log.Error("Failed to update draft", sl.Err(err))
		return models.CheckoutDraft{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.checkout.Draft()
	if err != nil {
		log.Error("Failed to read draft", sl.Err(err))
		return models.CheckoutDraft{}, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// ConfirmCheckout finalizes the sale, hands the order to the sink and
// notifies the cashier. The cart is reset by the engine on success.
func (s *Session) ConfirmCheckout(ctx context.Context) (models.Confirmation, error) {
	const op = "service.pos.ConfirmCheckout"
	log := s.log.With("op", op)

	if err := checkCtx(ctx, log, op); err != nil {
		return models.Confirmation{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	confirmation, err := s.checkout.Confirm()
	if err != nil {
		if errors.Is(err, pos.ErrEmptyCart) {
			log.Warn("checkout confirmed on empty cart")
			s.notifier.Notify(ctx, notifier.Notification{
				Title:       "Cart is empty",
				Description: "Add products to the cart before checking out",
				Severity:    notifier.SeverityError,
			})
			return models.Confirmation{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrEmptyCart)
		} else if errors.Is(err, pos.ErrCheckoutClosed) {
			log.Warn("confirm with no open checkout")
			return models.Confirmation{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrCheckoutClosed)
		}
		log.Error("Failed to confirm checkout", sl.Err(err))
		return models.Confirmation{}, fmt.Errorf("%s: %w", op, err)
	}

	order := models.Order{
		Number:        confirmation.OrderNumber,
		Items:         confirmation.Items,
		Total:         confirmation.Total,
		CustomerName:  confirmation.CustomerName,
		CustomerPhone: confirmation.CustomerPhone,
		PaymentMethod: confirmation.PaymentMethod,
		Status:        models.StatusPending,
		CreatedAt:     time.Now(),
	}
	if err := s.sink.SaveOrder(ctx, order); err != nil {
		// the sale is already final; the sink is an integration point,
		// losing it must not fail the confirmation
		log.Error("Failed to hand order to sink", sl.Err(err))
	}

	s.notifier.Notify(ctx, notifier.Notification{
		Title:       "Order placed",
		Description: fmt.Sprintf("Order %s has been created", confirmation.OrderNumber),
		Severity:    notifier.SeveritySuccess,
	})

	return confirmation, nil
}

// CancelCheckout drops the draft and keeps the cart as it was.
func (s *Session) CancelCheckout(ctx context.Context) error {
	const op = "service.pos.CancelCheckout"
	log := s.log.With("op", op)

	if err := checkCtx(ctx, log, op); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkout.Cancel(); err != nil {
		if errors.Is(err, pos.ErrCheckoutClosed) {
			log.Warn("cancel with no open checkout")
			return fmt.Errorf("%s: %w", op, serviceerrors.ErrCheckoutClosed)
		}
		log.Error("Failed to cancel checkout", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
