package posservice_test

import (
	"context"
	"testing"
	"time"

	"cafepos/internal/models"
	"cafepos/internal/notifier"
	serviceerrors "cafepos/internal/service"
	posservice "cafepos/internal/service/pos"
	"cafepos/internal/service/pos/mocks"
	"cafepos/internal/store"
	"cafepos/pkg/lib/logger/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	blackCoffee = models.Product{Id: 1, Name: "Black coffee", Price: 25000, Category: models.CategoryCoffee, IsActive: true}
	cappuccino  = models.Product{Id: 3, Name: "Cappuccino", Price: 45000, Category: models.CategoryCoffee, IsActive: true}
)

type sessionDeps struct {
	products *mocks.Products
	sink     *mocks.Sink
	notifier *mocks.Notifier
}

func newTestSession(t *testing.T) (*posservice.Session, sessionDeps) {
	t.Helper()
	deps := sessionDeps{
		products: new(mocks.Products),
		sink:     new(mocks.Sink),
		notifier: new(mocks.Notifier),
	}
	session := posservice.NewWithOrderNumber(
		slogdiscard.NewDiscardLogger(),
		deps.products,
		deps.sink,
		deps.notifier,
		func() string { return "#123456" },
	)
	return session, deps
}

func TestSession_AddProduct(t *testing.T) {
	tests := []struct {
		name      string
		productId int
		setupMock func(p *mocks.Products)
		wantTotal int
		wantErr   error
	}{
		{
			name:      "Success",
			productId: 1,
			setupMock: func(p *mocks.Products) {
				p.On("ProductById", mock.Anything, 1).Return(blackCoffee, nil)
			},
			wantTotal: 25000,
		},
		{
			name:      "Unknown product",
			productId: 42,
			setupMock: func(p *mocks.Products) {
				p.On("ProductById", mock.Anything, 42).Return(models.Product{}, store.ErrNotFound)
			},
			wantErr: serviceerrors.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, deps := newTestSession(t)
			tt.setupMock(deps.products)

			view, err := session.AddProduct(context.Background(), tt.productId)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, view.Total)
				assert.Equal(t, 1, view.ItemCount)
			}
			deps.products.AssertExpectations(t)
		})
	}
}

func TestSession_CartOperations(t *testing.T) {
	session, deps := newTestSession(t)
	ctx := context.Background()
	deps.products.On("ProductById", mock.Anything, 1).Return(blackCoffee, nil)
	deps.products.On("ProductById", mock.Anything, 3).Return(cappuccino, nil)

	_, err := session.AddProduct(ctx, 1)
	assert.NoError(t, err)
	_, err = session.AddProduct(ctx, 3)
	assert.NoError(t, err)
	view, err := session.AddProduct(ctx, 3)
	assert.NoError(t, err)

	assert.Equal(t, 25000+2*45000, view.Total)
	assert.Equal(t, 2, view.ItemCount)

	view, err = session.SetQuantity(ctx, 1, 3)
	assert.NoError(t, err)
	assert.Equal(t, 3*25000+2*45000, view.Total)

	view, err = session.RemoveProduct(ctx, 3)
	assert.NoError(t, err)
	assert.Equal(t, 3*25000, view.Total)
	assert.Equal(t, 1, view.ItemCount)

	assert.NoError(t, session.ClearCart(ctx))
	view, err = session.ViewCart(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, view.Total)
	assert.Equal(t, 0, view.ItemCount)
}

func TestSession_OpenCheckoutEmptyCart(t *testing.T) {
	session, deps := newTestSession(t)
	deps.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n notifier.Notification) bool {
		return n.Severity == notifier.SeverityError
	})).Return()

	_, err := session.OpenCheckout(context.Background())
	assert.ErrorIs(t, err, serviceerrors.ErrEmptyCart)

	deps.notifier.AssertExpectations(t)
	deps.sink.AssertNotCalled(t, "SaveOrder", mock.Anything, mock.Anything)
}

func TestSession_ConfirmCheckout(t *testing.T) {
	session, deps := newTestSession(t)
	ctx := context.Background()
	deps.products.On("ProductById", mock.Anything, 1).Return(blackCoffee, nil)
	deps.notifier.On("Notify", mock.Anything, mock.Anything).Return()
	deps.sink.On("SaveOrder", mock.Anything, mock.MatchedBy(func(o models.Order) bool {
		return o.Number == "#123456" &&
			o.Total == 25000 &&
			o.Status == models.StatusPending &&
			o.PaymentMethod == models.PaymentTransfer &&
			time.Since(o.CreatedAt) < time.Minute
	})).Return(nil)

	_, err := session.AddProduct(ctx, 1)
	assert.NoError(t, err)

	draft, err := session.OpenCheckout(ctx)
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentCash, draft.PaymentMethod)

	_, err = session.UpdateDraft(ctx, models.CheckoutDraft{
		CustomerName:  "Nguyen Van A",
		PaymentMethod: models.PaymentTransfer,
	})
	assert.NoError(t, err)

	confirmation, err := session.ConfirmCheckout(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "#123456", confirmation.OrderNumber)
	assert.Equal(t, 25000, confirmation.Total)

	view, err := session.ViewCart(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, view.ItemCount)

	deps.sink.AssertExpectations(t)
	deps.notifier.AssertExpectations(t)
}

func TestSession_CancelCheckout(t *testing.T) {
	session, deps := newTestSession(t)
	ctx := context.Background()
	deps.products.On("ProductById", mock.Anything, 1).Return(blackCoffee, nil)

	_, err := session.AddProduct(ctx, 1)
	assert.NoError(t, err)

	_, err = session.OpenCheckout(ctx)
	assert.NoError(t, err)

	assert.NoError(t, session.CancelCheckout(ctx))

	view, err := session.ViewCart(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 25000, view.Total, "cancel leaves the cart untouched")

	deps.sink.AssertNotCalled(t, "SaveOrder", mock.Anything, mock.Anything)
}

func TestSession_ChecksClosedFlow(t *testing.T) {
	session, _ := newTestSession(t)
	ctx := context.Background()

	_, err := session.ConfirmCheckout(ctx)
	assert.ErrorIs(t, err, serviceerrors.ErrCheckoutClosed)

	assert.ErrorIs(t, session.CancelCheckout(ctx), serviceerrors.ErrCheckoutClosed)

	_, err = session.UpdateDraft(ctx, models.CheckoutDraft{})
	assert.ErrorIs(t, err, serviceerrors.ErrCheckoutClosed)
}

func TestSession_ContextCanceled(t *testing.T) {
	session, _ := newTestSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := session.ViewCart(ctx)
	assert.ErrorIs(t, err, serviceerrors.ErrContextCanceled)

	_, err = session.AddProduct(ctx, 1)
	assert.ErrorIs(t, err, serviceerrors.ErrContextCanceled)

	_, err = session.OpenCheckout(ctx)
	assert.ErrorIs(t, err, serviceerrors.ErrContextCanceled)
}

func TestSession_DeadlineExceeded(t *testing.T) {
	session, _ := newTestSession(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond*10)
	defer cancel()
	time.Sleep(time.Millisecond * 15)

	_, err := session.ViewCart(ctx)
	assert.ErrorIs(t, err, serviceerrors.ErrDeadlineExceeded)
}
