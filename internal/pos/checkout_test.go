package pos_test

import (
	"testing"

	"cafepos/internal/models"
	"cafepos/internal/pos"

	"github.com/stretchr/testify/assert"
)

func fixedOrderNumber() string { return "#123456" }

func TestCheckout_OpenEmptyCart(t *testing.T) {
	cart := pos.NewCart()
	checkout := pos.NewCheckout(cart, fixedOrderNumber)

	err := checkout.Open()

	assert.ErrorIs(t, err, pos.ErrEmptyCart)
	assert.False(t, checkout.IsDrafting())
	assert.True(t, cart.IsEmpty())

	_, err = checkout.Draft()
	assert.ErrorIs(t, err, pos.ErrCheckoutClosed)
}

func TestCheckout_OpenDefaultsToCash(t *testing.T) {
	cart := pos.NewCart()
	cart.AddItem(blackCoffee)
	checkout := pos.NewCheckout(cart, fixedOrderNumber)

	assert.NoError(t, checkout.Open())
	assert.True(t, checkout.IsDrafting())

	draft, err := checkout.Draft()
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentCash, draft.PaymentMethod)
	assert.Empty(t, draft.CustomerName)
	assert.Empty(t, draft.CustomerPhone)
}

func TestCheckout_Confirm(t *testing.T) {
	cart := pos.NewCart()
	cart.AddItem(blackCoffee)
	cart.AddItem(cappuccino)
	cart.AddItem(cappuccino)
	checkout := pos.NewCheckout(cart, fixedOrderNumber)

	assert.NoError(t, checkout.Open())
	assert.NoError(t, checkout.UpdateDraft(models.CheckoutDraft{
		CustomerName:  "Nguyen Van A",
		CustomerPhone: "0901234567",
		PaymentMethod: models.PaymentCard,
	}))

	confirmation, err := checkout.Confirm()
	assert.NoError(t, err)

	assert.Equal(t, "#123456", confirmation.OrderNumber)
	assert.Equal(t, 25000+2*45000, confirmation.Total)
	assert.Len(t, confirmation.Items, 2)
	assert.Equal(t, "Nguyen Van A", confirmation.CustomerName)
	assert.Equal(t, models.PaymentCard, confirmation.PaymentMethod)

	// confirm resets everything back to idle
	assert.True(t, cart.IsEmpty())
	assert.False(t, checkout.IsDrafting())
}

func TestCheckout_ConfirmEmptiedWhileDrafting(t *testing.T) {
	cart := pos.NewCart()
	cart.AddItem(blackCoffee)
	checkout := pos.NewCheckout(cart, fixedOrderNumber)

	assert.NoError(t, checkout.Open())
	cart.Clear()

	_, err := checkout.Confirm()
	assert.ErrorIs(t, err, pos.ErrEmptyCart)
}

func TestCheckout_Cancel(t *testing.T) {
	cart := pos.NewCart()
	cart.AddItem(blackCoffee)
	cart.AddItem(cappuccino)
	cart.SetQuantity(3, 1)
	wantTotal := cart.TotalAmount()
	checkout := pos.NewCheckout(cart, fixedOrderNumber)

	assert.NoError(t, checkout.Open())
	assert.NoError(t, checkout.Cancel())

	assert.False(t, checkout.IsDrafting())
	assert.Equal(t, wantTotal, cart.TotalAmount())
}

func TestCheckout_ClosedTransitions(t *testing.T) {
	cart := pos.NewCart()
	cart.AddItem(blackCoffee)
	checkout := pos.NewCheckout(cart, fixedOrderNumber)

	_, err := checkout.Confirm()
	assert.ErrorIs(t, err, pos.ErrCheckoutClosed)

	assert.ErrorIs(t, checkout.Cancel(), pos.ErrCheckoutClosed)
	assert.ErrorIs(t, checkout.UpdateDraft(models.CheckoutDraft{}), pos.ErrCheckoutClosed)
}

func TestCheckout_UpdateDraftKeepsPaymentWhenEmpty(t *testing.T) {
	cart := pos.NewCart()
	cart.AddItem(blackCoffee)
	checkout := pos.NewCheckout(cart, fixedOrderNumber)

	assert.NoError(t, checkout.Open())
	assert.NoError(t, checkout.UpdateDraft(models.CheckoutDraft{PaymentMethod: models.PaymentTransfer}))
	assert.NoError(t, checkout.UpdateDraft(models.CheckoutDraft{CustomerName: "Tran Thi B"}))

	draft, err := checkout.Draft()
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentTransfer, draft.PaymentMethod)
	assert.Equal(t, "Tran Thi B", draft.CustomerName)
}

func TestTimestampOrderNumber(t *testing.T) {
	number := pos.TimestampOrderNumber()

	assert.Len(t, number, 7)
	assert.Equal(t, byte('#'), number[0])
	for _, r := range number[1:] {
		assert.GreaterOrEqual(t, r, '0')
		assert.LessOrEqual(t, r, '9')
	}
}
