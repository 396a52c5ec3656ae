package pos

import (
	"errors"
	"fmt"
	"time"

	"cafepos/internal/models"
)

var (
	// ErrEmptyCart is returned when checkout is opened or confirmed
	// against a cart with no lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrCheckoutClosed is returned when confirm or cancel is called
	// while no checkout dialog is open.
	ErrCheckoutClosed = errors.New("checkout is not open")
)

// OrderNumberFunc produces the identifier for a confirmed order.
type OrderNumberFunc func() string

// TimestampOrderNumber reproduces the original numbering: "#" plus the
// last six digits of the current unix-milli timestamp. Not collision
// safe under rapid confirms; swap in a counter via OrderNumberFunc if
// that matters.
func TimestampOrderNumber() string {
	ms := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return "#" + ms
}

// Checkout gates finalization of a Cart. It is a small state machine:
// idle until Open, drafting while the dialog is up, and back to idle on
// Confirm or Cancel.
type Checkout struct {
	cart        *Cart
	draft       *models.CheckoutDraft
	orderNumber OrderNumberFunc
}

func NewCheckout(cart *Cart, orderNumber OrderNumberFunc) *Checkout {
	if orderNumber == nil {
		orderNumber = TimestampOrderNumber
	}
	return &Checkout{
		cart:        cart,
		orderNumber: orderNumber,
	}
}

func (c *Checkout) IsDrafting() bool {
	return c.draft != nil
}

// Open starts a draft for the current cart. Fails with ErrEmptyCart if
// there is nothing to check out; the flow stays idle in that case.
func (c *Checkout) Open() error {
	if c.cart.IsEmpty() {
		return ErrEmptyCart
	}
	c.draft = &models.CheckoutDraft{PaymentMethod: models.PaymentCash}
	return nil
}

// Draft returns the current draft values.
func (c *Checkout) Draft() (models.CheckoutDraft, error) {
	if c.draft == nil {
		return models.CheckoutDraft{}, ErrCheckoutClosed
	}
	return *c.draft, nil
}

// UpdateDraft overwrites the draft fields. No constraint is enforced on
// customer name or phone; an empty payment method keeps the current one.
func (c *Checkout) UpdateDraft(draft models.CheckoutDraft) error {
	if c.draft == nil {
		return ErrCheckoutClosed
	}
	if draft.PaymentMethod == "" {
		draft.PaymentMethod = c.draft.PaymentMethod
	}
	*c.draft = draft
	return nil
}

// Confirm finalizes the sale: it snapshots the cart into a confirmation,
// clears the cart, drops the draft and returns to idle. The cart is
// re-checked for emptiness because it can be mutated while drafting.
func (c *Checkout) Confirm() (models.Confirmation, error) {
	if c.draft == nil {
		return models.Confirmation{}, ErrCheckoutClosed
	}
	if c.cart.IsEmpty() {
		return models.Confirmation{}, ErrEmptyCart
	}

	confirmation := models.Confirmation{
		OrderNumber:   c.orderNumber(),
		Items:         c.cart.Items(),
		Total:         c.cart.TotalAmount(),
		CustomerName:  c.draft.CustomerName,
		CustomerPhone: c.draft.CustomerPhone,
		PaymentMethod: c.draft.PaymentMethod,
	}

	c.cart.Clear()
	c.draft = nil

	return confirmation, nil
}

// Cancel drops the draft and leaves the cart untouched.
func (c *Checkout) Cancel() error {
	if c.draft == nil {
		return ErrCheckoutClosed
	}
	c.draft = nil
	return nil
}
