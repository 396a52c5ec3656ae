package pos

import "cafepos/internal/models"

// Cart holds the line items of the sale in progress. It is owned by a
// single session and is not safe for concurrent use on its own.
type Cart struct {
	items []models.LineItem
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem puts one unit of the product into the cart. A repeated add for
// the same product bumps the existing line instead of appending a new one.
// Name and price are copied from the product, so later menu edits do not
// change an open cart.
func (c *Cart) AddItem(product models.Product) {
	for i := range c.items {
		if c.items[i].ProductId == product.Id {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, models.LineItem{
		ProductId: product.Id,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  1,
	})
}

// SetQuantity sets the quantity of the line for productId. A quantity of
// zero or less removes the line. Unknown ids are ignored.
func (c *Cart) SetQuantity(productId int, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productId)
		return
	}
	for i := range c.items {
		if c.items[i].ProductId == productId {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem drops the line for productId. Unknown ids are ignored.
func (c *Cart) RemoveItem(productId int) {
	for i := range c.items {
		if c.items[i].ProductId == productId {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []models.LineItem {
	out := make([]models.LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalAmount is the sum of unit price times quantity over all lines.
func (c *Cart) TotalAmount() int {
	total := 0
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

// ItemCount is the number of distinct lines, not the summed quantity.
// The original UI shows it as the cart badge.
func (c *Cart) ItemCount() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}
