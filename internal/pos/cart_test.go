package pos_test

import (
	"testing"

	"cafepos/internal/models"
	"cafepos/internal/pos"

	"github.com/stretchr/testify/assert"
)

var (
	blackCoffee = models.Product{Id: 1, Name: "Black coffee", Price: 25000, Category: models.CategoryCoffee, IsActive: true}
	cappuccino  = models.Product{Id: 3, Name: "Cappuccino", Price: 45000, Category: models.CategoryCoffee, IsActive: true}
)

func TestCart_AddItem(t *testing.T) {
	tests := []struct {
		name         string
		adds         []models.Product
		wantLines    int
		wantQuantity map[int]int
	}{
		{
			name:         "single add creates line with quantity 1",
			adds:         []models.Product{blackCoffee},
			wantLines:    1,
			wantQuantity: map[int]int{1: 1},
		},
		{
			name:         "repeated adds increment one line",
			adds:         []models.Product{blackCoffee, blackCoffee, blackCoffee},
			wantLines:    1,
			wantQuantity: map[int]int{1: 3},
		},
		{
			name:         "distinct products get distinct lines",
			adds:         []models.Product{blackCoffee, cappuccino, cappuccino},
			wantLines:    2,
			wantQuantity: map[int]int{1: 1, 3: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := pos.NewCart()
			for _, p := range tt.adds {
				cart.AddItem(p)
			}

			items := cart.Items()
			assert.Len(t, items, tt.wantLines)
			assert.Equal(t, tt.wantLines, cart.ItemCount())
			for _, item := range items {
				assert.Equal(t, tt.wantQuantity[item.ProductId], item.Quantity)
			}
		})
	}
}

func TestCart_AddItemCopiesPrice(t *testing.T) {
	cart := pos.NewCart()
	product := blackCoffee
	cart.AddItem(product)

	// a later menu edit must not change the open cart
	product.Price = 99000

	items := cart.Items()
	assert.Equal(t, 25000, items[0].UnitPrice)
	assert.Equal(t, "Black coffee", items[0].Name)
}

func TestCart_SetQuantity(t *testing.T) {
	tests := []struct {
		name      string
		productId int
		quantity  int
		wantLines int
		wantTotal int
	}{
		{name: "positive quantity overwrites", productId: 1, quantity: 3, wantLines: 1, wantTotal: 75000},
		{name: "zero removes the line", productId: 1, quantity: 0, wantLines: 0, wantTotal: 0},
		{name: "negative removes the line", productId: 1, quantity: -5, wantLines: 0, wantTotal: 0},
		{name: "unknown id is a no-op", productId: 42, quantity: 7, wantLines: 1, wantTotal: 25000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := pos.NewCart()
			cart.AddItem(blackCoffee)

			cart.SetQuantity(tt.productId, tt.quantity)

			assert.Equal(t, tt.wantLines, cart.ItemCount())
			assert.Equal(t, tt.wantTotal, cart.TotalAmount())
		})
	}

	t.Run("set after removal is a no-op", func(t *testing.T) {
		cart := pos.NewCart()
		cart.AddItem(blackCoffee)
		cart.SetQuantity(1, 0)
		cart.SetQuantity(1, 5)

		assert.True(t, cart.IsEmpty())
		assert.Equal(t, 0, cart.TotalAmount())
	})
}

func TestCart_RemoveItem(t *testing.T) {
	cart := pos.NewCart()
	cart.AddItem(blackCoffee)
	cart.SetQuantity(1, 3)

	cart.RemoveItem(1)

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.TotalAmount())

	// removing again must not panic or change anything
	cart.RemoveItem(1)
	assert.True(t, cart.IsEmpty())
}

func TestCart_TotalAmount(t *testing.T) {
	cart := pos.NewCart()
	assert.Equal(t, 0, cart.TotalAmount())

	cart.AddItem(blackCoffee)
	cart.AddItem(cappuccino)
	cart.AddItem(cappuccino)

	assert.Equal(t, 25000+2*45000, cart.TotalAmount())
	assert.Equal(t, 2, cart.ItemCount())
}

func TestCart_Clear(t *testing.T) {
	cart := pos.NewCart()
	cart.AddItem(blackCoffee)
	cart.AddItem(cappuccino)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.ItemCount())
	assert.Equal(t, 0, cart.TotalAmount())
}

func TestCart_ItemsIsACopy(t *testing.T) {
	cart := pos.NewCart()
	cart.AddItem(blackCoffee)

	items := cart.Items()
	items[0].Quantity = 100

	assert.Equal(t, 1, cart.Items()[0].Quantity)
}
