package models

import "time"

type Category string

const (
	CategoryCoffee Category = "coffee"
	CategoryTea    Category = "tea"
	CategoryPastry Category = "pastry"
	CategorySnack  Category = "snack"
)

func Categories() []Category {
	return []Category{CategoryCoffee, CategoryTea, CategoryPastry, CategorySnack}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryCoffee, CategoryTea, CategoryPastry, CategorySnack:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

type Product struct {
	Id          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Category    Category `json:"category"`
	IsActive    bool     `json:"is_active"`
}

type LineItem struct {
	ProductId int    `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int    `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

func (li LineItem) Subtotal() int {
	return li.UnitPrice * li.Quantity
}

type CheckoutDraft struct {
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

type Confirmation struct {
	OrderNumber   string        `json:"order_number"`
	Items         []LineItem    `json:"items"`
	Total         int           `json:"total"`
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusCompleted:
		return true
	}
	return false
}

// Next reports the status that follows s in the kitchen pipeline.
// The second value is false for completed, which is terminal.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case StatusPending:
		return StatusPreparing, true
	case StatusPreparing:
		return StatusReady, true
	case StatusReady:
		return StatusCompleted, true
	}
	return s, false
}

type Order struct {
	Number        string        `json:"number"`
	Items         []LineItem    `json:"items"`
	Total         int           `json:"total"`
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        OrderStatus   `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	CompletedAt   *time.Time    `json:"completed_at,omitempty"`
}
