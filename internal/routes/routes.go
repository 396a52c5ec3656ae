package routes

import (
	"net/http"
	"strings"

	menuhandler "cafepos/internal/handlers/menu"
	orderhandler "cafepos/internal/handlers/orders"
	poshandler "cafepos/internal/handlers/pos"
	summaryhandler "cafepos/internal/handlers/summary"
)

type Routes struct {
	posHandler     *poshandler.Handler
	menuHandler    *menuhandler.Handler
	orderHandler   *orderhandler.Handler
	summaryHandler *summaryhandler.Handler
}

func New(
	posHandler *poshandler.Handler,
	menuHandler *menuhandler.Handler,
	orderHandler *orderhandler.Handler,
	summaryHandler *summaryhandler.Handler,
) *Routes {
	return &Routes{
		posHandler:     posHandler,
		menuHandler:    menuHandler,
		orderHandler:   orderHandler,
		summaryHandler: summaryHandler,
	}
}

func (r *Routes) Register(mux *http.ServeMux) {
	mux.HandleFunc("/pos/cart", r.cart)
	mux.HandleFunc("/pos/cart/items", r.cartItems)
	mux.HandleFunc("/pos/cart/items/", r.cartItem)
	mux.HandleFunc("/pos/checkout", r.checkout)
	mux.HandleFunc("/pos/checkout/confirm", r.checkoutConfirm)
	mux.HandleFunc("/products", r.products)
	mux.HandleFunc("/products/", r.product)
	mux.HandleFunc("/orders", r.orders)
	mux.HandleFunc("/orders/", r.order)
	mux.HandleFunc("/summary", r.summary)
}

func (r *Routes) cart(w http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodGet:
		// GET /pos/cart
		r.posHandler.ViewCart(w, req)
	case http.MethodDelete:
		// DELETE /pos/cart
		r.posHandler.ClearCart(w, req)
	default:
		http.NotFound(w, req)
	}
}

func (r *Routes) cartItems(w http.ResponseWriter, req *http.Request) {
	if req.Method == http.MethodPost {
		// POST /pos/cart/items
		r.posHandler.AddItem(w, req)
		return
	}
	http.NotFound(w, req)
}

func (r *Routes) cartItem(w http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodPut:
		// PUT /pos/cart/items/{productId}
		r.posHandler.SetQuantity(w, req)
	case http.MethodDelete:
		// DELETE /pos/cart/items/{productId}
		r.posHandler.RemoveItem(w, req)
	default:
		http.NotFound(w, req)
	}
}

func (r *Routes) checkout(w http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodPost:
		// POST /pos/checkout
		r.posHandler.OpenCheckout(w, req)
	case http.MethodPut:
		// PUT /pos/checkout
		r.posHandler.UpdateDraft(w, req)
	case http.MethodDelete:
		// DELETE /pos/checkout
		r.posHandler.CancelCheckout(w, req)
	default:
		http.NotFound(w, req)
	}
}

func (r *Routes) checkoutConfirm(w http.ResponseWriter, req *http.Request) {
	if req.Method == http.MethodPost {
		// POST /pos/checkout/confirm
		r.posHandler.ConfirmCheckout(w, req)
		return
	}
	http.NotFound(w, req)
}

func (r *Routes) products(w http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodGet:
		// GET /products
		r.menuHandler.ListProducts(w, req)
	case http.MethodPost:
		// POST /products
		r.menuHandler.CreateProduct(w, req)
	default:
		http.NotFound(w, req)
	}
}

func (r *Routes) product(w http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodGet:
		// GET /products/{productId}
		r.menuHandler.GetProduct(w, req)
	case http.MethodPut:
		// PUT /products/{productId}
		r.menuHandler.UpdateProduct(w, req)
	case http.MethodDelete:
		// DELETE /products/{productId}
		r.menuHandler.DeleteProduct(w, req)
	default:
		http.NotFound(w, req)
	}
}

func (r *Routes) orders(w http.ResponseWriter, req *http.Request) {
	if req.Method == http.MethodGet {
		// GET /orders
		r.orderHandler.ListOrders(w, req)
		return
	}
	http.NotFound(w, req)
}

func (r *Routes) order(w http.ResponseWriter, req *http.Request) {
	isStatus := strings.HasSuffix(strings.TrimRight(req.URL.Path, "/"), "/status")

	switch {
	case req.Method == http.MethodGet && !isStatus:
		// GET /orders/{number}
		r.orderHandler.GetOrder(w, req)
	case req.Method == http.MethodPut && isStatus:
		// PUT /orders/{number}/status
		r.orderHandler.UpdateStatus(w, req)
	default:
		http.NotFound(w, req)
	}
}

func (r *Routes) summary(w http.ResponseWriter, req *http.Request) {
	if req.Method == http.MethodGet {
		// GET /summary
		r.summaryHandler.Today(w, req)
		return
	}
	http.NotFound(w, req)
}
