package poshandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"cafepos/internal/models"
	serviceerrors "cafepos/internal/service"
	posservice "cafepos/internal/service/pos"
	"cafepos/pkg/lib/logger/sl"
	"cafepos/pkg/lib/urlparser"

	"github.com/go-playground/validator/v10"
)

const StatusClientClosedRequest = 499

type PosService interface {
	ViewCart(ctx context.Context) (posservice.CartView, error)
	AddProduct(ctx context.Context, productId int) (posservice.CartView, error)
	SetQuantity(ctx context.Context, productId int, quantity int) (posservice.CartView, error)
	RemoveProduct(ctx context.Context, productId int) (posservice.CartView, error)
	ClearCart(ctx context.Context) error
	OpenCheckout(ctx context.Context) (models.CheckoutDraft, error)
	UpdateDraft(ctx context.Context, draft models.CheckoutDraft) (models.CheckoutDraft, error)
	ConfirmCheckout(ctx context.Context) (models.Confirmation, error)
	CancelCheckout(ctx context.Context) error
}

type Handler struct {
	log      *slog.Logger
	service  PosService
	validate *validator.Validate
}

func New(log *slog.Logger, service PosService) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

type addItemRequest struct {
	ProductId int `json:"product_id" validate:"required"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type draftRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=cash card transfer"`
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, serviceerrors.ErrContextCanceled):
		log.Warn("Context canceled", sl.Err(err))
		http.Error(w, "Context canceled", StatusClientClosedRequest)
	case errors.Is(err, serviceerrors.ErrDeadlineExceeded):
		log.Warn("Deadline exceeded", sl.Err(err))
		http.Error(w, "Deadline exceeded", http.StatusGatewayTimeout)
	case errors.Is(err, serviceerrors.ErrEmptyCart):
		log.Warn("Cart is empty", sl.Err(err))
		http.Error(w, "Cart is empty", http.StatusUnprocessableEntity)
	case errors.Is(err, serviceerrors.ErrCheckoutClosed):
		log.Warn("Checkout is not open", sl.Err(err))
		http.Error(w, "Checkout is not open", http.StatusConflict)
	case errors.Is(err, serviceerrors.ErrNotFound):
		log.Warn("Not found", sl.Err(err))
		http.NotFound(w, r)
	default:
		log.Error("Internal error", sl.Err(err))
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("Failed to respond to user", sl.Err(err))
	}
}

// GET /pos/cart
func (h *Handler) ViewCart(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pos.ViewCart"
	log := h.log.With("op", op)

	view, err := h.service.ViewCart(r.Context())
	if err != nil {
		h.writeError(w, r, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, view)
}

// POST /pos/cart/items
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pos.AddItem"
	log := h.log.With("op", op)

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("Cannot unmarshal request body", sl.Err(err))
		http.Error(w, "Cannot unmarshal request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(req); err != nil {
		log.Error("Failed to validate", sl.Err(err))
		http.Error(w, "Failed to validate", http.StatusBadRequest)
		return
	}

	view, err := h.service.AddProduct(r.Context(), req.ProductId)
	if err != nil {
		h.writeError(w, r, log, err)
		return
	}

	writeJSON(w, log, http.StatusCreated, view)
}

// PUT /pos/cart/items/{productId}
func (h *Handler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pos.SetQuantity"
	log := h.log.With("op", op)

	params, err := urlparser.ParseCartItemPath(r.URL.Path)
	if err != nil {
		log.Error("Bad path", sl.Err(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("Cannot unmarshal request body", sl.Err(err))
		http.Error(w, "Cannot unmarshal request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	view, err := h.service.SetQuantity(r.Context(), params.ProductId, req.Quantity)
	if err != nil {
		h.writeError(w, r, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, view)
}

// DELETE /pos/cart/items/{productId}
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pos.RemoveItem"
	log := h.log.With("op", op)

	params, err := urlparser.ParseCartItemPath(r.URL.Path)
	if err != nil {
		log.Error("Bad path", sl.Err(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.service.RemoveProduct(r.Context(), params.ProductId)
	if err != nil {
		h.writeError(w, r, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, view)
}

// DELETE /pos/cart
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pos.ClearCart"
	log := h.log.With("op", op)

	if err := h.service.ClearCart(r.Context()); err != nil {
		h.writeError(w, r, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// POST /pos/checkout
func (h *Handler) OpenCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pos.OpenCheckout"
	log := h.log.With("op", op)

	draft, err := h.service.OpenCheckout(r.Context())
	if err != nil {
		h.writeError(w, r, log, err)
		return
	}

	writeJSON(w, log, http.StatusCreated, draft)
}

// PUT /pos/checkout
func (h *Handler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pos.UpdateDraft"
	log := h.log.With("op", op)

	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("Cannot unmarshal request body", sl.Err(err))
		http.Error(w, "Cannot unmarshal request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(req); err != nil {
		log.Error("Failed to validate", sl.Err(err))
		http.Error(w, "Failed to validate", http.StatusBadRequest)
		return
	}

	draft, err := h.service.UpdateDraft(r.Context(), models.CheckoutDraft{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		PaymentMethod: models.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		h.writeError(w, r, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, draft)
}

// POST /pos/checkout/confirm
func (h *Handler) ConfirmCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pos.ConfirmCheckout"
	log := h.log.With("op", op)

	confirmation, err := h.service.ConfirmCheckout(r.Context())
	if err != nil {
		h.writeError(w, r, log, err)
		return
	}

	writeJSON(w, log, http.StatusCreated, confirmation)
}

// DELETE /pos/checkout
func (h *Handler) CancelCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pos.CancelCheckout"
	log := h.log.With("op", op)

	if err := h.service.CancelCheckout(r.Context()); err != nil {
		h.writeError(w, r, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
