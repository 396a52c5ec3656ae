package orderhandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"cafepos/internal/models"
	serviceerrors "cafepos/internal/service"
	"cafepos/pkg/lib/logger/sl"
	"cafepos/pkg/lib/urlparser"

	"github.com/go-playground/validator/v10"
)

const StatusClientClosedRequest = 499

type OrderService interface {
	ListOrders(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	GetOrder(ctx context.Context, number string) (models.Order, error)
	AdvanceStatus(ctx context.Context, number string, status models.OrderStatus) (models.Order, error)
}

type Handler struct {
	log      *slog.Logger
	service  OrderService
	validate *validator.Validate
}

func New(log *slog.Logger, service OrderService) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending preparing ready completed"`
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, serviceerrors.ErrContextCanceled):
		log.Warn("Context canceled", sl.Err(err))
		http.Error(w, "Context canceled", StatusClientClosedRequest)
	case errors.Is(err, serviceerrors.ErrDeadlineExceeded):
		log.Warn("Deadline exceeded", sl.Err(err))
		http.Error(w, "Deadline exceeded", http.StatusGatewayTimeout)
	case errors.Is(err, serviceerrors.ErrInvalidInput):
		log.Warn("Invalid input", sl.Err(err))
		http.Error(w, "Invalid input", http.StatusBadRequest)
	case errors.Is(err, serviceerrors.ErrBadTransition):
		log.Warn("Invalid status transition", sl.Err(err))
		http.Error(w, "Invalid status transition", http.StatusConflict)
	case errors.Is(err, serviceerrors.ErrNotFound):
		log.Warn("Order not found", sl.Err(err))
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

// GET /orders?status=
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.orders.ListOrders"
	log := h.log.With("op", op)

	status := models.OrderStatus(r.URL.Query().Get("status"))

	orders, err := h.service.ListOrders(r.Context(), status)
	if err != nil {
		h.writeError(w, r, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, orders)
}

// GET /orders/{number}
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.orders.GetOrder"
	log := h.log.With("op", op)

	params, err := urlparser.ParseOrderPath(r.URL.Path)
	if err != nil {
		log.Error("Bad path", sl.Err(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.service.GetOrder(r.Context(), params.Number)
	if err != nil {
		h.writeError(w, r, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, order)
}

// PUT /orders/{number}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.orders.UpdateStatus"
	log := h.log.With("op", op)

	params, err := urlparser.ParseOrderPath(r.URL.Path)
	if err != nil || !params.IsStatus {
		log.Error("Bad path")
		http.Error(w, "invalid path, expected /orders/{number}/status", http.StatusBadRequest)
		return
	}

	var req statusRequest
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

	order, err := h.service.AdvanceStatus(r.Context(), params.Number, models.OrderStatus(req.Status))
	if err != nil {
		h.writeError(w, r, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, order)
}
