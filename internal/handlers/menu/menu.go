package menuhandler

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

type MenuService interface {
	ListProducts(ctx context.Context, category models.Category, search string) ([]models.Product, error)
	GetProduct(ctx context.Context, id int) (models.Product, error)
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	UpdateProduct(ctx context.Context, product models.Product) (models.Product, error)
	DeleteProduct(ctx context.Context, id int) error
}

type Handler struct {
	log      *slog.Logger
	service  MenuService
	validate *validator.Validate
}

func New(log *slog.Logger, service MenuService) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// productRequest mirrors the admin form: name, price and category are
// required, description is free text.
type productRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       int    `json:"price" validate:"gte=0"`
	Category    string `json:"category" validate:"required,oneof=coffee tea pastry snack"`
	IsActive    *bool  `json:"is_active"`
}

func (req productRequest) toProduct(id int) models.Product {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return models.Product{
		Id:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    models.Category(req.Category),
		IsActive:    active,
	}
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
	case errors.Is(err, serviceerrors.ErrNotFound):
		log.Warn("Product not found", sl.Err(err))
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

// GET /products?category=&search=
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.menu.ListProducts"
	log := h.log.With("op", op)

	category := models.Category(r.URL.Query().Get("category"))
	search := r.URL.Query().Get("search")

	products, err := h.service.ListProducts(r.Context(), category, search)
	if err != nil {
		h.writeError(w, r, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, products)
}

// GET /products/{productId}
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.menu.GetProduct"
	log := h.log.With("op", op)

	params, err := urlparser.ParseProductPath(r.URL.Path)
	if err != nil {
		log.Error("Bad path", sl.Err(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	product, err := h.service.GetProduct(r.Context(), params.ProductId)
	if err != nil {
		h.writeError(w, r, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, product)
}

// POST /products
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.menu.CreateProduct"
	log := h.log.With("op", op)

	var req productRequest
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

	created, err := h.service.CreateProduct(r.Context(), req.toProduct(0))
	if err != nil {
		h.writeError(w, r, log, err)
		return
	}

	writeJSON(w, log, http.StatusCreated, created)
}

// PUT /products/{productId}
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.menu.UpdateProduct"
	log := h.log.With("op", op)

	params, err := urlparser.ParseProductPath(r.URL.Path)
	if err != nil {
		log.Error("Bad path", sl.Err(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req productRequest
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

	updated, err := h.service.UpdateProduct(r.Context(), req.toProduct(params.ProductId))
	if err != nil {
		h.writeError(w, r, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, updated)
}

// DELETE /products/{productId}
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.menu.DeleteProduct"
	log := h.log.With("op", op)

	params, err := urlparser.ParseProductPath(r.URL.Path)
	if err != nil {
		log.Error("Bad path", sl.Err(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteProduct(r.Context(), params.ProductId); err != nil {
		h.writeError(w, r, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
