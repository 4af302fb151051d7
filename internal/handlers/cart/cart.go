package carthandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	serviceerrors "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/service"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/lib/logger/sl"
)

const StatusClientClosedRequest = 499

type CartService interface {
	AddToCart(ctx context.Context, userId int, foodId int, quantity int) (models.CartItem, error)
	RemoveFromCart(ctx context.Context, userId int, foodId int) error
	ViewCart(ctx context.Context, userId int) (models.Cart, error)
	ClearCart(ctx context.Context, userId int) error
}

type Handler struct {
	log      *slog.Logger
	service  CartService
	validate *validator.Validate
}

func New(log *slog.Logger, service CartService) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// GET /cart
func (h *Handler) ViewCart(w http.ResponseWriter, r *http.Request, userId int) {
	const op = "handlers.cart.ViewCart"
	log := h.log.With("op", op)

	cart, err := h.service.ViewCart(r.Context(), userId)
	if err != nil {
		h.writeError(w, r, log, err, "Failed to get cart")
		return
	}

	if err := json.NewEncoder(w).Encode(cart); err != nil {
		log.Error("Failed to write response", sl.Err(err))
		http.Error(w, "Failed to write response", http.StatusInternalServerError)
		return
	}
}

type addToCartRequest struct {
	FoodId   int `json:"food_id" validate:"required,gt=0"`
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// POST /cart/items
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request, userId int) {
	const op = "handlers.cart.AddToCart"
	log := h.log.With("op", op)

	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("Cannot unmarshal request body", sl.Err(err))
		http.Error(w, "Cannot unmarshal request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(req); err != nil {
		log.Warn("Failed to validate", sl.Err(err))
		http.Error(w, "Failed to validate", http.StatusBadRequest)
		return
	}

	item, err := h.service.AddToCart(r.Context(), userId, req.FoodId, req.Quantity)
	if err != nil {
		h.writeError(w, r, log, err, "Failed to add item to cart")
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(item); err != nil {
		log.Error("Failed to write response", sl.Err(err))
		http.Error(w, "Failed to write response", http.StatusInternalServerError)
		return
	}
}

// DELETE /cart/items/{foodId}
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request, userId int, foodIdStr string) {
	const op = "handlers.cart.RemoveFromCart"
	log := h.log.With("op", op)

	foodId, err := strconv.Atoi(foodIdStr)
	if err != nil {
		http.Error(w, "FoodId must be int", http.StatusBadRequest)
		return
	}

	if err := h.service.RemoveFromCart(r.Context(), userId, foodId); err != nil {
		h.writeError(w, r, log, err, "Failed to remove item from cart")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DELETE /cart
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request, userId int) {
	const op = "handlers.cart.ClearCart"
	log := h.log.With("op", op)

	if err := h.service.ClearCart(r.Context(), userId); err != nil {
		h.writeError(w, r, log, err, "Failed to clear cart")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, fallback string) {
	if errors.Is(err, serviceerrors.ErrContextCanceled) {
		log.Warn("Context canceled", sl.Err(serviceerrors.ErrContextCanceled))
		http.Error(w, "Context canceled", StatusClientClosedRequest)
	} else if errors.Is(err, serviceerrors.ErrDeadlineExceeded) {
		log.Warn("Deadline exceeded", sl.Err(serviceerrors.ErrDeadlineExceeded))
		http.Error(w, "Deadline exceeded", http.StatusGatewayTimeout)
	} else if errors.Is(err, serviceerrors.ErrNotFound) {
		log.Warn("Not found", sl.Err(serviceerrors.ErrNotFound))
		http.NotFound(w, r)
	} else {
		log.Error(fallback, sl.Err(err))
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}
