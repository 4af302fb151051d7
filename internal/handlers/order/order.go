package orderhandler

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

// defaultListLimit mirrors the admin panel showing the last 10 orders.
const defaultListLimit = 10

type OrderService interface {
	PlaceOrder(ctx context.Context, userId int, customerName string, teacher bool) (models.Order, error)
	Orders(ctx context.Context, limit int) ([]models.Order, error)
	DeleteOrder(ctx context.Context, id int) error
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

type placeOrderRequest struct {
	CustomerName string `json:"customer_name" validate:"required"`
	Teacher      bool   `json:"teacher"`
}

// POST /orders
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request, userId int) {
	const op = "handlers.order.PlaceOrder"
	log := h.log.With("op", op)

	var req placeOrderRequest
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

	order, err := h.service.PlaceOrder(r.Context(), userId, req.CustomerName, req.Teacher)
	if err != nil {
		if errors.Is(err, serviceerrors.ErrEmptyCart) {
			http.Error(w, "Cart is empty", http.StatusBadRequest)
			return
		} else if errors.Is(err, serviceerrors.ErrEmptyName) {
			http.Error(w, "Customer name is required", http.StatusBadRequest)
			return
		}
		h.writeError(w, r, log, err, "Failed to place order")
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(order); err != nil {
		log.Error("Failed to write response", sl.Err(err))
		http.Error(w, "Failed to write response", http.StatusInternalServerError)
		return
	}
}

// GET /orders?limit=
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.ListOrders"
	log := h.log.With("op", op)

	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Limit must be int", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	orders, err := h.service.Orders(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, log, err, "Failed to list orders")
		return
	}

	if err := json.NewEncoder(w).Encode(orders); err != nil {
		log.Error("Failed to write response", sl.Err(err))
		http.Error(w, "Failed to write response", http.StatusInternalServerError)
		return
	}
}

// DELETE /orders/{id}
func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request, idStr string) {
	const op = "handlers.order.DeleteOrder"
	log := h.log.With("op", op)

	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Order id must be int", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteOrder(r.Context(), id); err != nil {
		h.writeError(w, r, log, err, "Failed to delete order")
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
