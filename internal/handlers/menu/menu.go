package menuhandler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	serviceerrors "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/service"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/lib/logger/sl"
)

const StatusClientClosedRequest = 499

// maxImageBytes caps uploaded image size.
const maxImageBytes = 5 << 20

type MenuService interface {
	Page(ctx context.Context, category string, page int) (models.MenuPage, error)
	Item(ctx context.Context, id int) (models.MenuItem, error)
	AddItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	DeleteItem(ctx context.Context, id int) error
	Image(ctx context.Context, id int) ([]byte, error)
	SetImage(ctx context.Context, id int, raw []byte) error
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

// GET /menu?category=&page=
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.menu.Page"
	log := h.log.With("op", op)

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Page must be int", http.StatusBadRequest)
			return
		}
		page = parsed
	}
	category := r.URL.Query().Get("category")

	menuPage, err := h.service.Page(r.Context(), category, page)
	if err != nil {
		h.writeError(w, r, log, err, "Failed to list menu")
		return
	}

	if err := json.NewEncoder(w).Encode(menuPage); err != nil {
		log.Error("Failed to write response", sl.Err(err))
		http.Error(w, "Failed to write response", http.StatusInternalServerError)
		return
	}
}

// GET /menu/{id}
func (h *Handler) Item(w http.ResponseWriter, r *http.Request, idStr string) {
	const op = "handlers.menu.Item"
	log := h.log.With("op", op)

	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Item id must be int", http.StatusBadRequest)
		return
	}

	item, err := h.service.Item(r.Context(), id)
	if err != nil {
		h.writeError(w, r, log, err, "Failed to get menu item")
		return
	}

	if err := json.NewEncoder(w).Encode(item); err != nil {
		log.Error("Failed to write response", sl.Err(err))
		http.Error(w, "Failed to write response", http.StatusInternalServerError)
		return
	}
}

// GET /menu/{id}/image
func (h *Handler) Image(w http.ResponseWriter, r *http.Request, idStr string) {
	const op = "handlers.menu.Image"
	log := h.log.With("op", op)

	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Item id must be int", http.StatusBadRequest)
		return
	}

	image, err := h.service.Image(r.Context(), id)
	if err != nil {
		h.writeError(w, r, log, err, "Failed to get image")
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	if _, err := w.Write(image); err != nil {
		log.Error("Failed to write image", sl.Err(err))
	}
}

type addItemRequest struct {
	Name     string   `json:"name" validate:"required"`
	Price    int64    `json:"price" validate:"required,gt=0"`
	Rating   float64  `json:"rating" validate:"gte=0,lte=5"`
	Category string   `json:"category" validate:"required"`
	Tags     []string `json:"tags"`
}

// POST /menu
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.menu.AddItem"
	log := h.log.With("op", op)

	var req addItemRequest
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

	item, err := h.service.AddItem(r.Context(), models.MenuItem{
		Name:     req.Name,
		Price:    req.Price,
		Rating:   req.Rating,
		Category: req.Category,
		Tags:     req.Tags,
	})
	if err != nil {
		h.writeError(w, r, log, err, "Failed to add menu item")
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(item); err != nil {
		log.Error("Failed to write response", sl.Err(err))
		http.Error(w, "Failed to write response", http.StatusInternalServerError)
		return
	}
}

// DELETE /menu/{id}
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request, idStr string) {
	const op = "handlers.menu.DeleteItem"
	log := h.log.With("op", op)

	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Item id must be int", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteItem(r.Context(), id); err != nil {
		h.writeError(w, r, log, err, "Failed to delete menu item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// POST /menu/{id}/image
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request, idStr string) {
	const op = "handlers.menu.UploadImage"
	log := h.log.With("op", op)

	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Item id must be int", http.StatusBadRequest)
		return
	}

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImageBytes))
	if err != nil {
		log.Warn("Cannot read request body", sl.Err(err))
		http.Error(w, "Cannot read request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := h.service.SetImage(r.Context(), id, raw); err != nil {
		h.writeError(w, r, log, err, "Failed to set image")
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
		http.NotFound(w, r)
	} else if errors.Is(err, serviceerrors.ErrInvalidItem) {
		http.Error(w, err.Error(), http.StatusBadRequest)
	} else {
		log.Error(fallback, sl.Err(err))
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}
