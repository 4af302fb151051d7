package recommendhandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	serviceerrors "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/service"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/lib/logger/sl"
)

const StatusClientClosedRequest = 499

type RecommendService interface {
	Popular(ctx context.Context, limit int) ([]models.MenuItem, error)
	TopRated(ctx context.Context, limit int) ([]models.MenuItem, error)
	Budget(ctx context.Context, maxPrice int64, limit int) ([]models.MenuItem, error)
}

type Handler struct {
	log     *slog.Logger
	service RecommendService
}

func New(log *slog.Logger, service RecommendService) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// GET /recommendations?kind=popular|top-rated|budget&limit=&max_price=
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recommend.Recommendations"
	log := h.log.With("op", op)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Limit must be int", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	var items []models.MenuItem
	var err error

	kind := r.URL.Query().Get("kind")
	switch kind {
	case "", "popular":
		items, err = h.service.Popular(r.Context(), limit)
	case "top-rated":
		items, err = h.service.TopRated(r.Context(), limit)
	case "budget":
		var maxPrice int64
		if raw := r.URL.Query().Get("max_price"); raw != "" {
			maxPrice, err = strconv.ParseInt(raw, 10, 64)
			if err != nil {
				http.Error(w, "Max price must be int", http.StatusBadRequest)
				return
			}
		}
		items, err = h.service.Budget(r.Context(), maxPrice, limit)
	default:
		http.Error(w, "Unknown recommendation kind", http.StatusBadRequest)
		return
	}

	if err != nil {
		if errors.Is(err, serviceerrors.ErrContextCanceled) {
			log.Warn("Context canceled", sl.Err(serviceerrors.ErrContextCanceled))
			http.Error(w, "Context canceled", StatusClientClosedRequest)
		} else if errors.Is(err, serviceerrors.ErrDeadlineExceeded) {
			log.Warn("Deadline exceeded", sl.Err(serviceerrors.ErrDeadlineExceeded))
			http.Error(w, "Deadline exceeded", http.StatusGatewayTimeout)
		} else {
			log.Error("Failed to get recommendations", sl.Err(err))
			http.Error(w, "Failed to get recommendations", http.StatusInternalServerError)
		}
		return
	}

	if err := json.NewEncoder(w).Encode(items); err != nil {
		log.Error("Failed to write response", sl.Err(err))
		http.Error(w, "Failed to write response", http.StatusInternalServerError)
		return
	}
}
