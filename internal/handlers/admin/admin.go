package adminhandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/export"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	serviceerrors "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/service"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/lib/logger/sl"
)

const StatusClientClosedRequest = 499

type ReportService interface {
	Orders(ctx context.Context, limit int) ([]models.Order, error)
	Stats(ctx context.Context) (models.Stats, error)
	Analytics(ctx context.Context) (models.Analytics, error)
}

type Handler struct {
	log     *slog.Logger
	service ReportService
}

func New(log *slog.Logger, service ReportService) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// GET /admin/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.Stats"
	log := h.log.With("op", op)

	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.writeError(w, log, err, "Failed to get stats")
		return
	}

	if err := json.NewEncoder(w).Encode(stats); err != nil {
		log.Error("Failed to write response", sl.Err(err))
		http.Error(w, "Failed to write response", http.StatusInternalServerError)
		return
	}
}

// GET /admin/analytics
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.Analytics"
	log := h.log.With("op", op)

	analytics, err := h.service.Analytics(r.Context())
	if err != nil {
		h.writeError(w, log, err, "Failed to get analytics")
		return
	}

	if err := json.NewEncoder(w).Encode(analytics); err != nil {
		log.Error("Failed to write response", sl.Err(err))
		http.Error(w, "Failed to write response", http.StatusInternalServerError)
		return
	}
}

// GET /admin/orders/export?format=csv|pdf
func (h *Handler) ExportOrders(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.ExportOrders"
	log := h.log.With("op", op)

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "pdf" {
		http.Error(w, "Format must be csv or pdf", http.StatusBadRequest)
		return
	}

	// export covers the full history, not just the last page
	orders, err := h.service.Orders(r.Context(), 0)
	if err != nil {
		h.writeError(w, log, err, "Failed to list orders")
		return
	}

	var data []byte
	switch format {
	case "csv":
		data, err = export.OrdersCSV(orders)
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="orders.csv"`)
	case "pdf":
		data, err = export.OrdersPDF(orders)
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="orders.pdf"`)
	}
	if err != nil {
		log.Error("Failed to render export", sl.Err(err))
		http.Error(w, "Failed to render export", http.StatusInternalServerError)
		return
	}

	if _, err := w.Write(data); err != nil {
		log.Error("Failed to write export", sl.Err(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, log *slog.Logger, err error, fallback string) {
	if errors.Is(err, serviceerrors.ErrContextCanceled) {
		log.Warn("Context canceled", sl.Err(serviceerrors.ErrContextCanceled))
		http.Error(w, "Context canceled", StatusClientClosedRequest)
	} else if errors.Is(err, serviceerrors.ErrDeadlineExceeded) {
		log.Warn("Deadline exceeded", sl.Err(serviceerrors.ErrDeadlineExceeded))
		http.Error(w, "Deadline exceeded", http.StatusGatewayTimeout)
	} else {
		log.Error(fallback, sl.Err(err))
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}
