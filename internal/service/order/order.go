package orderservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	databaseerrors "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/database"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	serviceerrors "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/service"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/lib/logger/sl"
)

// SubjectOrderPlaced is the event subject for placed orders.
const SubjectOrderPlaced = "orders.placed"

const analyticsTopN = 5

type OrderStorage interface {
	PlaceOrder(ctx context.Context, userId int, customerName string, teacher bool) (models.Order, error)
	ListOrders(ctx context.Context, limit int) ([]models.Order, error)
	DeleteOrder(ctx context.Context, id int) error
	Stats(ctx context.Context) (models.Stats, error)
	Analytics(ctx context.Context, topN int) (models.Analytics, error)
}

// Publisher pushes order events to the message bus. May be nil when the bus
// is not configured.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// PopularityCache is invalidated after each placed order so popularity
// rankings pick the order up before the TTL expires.
type PopularityCache interface {
	InvalidatePopular()
}

type OrderService struct {
	log       *slog.Logger
	storage   OrderStorage
	publisher Publisher
	popular   PopularityCache
}

func New(log *slog.Logger, storage OrderStorage, publisher Publisher, popular PopularityCache) *OrderService {
	return &OrderService{
		log:       log,
		storage:   storage,
		publisher: publisher,
		popular:   popular,
	}
}

func (o *OrderService) PlaceOrder(ctx context.Context, userId int, customerName string, teacher bool) (models.Order, error) {
	const op = "service.order.PlaceOrder"
	log := o.log.With("op", op)

	select {
	case <-ctx.Done():
		if err := ctx.Err(); err != nil {
			if errors.Is(err, context.Canceled) {
				log.Warn("context canceled", sl.Err(err))
				return models.Order{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrContextCanceled)
			} else if errors.Is(err, context.DeadlineExceeded) {
				log.Warn("deadline exceeded", sl.Err(err))
				return models.Order{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrDeadlineExceeded)
			} else {
				log.Error("unexpected error", sl.Err(err))
				return models.Order{}, fmt.Errorf("%s: %w", op, err)
			}
		}
	default:
	}

	if customerName == "" {
		return models.Order{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrEmptyName)
	}

	order, err := o.storage.PlaceOrder(ctx, userId, customerName, teacher)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("context canceled", sl.Err(serviceerrors.ErrContextCanceled))
			return models.Order{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrContextCanceled)
		} else if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("deadline exceeded", sl.Err(serviceerrors.ErrDeadlineExceeded))
			return models.Order{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrDeadlineExceeded)
		} else if errors.Is(err, databaseerrors.ErrEmptyCart) {
			log.Warn("cart is empty", sl.Err(serviceerrors.ErrEmptyCart))
			return models.Order{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrEmptyCart)
		} else {
			log.Error("Failed to place order", sl.Err(err))
			return models.Order{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	if o.popular != nil {
		o.popular.InvalidatePopular()
	}

	if o.publisher != nil {
		if data, err := json.Marshal(order); err != nil {
			log.Error("Failed to encode order event", sl.Err(err))
		} else if err := o.publisher.Publish(SubjectOrderPlaced, data); err != nil {
			// order is already committed; the event is best effort
			log.Warn("Failed to publish order event", sl.Err(err))
		}
	}

	log.Info("order placed", "order_id", order.Id, "total", order.Total)
	return order, nil
}

func (o *OrderService) Orders(ctx context.Context, limit int) ([]models.Order, error) {
	const op = "service.order.Orders"
	log := o.log.With("op", op)

	orders, err := o.storage.ListOrders(ctx, limit)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("context canceled", sl.Err(serviceerrors.ErrContextCanceled))
			return nil, fmt.Errorf("%s: %w", op, serviceerrors.ErrContextCanceled)
		} else if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("deadline exceeded", sl.Err(serviceerrors.ErrDeadlineExceeded))
			return nil, fmt.Errorf("%s: %w", op, serviceerrors.ErrDeadlineExceeded)
		} else {
			log.Error("Failed to list orders", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return orders, nil
}

func (o *OrderService) DeleteOrder(ctx context.Context, id int) error {
	const op = "service.order.DeleteOrder"
	log := o.log.With("op", op)

	err := o.storage.DeleteOrder(ctx, id)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("context canceled", sl.Err(serviceerrors.ErrContextCanceled))
			return fmt.Errorf("%s: %w", op, serviceerrors.ErrContextCanceled)
		} else if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("deadline exceeded", sl.Err(serviceerrors.ErrDeadlineExceeded))
			return fmt.Errorf("%s: %w", op, serviceerrors.ErrDeadlineExceeded)
		} else if errors.Is(err, databaseerrors.ErrNotFound) {
			log.Warn("order doesn't exist", sl.Err(serviceerrors.ErrNotFound))
			return fmt.Errorf("%s: %w", op, serviceerrors.ErrNotFound)
		} else {
			log.Error("Failed to delete order", sl.Err(err))
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if o.popular != nil {
		o.popular.InvalidatePopular()
	}

	return nil
}

func (o *OrderService) Stats(ctx context.Context) (models.Stats, error) {
	const op = "service.order.Stats"
	log := o.log.With("op", op)

	stats, err := o.storage.Stats(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("context canceled", sl.Err(serviceerrors.ErrContextCanceled))
			return models.Stats{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrContextCanceled)
		} else if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("deadline exceeded", sl.Err(serviceerrors.ErrDeadlineExceeded))
			return models.Stats{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrDeadlineExceeded)
		} else {
			log.Error("Failed to get stats", sl.Err(err))
			return models.Stats{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	return stats, nil
}

func (o *OrderService) Analytics(ctx context.Context) (models.Analytics, error) {
	const op = "service.order.Analytics"
	log := o.log.With("op", op)

	analytics, err := o.storage.Analytics(ctx, analyticsTopN)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("context canceled", sl.Err(serviceerrors.ErrContextCanceled))
			return models.Analytics{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrContextCanceled)
		} else if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("deadline exceeded", sl.Err(serviceerrors.ErrDeadlineExceeded))
			return models.Analytics{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrDeadlineExceeded)
		} else {
			log.Error("Failed to get analytics", sl.Err(err))
			return models.Analytics{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	return analytics, nil
}
