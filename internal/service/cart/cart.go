package cartservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	databaseerrors "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/database"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	serviceerrors "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/service"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/lib/logger/sl"
)

type CartStorage interface {
	AddToCart(ctx context.Context, userId int, foodId int, quantity int) (models.CartItem, error)
	RemoveFromCart(ctx context.Context, userId int, foodId int) error
	ViewCart(ctx context.Context, userId int) (models.Cart, error)
	ClearCart(ctx context.Context, userId int) error
}

type CartService struct {
	log     *slog.Logger
	storage CartStorage
}

func New(log *slog.Logger, storage CartStorage) *CartService {
	return &CartService{
		log:     log,
		storage: storage,
	}
}

func (c *CartService) AddToCart(ctx context.Context, userId int, foodId int, quantity int) (models.CartItem, error) {
	const op = "service.cart.AddToCart"
	log := c.log.With("op", op)

	select {
	case <-ctx.Done():
		if err := ctx.Err(); err != nil {
			if errors.Is(err, context.Canceled) {
				log.Warn("context canceled", sl.Err(err))
				return models.CartItem{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrContextCanceled)
			} else if errors.Is(err, context.DeadlineExceeded) {
				log.Warn("deadline exceeded", sl.Err(err))
				return models.CartItem{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrDeadlineExceeded)
			} else {
				log.Error("unexpected error", sl.Err(err))
				return models.CartItem{}, fmt.Errorf("%s: %w", op, err)
			}
		}
	default:
	}

	item, err := c.storage.AddToCart(ctx, userId, foodId, quantity)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("context canceled", sl.Err(serviceerrors.ErrContextCanceled))
			return models.CartItem{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrContextCanceled)
		} else if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("deadline exceeded", sl.Err(serviceerrors.ErrDeadlineExceeded))
			return models.CartItem{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrDeadlineExceeded)
		} else if errors.Is(err, databaseerrors.ErrNotFound) {
			log.Warn("menu item not found", sl.Err(serviceerrors.ErrNotFound))
			return models.CartItem{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrNotFound)
		} else {
			log.Error("Failed to add item to cart", sl.Err(err))
			return models.CartItem{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	return item, nil
}

func (c *CartService) RemoveFromCart(ctx context.Context, userId int, foodId int) error {
	const op = "service.cart.RemoveFromCart"
	log := c.log.With("op", op)

	select {
	case <-ctx.Done():
		if err := ctx.Err(); err != nil {
			if errors.Is(err, context.Canceled) {
				log.Warn("context canceled", sl.Err(err))
				return fmt.Errorf("%s: %w", op, serviceerrors.ErrContextCanceled)
			} else if errors.Is(err, context.DeadlineExceeded) {
				log.Warn("deadline exceeded", sl.Err(err))
				return fmt.Errorf("%s: %w", op, serviceerrors.ErrDeadlineExceeded)
			} else {
				log.Error("unexpected error", sl.Err(err))
				return fmt.Errorf("%s: %w", op, err)
			}
		}
	default:
	}

	err := c.storage.RemoveFromCart(ctx, userId, foodId)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("context canceled", sl.Err(serviceerrors.ErrContextCanceled))
			return fmt.Errorf("%s: %w", op, serviceerrors.ErrContextCanceled)
		} else if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("deadline exceeded", sl.Err(serviceerrors.ErrDeadlineExceeded))
			return fmt.Errorf("%s: %w", op, serviceerrors.ErrDeadlineExceeded)
		} else if errors.Is(err, databaseerrors.ErrNotFound) {
			log.Warn("cart item doesn't exist", sl.Err(serviceerrors.ErrNotFound))
			return fmt.Errorf("%s: %w", op, serviceerrors.ErrNotFound)
		} else {
			log.Error("Failed to remove item from cart", sl.Err(err))
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

func (c *CartService) ViewCart(ctx context.Context, userId int) (models.Cart, error) {
	const op = "service.cart.ViewCart"
	log := c.log.With("op", op)

	select {
	case <-ctx.Done():
		if err := ctx.Err(); err != nil {
			if errors.Is(err, context.Canceled) {
				log.Warn("context canceled", sl.Err(err))
				return models.Cart{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrContextCanceled)
			} else if errors.Is(err, context.DeadlineExceeded) {
				log.Warn("deadline exceeded", sl.Err(err))
				return models.Cart{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrDeadlineExceeded)
			} else {
				log.Error("unexpected error", sl.Err(err))
				return models.Cart{}, fmt.Errorf("%s: %w", op, err)
			}
		}
	default:
	}

	cart, err := c.storage.ViewCart(ctx, userId)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("context canceled", sl.Err(serviceerrors.ErrContextCanceled))
			return models.Cart{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrContextCanceled)
		} else if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("deadline exceeded", sl.Err(serviceerrors.ErrDeadlineExceeded))
			return models.Cart{}, fmt.Errorf("%s: %w", op, serviceerrors.ErrDeadlineExceeded)
		} else {
			log.Error("Failed to get cart", sl.Err(err))
			return models.Cart{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	return cart, nil
}

func (c *CartService) ClearCart(ctx context.Context, userId int) error {
	const op = "service.cart.ClearCart"
	log := c.log.With("op", op)

	select {
	case <-ctx.Done():
		if err := ctx.Err(); err != nil {
			if errors.Is(err, context.Canceled) {
				log.Warn("context canceled", sl.Err(err))
				return fmt.Errorf("%s: %w", op, serviceerrors.ErrContextCanceled)
			} else if errors.Is(err, context.DeadlineExceeded) {
				log.Warn("deadline exceeded", sl.Err(err))
				return fmt.Errorf("%s: %w", op, serviceerrors.ErrDeadlineExceeded)
			} else {
				log.Error("unexpected error", sl.Err(err))
				return fmt.Errorf("%s: %w", op, err)
			}
		}
	default:
	}

	err := c.storage.ClearCart(ctx, userId)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("context canceled", sl.Err(serviceerrors.ErrContextCanceled))
			return fmt.Errorf("%s: %w", op, serviceerrors.ErrContextCanceled)
		} else if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("deadline exceeded", sl.Err(serviceerrors.ErrDeadlineExceeded))
			return fmt.Errorf("%s: %w", op, serviceerrors.ErrDeadlineExceeded)
		} else {
			log.Error("Failed to clear cart", sl.Err(err))
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}
