package psql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	databaseerrors "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/database"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/lib/logger/sl"
)

func (s *Storage) AddToCart(ctx context.Context, userId int, foodId int, quantity int) (models.CartItem, error) {
	const op = "database.psql.AddToCart"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return models.CartItem{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.db.Beginx()
	if err != nil {
		log.Error("Failed to begin transaction", sl.Err(err))
		return models.CartItem{}, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	var name string
	var price int64
	if err = tx.QueryRowxContext(ctx, `
		SELECT name, price FROM menu_items
		WHERE id=$1;
	`, foodId).Scan(&name, &price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn("Menu item doesn't exist", sl.Err(databaseerrors.ErrNotFound))
			return models.CartItem{}, fmt.Errorf("%s: %w", op, databaseerrors.ErrNotFound)
		}

		log.Error("Error checking menu item existence", sl.Err(err))
		return models.CartItem{}, fmt.Errorf("%s: %w", op, err)
	}

	var newQuantity int
	if err := tx.QueryRowxContext(ctx, `
		INSERT INTO cart_items (user_id, food_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, food_id) DO UPDATE SET
			quantity = cart_items.quantity + $3
		RETURNING quantity;
	`, userId, foodId, quantity).Scan(&newQuantity); err != nil {
		log.Error("Failed to upsert cart item", sl.Err(err))
		return models.CartItem{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction", sl.Err(err))
		return models.CartItem{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.CartItem{
		FoodId:   foodId,
		Name:     name,
		Price:    price,
		Quantity: newQuantity,
	}, nil
}

func (s *Storage) RemoveFromCart(ctx context.Context, userId int, foodId int) error {
	const op = "database.psql.RemoveFromCart"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE user_id=$1 AND food_id=$2;
	`, userId, foodId)
	if err != nil {
		log.Error("Failed to delete cart item", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Error("Error reading rows affected", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		log.Warn("Cart item doesn't exist", sl.Err(databaseerrors.ErrNotFound))
		return fmt.Errorf("%s: %w", op, databaseerrors.ErrNotFound)
	}

	return nil
}

func (s *Storage) ViewCart(ctx context.Context, userId int) (models.Cart, error) {
	const op = "database.psql.ViewCart"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return models.Cart{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.db.QueryxContext(ctx, `
		SELECT ci.food_id, mi.name, mi.price, ci.quantity FROM cart_items AS ci
		JOIN menu_items AS mi
		ON ci.food_id = mi.id
		WHERE ci.user_id=$1
		ORDER BY ci.food_id;
	`, userId)
	if err != nil {
		log.Error("Failed to query cart", sl.Err(err))
		return models.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var total int64
	items := make([]models.CartItem, 0, 10)
	var tmpItem models.CartItem
	for rows.Next() {
		if err := rows.Scan(&tmpItem.FoodId, &tmpItem.Name, &tmpItem.Price, &tmpItem.Quantity); err != nil {
			log.Error("Failed to scan row", sl.Err(err))
			continue
		}

		total += tmpItem.Price * int64(tmpItem.Quantity)
		items = append(items, tmpItem)
	}

	return models.Cart{
		UserId:     userId,
		Items:      items,
		ItemsTotal: total,
	}, nil
}

func (s *Storage) ClearCart(ctx context.Context, userId int) error {
	const op = "database.psql.ClearCart"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	if _, err := s.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE user_id=$1;
	`, userId); err != nil {
		log.Error("Failed to clear cart", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
