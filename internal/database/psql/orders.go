package psql

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	databaseerrors "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/database"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/lib/logger/sl"
)

// PlaceOrder turns the user's cart into an order in one transaction:
// snapshot lines from the cart, insert the order, clear the cart.
func (s *Storage) PlaceOrder(ctx context.Context, userId int, customerName string, teacher bool) (models.Order, error) {
	const op = "database.psql.PlaceOrder"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return models.Order{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.db.Beginx()
	if err != nil {
		log.Error("Failed to begin transaction", sl.Err(err))
		return models.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryxContext(ctx, `
		SELECT ci.food_id, mi.name, mi.price, ci.quantity FROM cart_items AS ci
		JOIN menu_items AS mi
		ON ci.food_id = mi.id
		WHERE ci.user_id=$1
		ORDER BY ci.food_id;
	`, userId)
	if err != nil {
		log.Error("Failed to query cart", sl.Err(err))
		return models.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	var total int64
	lines := make([]models.OrderLine, 0, 10)
	for rows.Next() {
		var line models.OrderLine
		if err := rows.Scan(&line.FoodId, &line.Name, &line.UnitPrice, &line.Quantity); err != nil {
			rows.Close()
			log.Error("Failed to scan row", sl.Err(err))
			return models.Order{}, fmt.Errorf("%s: %w", op, err)
		}
		total += line.UnitPrice * int64(line.Quantity)
		lines = append(lines, line)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		log.Error("Failed to read cart rows", sl.Err(err))
		return models.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if len(lines) == 0 {
		log.Warn("Cart is empty", sl.Err(databaseerrors.ErrEmptyCart))
		return models.Order{}, fmt.Errorf("%s: %w", op, databaseerrors.ErrEmptyCart)
	}

	order := models.Order{
		CustomerName: customerName,
		Teacher:      teacher,
		Lines:        lines,
		Total:        total,
	}
	if err := tx.QueryRowxContext(ctx, `
		INSERT INTO orders (customer_name, teacher, total)
		VALUES ($1, $2, $3)
		RETURNING id, placed_at;
	`, customerName, teacher, total).Scan(&order.Id, &order.PlacedAt); err != nil {
		log.Error("Failed to insert order", sl.Err(err))
		return models.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, line := range lines {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_lines (order_id, food_id, name, unit_price, quantity)
			VALUES ($1, $2, $3, $4, $5);
		`, order.Id, line.FoodId, line.Name, line.UnitPrice, line.Quantity); err != nil {
			log.Error("Failed to insert order line", sl.Err(err))
			return models.Order{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE user_id=$1;
	`, userId); err != nil {
		log.Error("Failed to clear cart", sl.Err(err))
		return models.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction", sl.Err(err))
		return models.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	return order, nil
}

// ListOrders returns orders newest first. limit <= 0 means all.
func (s *Storage) ListOrders(ctx context.Context, limit int) ([]models.Order, error) {
	const op = "database.psql.ListOrders"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `
		SELECT id, customer_name, teacher, total, placed_at FROM orders
		ORDER BY id DESC;
	`
	args := []interface{}{}
	if limit > 0 {
		query = `
			SELECT id, customer_name, teacher, total, placed_at FROM orders
			ORDER BY id DESC
			LIMIT $1;
		`
		args = append(args, limit)
	}

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		log.Error("Failed to query orders", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0, 10)
	ids := make([]int64, 0, 10)
	for rows.Next() {
		var order models.Order
		if err := rows.StructScan(&order); err != nil {
			log.Error("Failed to scan row", sl.Err(err))
			continue
		}
		order.Lines = []models.OrderLine{}
		orders = append(orders, order)
		ids = append(ids, int64(order.Id))
	}
	if err := rows.Err(); err != nil {
		log.Error("Failed to read order rows", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	lineRows, err := s.db.QueryxContext(ctx, `
		SELECT order_id, food_id, name, unit_price, quantity FROM order_lines
		WHERE order_id = ANY($1);
	`, pq.Array(ids))
	if err != nil {
		log.Error("Failed to query order lines", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer lineRows.Close()

	byId := make(map[int]int, len(orders))
	for i, order := range orders {
		byId[order.Id] = i
	}
	for lineRows.Next() {
		var orderId int
		var line models.OrderLine
		if err := lineRows.Scan(&orderId, &line.FoodId, &line.Name, &line.UnitPrice, &line.Quantity); err != nil {
			log.Error("Failed to scan line row", sl.Err(err))
			continue
		}
		if i, ok := byId[orderId]; ok {
			orders[i].Lines = append(orders[i].Lines, line)
		}
	}

	return orders, lineRows.Err()
}

func (s *Storage) DeleteOrder(ctx context.Context, id int) error {
	const op = "database.psql.DeleteOrder"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.db.ExecContext(ctx, `
		DELETE FROM orders
		WHERE id=$1;
	`, id)
	if err != nil {
		log.Error("Failed to delete order", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Error("Error reading rows affected", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		log.Warn("Order doesn't exist", sl.Err(databaseerrors.ErrNotFound))
		return fmt.Errorf("%s: %w", op, databaseerrors.ErrNotFound)
	}

	return nil
}

func (s *Storage) Stats(ctx context.Context) (models.Stats, error) {
	const op = "database.psql.Stats"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return models.Stats{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var stats models.Stats
	err := s.db.QueryRowxContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM orders)::int,
			(SELECT COALESCE(SUM(total), 0) FROM orders)::bigint,
			(SELECT COUNT(*) FROM menu_items)::int;
	`).Scan(&stats.TotalOrders, &stats.Revenue, &stats.MenuItems)
	if err != nil {
		log.Error("Failed to query stats", sl.Err(err))
		return models.Stats{}, fmt.Errorf("%s: %w", op, err)
	}

	if stats.TotalOrders > 0 {
		stats.AvgOrder = stats.Revenue / int64(stats.TotalOrders)
	}

	return stats, nil
}

func (s *Storage) Analytics(ctx context.Context, topN int) (models.Analytics, error) {
	const op = "database.psql.Analytics"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return models.Analytics{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.db.QueryxContext(ctx, `
		SELECT food_id, name, SUM(quantity)::int AS ordered FROM order_lines
		GROUP BY food_id, name
		ORDER BY ordered DESC, food_id
		LIMIT $1;
	`, topN)
	if err != nil {
		log.Error("Failed to query top items", sl.Err(err))
		return models.Analytics{}, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	analytics := models.Analytics{TopItems: make([]models.ItemCount, 0, topN)}
	for rows.Next() {
		var count models.ItemCount
		if err := rows.StructScan(&count); err != nil {
			log.Error("Failed to scan row", sl.Err(err))
			continue
		}
		analytics.TopItems = append(analytics.TopItems, count)
	}
	if err := rows.Err(); err != nil {
		log.Error("Failed to read top item rows", sl.Err(err))
		return models.Analytics{}, fmt.Errorf("%s: %w", op, err)
	}

	err = s.db.QueryRowxContext(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE teacher)::int,
			COUNT(*) FILTER (WHERE NOT teacher)::int
		FROM orders;
	`).Scan(&analytics.Teachers, &analytics.Students)
	if err != nil {
		log.Error("Failed to query customer distribution", sl.Err(err))
		return models.Analytics{}, fmt.Errorf("%s: %w", op, err)
	}

	return analytics, nil
}

// PopularItems returns menu items ranked by total ordered quantity.
func (s *Storage) PopularItems(ctx context.Context, limit int) ([]models.MenuItem, error) {
	const op = "database.psql.PopularItems"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.db.QueryxContext(ctx, `
		SELECT mi.id, mi.name, mi.price, mi.rating, mi.category, mi.tags,
			mi.image IS NOT NULL AS has_image
		FROM menu_items AS mi
		JOIN (
			SELECT food_id, SUM(quantity) AS ordered FROM order_lines
			GROUP BY food_id
		) AS ol
		ON mi.id = ol.food_id
		ORDER BY ol.ordered DESC, mi.id
		LIMIT $1;
	`, limit)
	if err != nil {
		log.Error("Failed to query popular items", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]models.MenuItem, 0, limit)
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.Id, &item.Name, &item.Price, &item.Rating,
			&item.Category, pq.Array(&item.Tags), &item.HasImage); err != nil {
			log.Error("Failed to scan row", sl.Err(err))
			continue
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
