package psql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	databaseerrors "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/database"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/lib/logger/sl"
)

func (s *Storage) ListMenu(ctx context.Context, category string) ([]models.MenuItem, error) {
	const op = "database.psql.ListMenu"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `
		SELECT id, name, price, rating, category, tags, image IS NOT NULL AS has_image
		FROM menu_items
		ORDER BY id;
	`
	args := []interface{}{}
	if category != "" {
		query = `
			SELECT id, name, price, rating, category, tags, image IS NOT NULL AS has_image
			FROM menu_items
			WHERE category=$1
			ORDER BY id;
		`
		args = append(args, category)
	}

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		log.Error("Failed to query menu", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]models.MenuItem, 0, 16)
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

func (s *Storage) MenuItem(ctx context.Context, id int) (models.MenuItem, error) {
	const op = "database.psql.MenuItem"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return models.MenuItem{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var item models.MenuItem
	err := s.db.QueryRowxContext(ctx, `
		SELECT id, name, price, rating, category, tags, image IS NOT NULL AS has_image
		FROM menu_items
		WHERE id=$1;
	`, id).Scan(&item.Id, &item.Name, &item.Price, &item.Rating,
		&item.Category, pq.Array(&item.Tags), &item.HasImage)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MenuItem{}, fmt.Errorf("%s: %w", op, databaseerrors.ErrNotFound)
		}

		log.Error("Error fetching menu item", sl.Err(err))
		return models.MenuItem{}, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

func (s *Storage) AddMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	const op = "database.psql.AddMenuItem"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return models.MenuItem{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	if item.Tags == nil {
		item.Tags = []string{}
	}

	err := s.db.QueryRowxContext(ctx, `
		INSERT INTO menu_items (name, price, rating, category, tags)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`, item.Name, item.Price, item.Rating, item.Category, pq.Array(item.Tags)).Scan(&item.Id)
	if err != nil {
		log.Error("Error inserting menu item", sl.Err(err))
		return models.MenuItem{}, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

func (s *Storage) DeleteMenuItem(ctx context.Context, id int) error {
	const op = "database.psql.DeleteMenuItem"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	// cart_items rows go away via ON DELETE CASCADE; order lines keep
	// their snapshots.
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM menu_items
		WHERE id=$1;
	`, id)
	if err != nil {
		log.Error("Error deleting menu item", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Error("Error reading rows affected", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		log.Warn("Menu item doesn't exist", sl.Err(databaseerrors.ErrNotFound))
		return fmt.Errorf("%s: %w", op, databaseerrors.ErrNotFound)
	}

	return nil
}

func (s *Storage) MenuItemImage(ctx context.Context, id int) ([]byte, error) {
	const op = "database.psql.MenuItemImage"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var image []byte
	err := s.db.QueryRowxContext(ctx, `
		SELECT image FROM menu_items
		WHERE id=$1;
	`, id).Scan(&image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, databaseerrors.ErrNotFound)
		}

		log.Error("Error fetching image", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(image) == 0 {
		return nil, fmt.Errorf("%s: %w", op, databaseerrors.ErrNotFound)
	}

	return image, nil
}

func (s *Storage) SetMenuItemImage(ctx context.Context, id int, image []byte) error {
	const op = "database.psql.SetMenuItemImage"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE menu_items
		SET image=$2
		WHERE id=$1;
	`, id, image)
	if err != nil {
		log.Error("Error updating image", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Error("Error reading rows affected", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		log.Warn("Menu item doesn't exist", sl.Err(databaseerrors.ErrNotFound))
		return fmt.Errorf("%s: %w", op, databaseerrors.ErrNotFound)
	}

	return nil
}
