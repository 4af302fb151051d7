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

// uniqueViolation is the postgres error code for unique constraint violations.
const uniqueViolation = "23505"

func (s *Storage) CreateUser(ctx context.Context, username, passwordHash, role string) (models.User, error) {
	const op = "database.psql.CreateUser"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return models.User{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var user models.User
	err := s.db.QueryRowxContext(ctx, `
		INSERT INTO users (username, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, username, password_hash, role, created_at;
	`, username, passwordHash, role).StructScan(&user)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			log.Warn("Username already taken", sl.Err(databaseerrors.ErrAlreadyExists))
			return models.User{}, fmt.Errorf("%s: %w", op, databaseerrors.ErrAlreadyExists)
		}

		log.Error("Error creating user", sl.Err(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (s *Storage) UserByUsername(ctx context.Context, username string) (models.User, error) {
	const op = "database.psql.UserByUsername"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return models.User{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var user models.User
	err := s.db.QueryRowxContext(ctx, `
		SELECT id, username, password_hash, role, created_at FROM users
		WHERE username=$1;
	`, username).StructScan(&user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("%s: %w", op, databaseerrors.ErrNotFound)
		}

		log.Error("Error fetching user", sl.Err(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}
