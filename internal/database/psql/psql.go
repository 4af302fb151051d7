package psql

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/lib/logger/sl"
)

type Storage struct {
	log *slog.Logger
	db  *sqlx.DB
}

func New(log *slog.Logger, connStr string) (*Storage, error) {
	const op = "database.psql.New"

	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		log.With("op", op).Error("Error connect to database", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wd, err := os.Getwd()
	if err != nil {
		log.With("op", op).Error("Error getting work dir", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	migrationsPath := filepath.Join(wd, "migrations")

	if err := goose.Up(db.DB, migrationsPath); err != nil {
		log.With("op", op).Error("Error applying migrations", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		log: log,
		db:  db,
	}, nil
}

// NewWithParams skips connect and migrations, for tests.
func NewWithParams(log *slog.Logger, db *sqlx.DB) *Storage {
	return &Storage{
		log: log,
		db:  db,
	}
}

func (s *Storage) Close() {
	if err := s.db.Close(); err != nil {
		s.log.Error("Error closing database", sl.Err(err))
	}
}
