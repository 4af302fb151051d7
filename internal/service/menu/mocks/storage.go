package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
)

type Storage struct {
	mock.Mock
}

func (m *Storage) ListMenu(ctx context.Context, category string) ([]models.MenuItem, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]models.MenuItem), args.Error(1)
}
func (m *Storage) MenuItem(ctx context.Context, id int) (models.MenuItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.MenuItem), args.Error(1)
}
func (m *Storage) AddMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(models.MenuItem), args.Error(1)
}
func (m *Storage) DeleteMenuItem(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *Storage) MenuItemImage(ctx context.Context, id int) ([]byte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
func (m *Storage) SetMenuItemImage(ctx context.Context, id int, image []byte) error {
	args := m.Called(ctx, id, image)
	return args.Error(0)
}
