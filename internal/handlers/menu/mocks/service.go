package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
)

type Service struct {
	mock.Mock
}

func (m *Service) Page(ctx context.Context, category string, page int) (models.MenuPage, error) {
	args := m.Called(ctx, category, page)
	return args.Get(0).(models.MenuPage), args.Error(1)
}
func (m *Service) Item(ctx context.Context, id int) (models.MenuItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.MenuItem), args.Error(1)
}
func (m *Service) AddItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(models.MenuItem), args.Error(1)
}
func (m *Service) DeleteItem(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *Service) Image(ctx context.Context, id int) ([]byte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
func (m *Service) SetImage(ctx context.Context, id int, raw []byte) error {
	args := m.Called(ctx, id, raw)
	return args.Error(0)
}
