package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
)

type Service struct {
	mock.Mock
}

func (m *Service) Popular(ctx context.Context, limit int) ([]models.MenuItem, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MenuItem), args.Error(1)
}
func (m *Service) TopRated(ctx context.Context, limit int) ([]models.MenuItem, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MenuItem), args.Error(1)
}
func (m *Service) Budget(ctx context.Context, maxPrice int64, limit int) ([]models.MenuItem, error) {
	args := m.Called(ctx, maxPrice, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MenuItem), args.Error(1)
}
