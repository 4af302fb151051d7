package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
)

type Service struct {
	mock.Mock
}

func (m *Service) Orders(ctx context.Context, limit int) ([]models.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}
func (m *Service) Stats(ctx context.Context) (models.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Stats), args.Error(1)
}
func (m *Service) Analytics(ctx context.Context) (models.Analytics, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Analytics), args.Error(1)
}
