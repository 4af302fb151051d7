package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
)

type Service struct {
	mock.Mock
}

func (m *Service) PlaceOrder(ctx context.Context, userId int, customerName string, teacher bool) (models.Order, error) {
	args := m.Called(ctx, userId, customerName, teacher)
	return args.Get(0).(models.Order), args.Error(1)
}
func (m *Service) Orders(ctx context.Context, limit int) ([]models.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}
func (m *Service) DeleteOrder(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
