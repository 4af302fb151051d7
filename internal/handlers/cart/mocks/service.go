package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
)

type Service struct {
	mock.Mock
}

func (m *Service) AddToCart(ctx context.Context, userId int, foodId int, quantity int) (models.CartItem, error) {
	args := m.Called(ctx, userId, foodId, quantity)
	return args.Get(0).(models.CartItem), args.Error(1)
}
func (m *Service) RemoveFromCart(ctx context.Context, userId int, foodId int) error {
	args := m.Called(ctx, userId, foodId)
	return args.Error(0)
}
func (m *Service) ViewCart(ctx context.Context, userId int) (models.Cart, error) {
	args := m.Called(ctx, userId)
	return args.Get(0).(models.Cart), args.Error(1)
}
func (m *Service) ClearCart(ctx context.Context, userId int) error {
	args := m.Called(ctx, userId)
	return args.Error(0)
}
