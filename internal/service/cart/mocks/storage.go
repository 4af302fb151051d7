package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
)

type Storage struct {
	mock.Mock
}

func (m *Storage) AddToCart(ctx context.Context, userId int, foodId int, quantity int) (models.CartItem, error) {
	args := m.Called(ctx, userId, foodId, quantity)
	return args.Get(0).(models.CartItem), args.Error(1)
}
func (m *Storage) RemoveFromCart(ctx context.Context, userId int, foodId int) error {
	args := m.Called(ctx, userId, foodId)
	return args.Error(0)
}
func (m *Storage) ViewCart(ctx context.Context, userId int) (models.Cart, error) {
	args := m.Called(ctx, userId)
	return args.Get(0).(models.Cart), args.Error(1)
}
func (m *Storage) ClearCart(ctx context.Context, userId int) error {
	args := m.Called(ctx, userId)
	return args.Error(0)
}
