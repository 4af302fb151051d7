package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
)

type Storage struct {
	mock.Mock
}

func (m *Storage) PlaceOrder(ctx context.Context, userId int, customerName string, teacher bool) (models.Order, error) {
	args := m.Called(ctx, userId, customerName, teacher)
	return args.Get(0).(models.Order), args.Error(1)
}
func (m *Storage) ListOrders(ctx context.Context, limit int) ([]models.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}
func (m *Storage) DeleteOrder(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *Storage) Stats(ctx context.Context) (models.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Stats), args.Error(1)
}
func (m *Storage) Analytics(ctx context.Context, topN int) (models.Analytics, error) {
	args := m.Called(ctx, topN)
	return args.Get(0).(models.Analytics), args.Error(1)
}

type Publisher struct {
	mock.Mock
}

func (m *Publisher) Publish(subject string, data []byte) error {
	args := m.Called(subject, data)
	return args.Error(0)
}
