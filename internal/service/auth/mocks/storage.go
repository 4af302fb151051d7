package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
)

type Storage struct {
	mock.Mock
}

func (m *Storage) CreateUser(ctx context.Context, username, passwordHash, role string) (models.User, error) {
	args := m.Called(ctx, username, passwordHash, role)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *Storage) UserByUsername(ctx context.Context, username string) (models.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(models.User), args.Error(1)
}
