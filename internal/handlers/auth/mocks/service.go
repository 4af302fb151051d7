package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	authservice "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/service/auth"
)

type Service struct {
	mock.Mock
}

func (m *Service) Register(ctx context.Context, username, password, confirm string) (models.User, error) {
	args := m.Called(ctx, username, password, confirm)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *Service) Login(ctx context.Context, username, password string) (authservice.Session, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(authservice.Session), args.Error(1)
}

func (m *Service) Logout(token string) {
	m.Called(token)
}
