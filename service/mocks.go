package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"coinbot/models"
)

// MockStore is a mock implementation of Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Load(ctx context.Context) (map[string]*models.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*models.Account), args.Error(1)
}

func (m *MockStore) Save(ctx context.Context, accounts map[string]*models.Account) error {
	args := m.Called(ctx, accounts)
	return args.Error(0)
}
