package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	cartDomain "github.com/ridloal/agri-storefront/internal/cart/domain"
)

type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetCart(ctx context.Context, sessionID string) cartDomain.Snapshot {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(cartDomain.Snapshot)
}

func (m *MockCartService) AddToCart(ctx context.Context, sessionID string, productID int) (cartDomain.Snapshot, error) {
	args := m.Called(ctx, sessionID, productID)
	return args.Get(0).(cartDomain.Snapshot), args.Error(1)
}

func (m *MockCartService) RemoveFromCart(ctx context.Context, sessionID string, productID int) cartDomain.Snapshot {
	args := m.Called(ctx, sessionID, productID)
	return args.Get(0).(cartDomain.Snapshot)
}
