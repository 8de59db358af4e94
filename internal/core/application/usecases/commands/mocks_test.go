package commands_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/customorder"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, buyerID, sellerID kernel.UUID) *order.Order {
	t.Helper()
	price, err := kernel.NewMoney(150)
	require.NoError(t, err)
	terms, err := order.NewTerms("standard", price, 3, []string{"1 post"})
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), order.NewOrderNumber(), kernel.NewUUID(),
		buyerID, sellerID, terms, "campaign brief", time.Now(),
	)
	require.NoError(t, err)
	return o
}

func newTestProposal(t *testing.T, managerID, recipientID kernel.UUID, recipientRole kernel.Role) *customorder.CustomOrder {
	t.Helper()
	price, err := kernel.NewMoney(800)
	require.NoError(t, err)
	co, err := customorder.NewCustomOrder(
		kernel.NewUUID(), order.NewOrderNumber(), managerID, recipientID, recipientRole,
		"Launch campaign", "5 posts over 2 weeks", price, 14, time.Now(),
	)
	require.NoError(t, err)
	return co
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllOverdue(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCustomOrderRepository struct{ mock.Mock }

func (m *MockCustomOrderRepository) Add(ctx context.Context, co *customorder.CustomOrder) error {
	args := m.Called(ctx, co)
	return args.Error(0)
}

func (m *MockCustomOrderRepository) Update(ctx context.Context, co *customorder.CustomOrder) error {
	args := m.Called(ctx, co)
	return args.Error(0)
}

func (m *MockCustomOrderRepository) Get(ctx context.Context, id kernel.UUID) (*customorder.CustomOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customorder.CustomOrder), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCustomOrderUoW struct{ mock.Mock }

func (m *MockCustomOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCustomOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCustomOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCustomOrderUoW) CustomOrderRepository() ports.CustomOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomOrderRepository)
}

type MockCustomOrderUoWFactory struct{ mock.Mock }

func (m *MockCustomOrderUoWFactory) Create() commands.CustomOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomOrderUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CustomOrderRepository() ports.CustomOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomOrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockServiceCatalog struct{ mock.Mock }

func (m *MockServiceCatalog) GetPackageTerms(
	ctx context.Context,
	serviceID kernel.UUID,
	tier string,
) (ports.PackageTerms, error) {
	args := m.Called(ctx, serviceID, tier)
	return args.Get(0).(ports.PackageTerms), args.Error(1)
}

type MockRoleProvider struct{ mock.Mock }

func (m *MockRoleProvider) GetRole(ctx context.Context, userID kernel.UUID) (kernel.Role, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(kernel.Role), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) StatusChanged(ctx context.Context, change ports.StatusChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

func (m *MockNotifier) DeliveryOverdue(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
