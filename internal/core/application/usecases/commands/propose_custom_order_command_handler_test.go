package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/customorder"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func proposeCommand(t *testing.T, managerID, recipientID kernel.UUID) commands.ProposeCustomOrderCommand {
	t.Helper()
	price, err := kernel.NewMoney(800)
	require.NoError(t, err)
	cmd, err := commands.NewProposeCustomOrderCommand(
		kernel.NewUUID(), managerID, recipientID,
		"Launch campaign", "5 posts over 2 weeks", price, 14,
	)
	require.NoError(t, err)
	return cmd
}

func TestProposeCustomOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	managerID := kernel.NewUUID()
	recipientID := kernel.NewUUID()
	cmd := proposeCommand(t, managerID, recipientID)

	roles := new(MockRoleProvider)
	roles.On("GetRole", ctx, managerID).Return(kernel.RoleManager, nil).Once()
	roles.On("GetRole", ctx, recipientID).Return(kernel.RoleSeller, nil).Once()

	customOrderRepo := new(MockCustomOrderRepository)
	uow := new(MockCustomOrderUoW)
	factory := new(MockCustomOrderUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomOrderRepository").Return(customOrderRepo).Once(),
		customOrderRepo.On("Add", ctx, mock.AnythingOfType("*customorder.CustomOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewProposeCustomOrderCommandHandler(factory, roles)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)

	created := customOrderRepo.Calls[0].Arguments[1].(*customorder.CustomOrder)
	assert.Equal(t, customorder.StatusPending, created.Status())
	assert.True(t, created.ManagerID().IsEqual(managerID))
	assert.True(t, created.RecipientID().IsEqual(recipientID))
	assert.Equal(t, kernel.RoleSeller, created.RecipientRole())
	assert.Equal(t, 14, created.DeliveryDays())

	roles.AssertExpectations(t)
	customOrderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestProposeCustomOrderCommandHandler_Handle_NonManagerForbidden(t *testing.T) {
	ctx := t.Context()

	managerID := kernel.NewUUID()
	recipientID := kernel.NewUUID()
	cmd := proposeCommand(t, managerID, recipientID)

	roles := new(MockRoleProvider)
	roles.On("GetRole", ctx, managerID).Return(kernel.RoleBuyer, nil).Once()

	factory := new(MockCustomOrderUoWFactory)

	handler := commands.NewProposeCustomOrderCommandHandler(factory, roles)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestProposeCustomOrderCommandHandler_Handle_ManagerRecipientInvalid(t *testing.T) {
	ctx := t.Context()

	managerID := kernel.NewUUID()
	recipientID := kernel.NewUUID()
	cmd := proposeCommand(t, managerID, recipientID)

	roles := new(MockRoleProvider)
	roles.On("GetRole", ctx, managerID).Return(kernel.RoleManager, nil).Once()
	// proposals can only target buyers and sellers
	roles.On("GetRole", ctx, recipientID).Return(kernel.RoleManager, nil).Once()

	factory := new(MockCustomOrderUoWFactory)

	handler := commands.NewProposeCustomOrderCommandHandler(factory, roles)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestProposeCustomOrderCommandHandler_Handle_UnknownRecipient(t *testing.T) {
	ctx := t.Context()

	managerID := kernel.NewUUID()
	recipientID := kernel.NewUUID()
	cmd := proposeCommand(t, managerID, recipientID)

	roles := new(MockRoleProvider)
	roles.On("GetRole", ctx, managerID).Return(kernel.RoleManager, nil).Once()
	roles.On("GetRole", ctx, recipientID).
		Return(kernel.RoleUnknown, errs.NewObjectNotFoundError("userId", recipientID)).Once()

	factory := new(MockCustomOrderUoWFactory)

	handler := commands.NewProposeCustomOrderCommandHandler(factory, roles)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
}

func TestNewProposeCustomOrderCommand_Validation(t *testing.T) {
	managerID := kernel.NewUUID()
	recipientID := kernel.NewUUID()
	price, err := kernel.NewMoney(800)
	require.NoError(t, err)

	t.Run("title is required", func(t *testing.T) {
		_, err := commands.NewProposeCustomOrderCommand(
			kernel.NewUUID(), managerID, recipientID, "", "desc", price, 14)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("delivery days must be positive", func(t *testing.T) {
		_, err := commands.NewProposeCustomOrderCommand(
			kernel.NewUUID(), managerID, recipientID, "title", "desc", price, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.ProposeCustomOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrProposeCustomOrderCommandIsNotConstructed)
	})
}
