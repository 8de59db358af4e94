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

func TestRejectCustomOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	managerID := kernel.NewUUID()
	recipientID := kernel.NewUUID()
	proposal := newTestProposal(t, managerID, recipientID, kernel.RoleSeller)

	cmd, err := commands.NewRejectCustomOrderCommand(proposal.ID(), recipientID, "budget too low")
	require.NoError(t, err)

	customOrderRepo := new(MockCustomOrderRepository)
	uow := new(MockCustomOrderUoW)
	factory := new(MockCustomOrderUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomOrderRepository").Return(customOrderRepo).Once(),
		customOrderRepo.On("Get", ctx, proposal.ID()).Return(proposal, nil).Once(),
		customOrderRepo.On("Update", ctx, mock.AnythingOfType("*customorder.CustomOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRejectCustomOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, customorder.StatusRejected, proposal.Status())
	assert.Equal(t, "budget too low", proposal.RejectionReason())

	customOrderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRejectCustomOrderCommandHandler_Handle_NonRecipientForbidden(t *testing.T) {
	ctx := t.Context()

	managerID := kernel.NewUUID()
	recipientID := kernel.NewUUID()
	proposal := newTestProposal(t, managerID, recipientID, kernel.RoleBuyer)

	cmd, err := commands.NewRejectCustomOrderCommand(proposal.ID(), managerID, "changed my mind")
	require.NoError(t, err)

	customOrderRepo := new(MockCustomOrderRepository)
	uow := new(MockCustomOrderUoW)
	factory := new(MockCustomOrderUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomOrderRepository").Return(customOrderRepo).Once(),
		customOrderRepo.On("Get", ctx, proposal.ID()).Return(proposal, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRejectCustomOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, customorder.StatusPending, proposal.Status())
	customOrderRepo.AssertNotCalled(t, "Update")
}

func TestRejectCustomOrderCommandHandler_Handle_AlreadyAccepted(t *testing.T) {
	ctx := t.Context()

	managerID := kernel.NewUUID()
	recipientID := kernel.NewUUID()
	proposal := newTestProposal(t, managerID, recipientID, kernel.RoleSeller)
	_, err := proposal.Accept(recipientID, kernel.NewUUID(), proposal.CreatedAt())
	require.NoError(t, err)

	cmd, err := commands.NewRejectCustomOrderCommand(proposal.ID(), recipientID, "")
	require.NoError(t, err)

	customOrderRepo := new(MockCustomOrderRepository)
	uow := new(MockCustomOrderUoW)
	factory := new(MockCustomOrderUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomOrderRepository").Return(customOrderRepo).Once(),
		customOrderRepo.On("Get", ctx, proposal.ID()).Return(proposal, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRejectCustomOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, customorder.StatusAccepted, proposal.Status())
}
