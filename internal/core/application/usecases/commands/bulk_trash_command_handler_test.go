package commands_test

import (
	"errors"
	"testing"

	"snackshop/internal/core/application/usecases/commands"
	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/user"
	"snackshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkTrashCommandHandler_DeleteCustomersWithMissingID(t *testing.T) {
	ctx := t.Context()
	c1 := storedCustomer(t, 1, "010-1111-1111")
	c2 := storedCustomer(t, 2, "010-2222-2222")

	repo := new(MockCustomerRepository)
	repo.On("Get", ctx, int64(1)).Return(c1, nil).Once()
	repo.On("Get", ctx, int64(2)).Return(c2, nil).Once()
	repo.On("Get", ctx, int64(3)).Return(nil, errs.NewObjectNotFoundError("id", int64(3))).Once()
	repo.On("Update", ctx, c1).Return(nil).Once()
	repo.On("Update", ctx, c2).Return(nil).Once()

	uow := new(MockUoW)
	uow.expectTx(ctx, true)
	uow.On("CustomerRepository").Return(repo)
	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewBulkTrashCommand([]int64{1, 2, 3}, commands.TrashActionDelete, manager)
	require.NoError(t, err)

	h := commands.NewBulkTrashCommandHandler(customerTrashFactory{inner: factory})
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, result.Succeeded)
	assert.Equal(t, []int64{3}, result.NotFound)
	assert.Empty(t, result.Failed)
	assert.True(t, c1.IsDeleted())
	assert.True(t, c2.IsDeleted())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestBulkTrashCommandHandler_ReportsConflictsPerItem(t *testing.T) {
	ctx := t.Context()
	trashed := storedCustomer(t, 1, "010-1111-1111")
	require.NoError(t, trashed.MoveToTrash(placedAt))
	live := storedCustomer(t, 2, "010-2222-2222")

	repo := new(MockCustomerRepository)
	repo.On("Get", ctx, int64(1)).Return(trashed, nil)
	repo.On("Get", ctx, int64(2)).Return(live, nil)
	repo.On("Update", ctx, trashed).Return(nil).Once()

	uow := new(MockUoW)
	uow.expectTx(ctx, true)
	uow.On("CustomerRepository").Return(repo)
	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow)

	cmd, err := commands.NewBulkTrashCommand([]int64{1, 2}, commands.TrashActionRestore, manager)
	require.NoError(t, err)

	h := commands.NewBulkTrashCommandHandler(customerTrashFactory{inner: factory})
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, result.Succeeded)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, int64(2), result.Failed[0].ID)
	assert.Contains(t, result.Failed[0].Reason, "not in trash")
	assert.False(t, trashed.IsDeleted())
}

func TestBulkTrashCommandHandler_PurgeOrders(t *testing.T) {
	ctx := t.Context()
	admin := access.Staff{UserID: 1, Role: user.RoleAdmin}
	inTrash := storedOrder(t, 10, nil)
	require.NoError(t, inTrash.MoveToTrash(placedAt))
	live := storedOrder(t, 11, nil)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, int64(10)).Return(inTrash, nil)
	repo.On("Get", ctx, int64(11)).Return(live, nil)
	repo.On("Delete", ctx, int64(10)).Return(nil).Once()

	uow := new(MockUoW)
	uow.expectTx(ctx, true)
	uow.On("OrderRepository").Return(repo)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	cmd, err := commands.NewBulkTrashCommand([]int64{10, 11}, commands.TrashActionPurge, admin)
	require.NoError(t, err)

	h := commands.NewBulkTrashCommandHandler(orderTrashFactory{inner: factory})
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, []int64{10}, result.Succeeded)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, int64(11), result.Failed[0].ID)
	repo.AssertNotCalled(t, "Delete", ctx, int64(11))
}

func TestBulkTrashCommandHandler_OrderTrashMovesCustomerStatistics(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, 10, nil)
	c := storedCustomer(t, 3, "010-1234-5678")
	c.RecordOrder("김한과", o.Details().Address, o.TotalAmount(), placedAt)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, int64(10)).Return(o, nil)
	repo.On("Update", ctx, o).Return(nil)
	customerRepo := new(MockCustomerRepository)
	customerRepo.On("FindByPhone", ctx, o.Details().Phone).Return(c, nil)
	customerRepo.On("Update", ctx, c).Return(nil)

	uow := new(MockUoW)
	uow.expectTx(ctx, false)
	uow.On("Commit", ctx).Return(nil).Twice()
	uow.On("OrderRepository").Return(repo)
	uow.On("CustomerRepository").Return(customerRepo)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)
	h := commands.NewBulkTrashCommandHandler(orderTrashFactory{inner: factory})

	del, err := commands.NewBulkTrashCommand([]int64{10}, commands.TrashActionDelete, manager)
	require.NoError(t, err)
	_, err = h.Handle(ctx, del)
	require.NoError(t, err)

	assert.Equal(t, 0, c.OrderCount())
	assert.Equal(t, int64(0), c.TotalSpent())

	restore, err := commands.NewBulkTrashCommand([]int64{10}, commands.TrashActionRestore, manager)
	require.NoError(t, err)
	_, err = h.Handle(ctx, restore)
	require.NoError(t, err)

	assert.Equal(t, 1, c.OrderCount())
	assert.Equal(t, o.TotalAmount(), c.TotalSpent())
	customerRepo.AssertNumberOfCalls(t, "Update", 2)
}

func TestBulkTrashCommandHandler_PurgeRequiresAdmin(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	cmd, err := commands.NewBulkTrashCommand([]int64{10}, commands.TrashActionPurge, manager)
	require.NoError(t, err)

	h := commands.NewBulkTrashCommandHandler(orderTrashFactory{inner: factory})
	_, err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestBulkTrashCommandHandler_InfrastructureErrorAborts(t *testing.T) {
	ctx := t.Context()
	repo := new(MockOrderRepository)
	repo.On("Get", ctx, int64(10)).Return(nil, errors.New("connection reset"))

	uow := new(MockUoW)
	uow.expectTx(ctx, false)
	uow.On("OrderRepository").Return(repo)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	cmd, err := commands.NewBulkTrashCommand([]int64{10, 11}, commands.TrashActionDelete, manager)
	require.NoError(t, err)

	h := commands.NewBulkTrashCommandHandler(orderTrashFactory{inner: factory})
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
	repo.AssertNotCalled(t, "Get", ctx, int64(11))
}
