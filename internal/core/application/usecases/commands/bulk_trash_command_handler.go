package commands

import (
	"context"
	"errors"
	"time"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/customer"
	"snackshop/internal/core/domain/model/order"
	"snackshop/internal/core/domain/model/trash"
	"snackshop/internal/core/domain/model/user"
	"snackshop/internal/core/domain/services"
	"snackshop/internal/core/ports"
	"snackshop/internal/pkg/errs"
)

type (
	// TrashStore is the slice of a repository the bulk handler needs.
	TrashStore[T trash.Item] interface {
		Get(ctx context.Context, id int64) (T, error)
		Update(ctx context.Context, item T) error
		Delete(ctx context.Context, id int64) error
	}

	TrashUoW[T trash.Item] interface {
		TxManager
		TrashStore() TrashStore[T]
	}

	TrashUoWFactory[T trash.Item] interface {
		Create() TrashUoW[T]
	}
)

// BulkFailure is an item that exists but could not take the action.
type BulkFailure struct {
	ID     int64
	Reason string
}

// BulkResult accounts for every requested id exactly once.
type BulkResult struct {
	Succeeded []int64
	NotFound  []int64
	Failed    []BulkFailure
}

// BulkTrashCommandHandler soft-deletes, restores or purges orders or
// customers in one transaction. Domain refusals (already trashed, not in
// trash) and unknown ids are reported per item and the rest is applied.
// Infrastructure errors abort the whole batch.
type BulkTrashCommandHandler[T trash.Item] struct {
	uowFactory TrashUoWFactory[T]
}

func NewBulkTrashCommandHandler[T trash.Item](uowFactory TrashUoWFactory[T]) BulkTrashCommandHandler[T] {
	return BulkTrashCommandHandler[T]{uowFactory: uowFactory}
}

func (h *BulkTrashCommandHandler[T]) Handle(ctx context.Context, cmd BulkTrashCommand) (BulkResult, error) {
	if err := cmd.Validate(); err != nil {
		return BulkResult{}, err
	}

	if err := authorizeTrashAction(cmd.Actor(), cmd.Action()); err != nil {
		return BulkResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return BulkResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	store := uow.TrashStore()
	now := time.Now()
	result := BulkResult{
		Succeeded: make([]int64, 0),
		NotFound:  make([]int64, 0),
		Failed:    make([]BulkFailure, 0),
	}

	for _, id := range cmd.IDs() {
		item, err := store.Get(ctx, id)
		if errors.Is(err, errs.ErrObjectNotFound) {
			result.NotFound = append(result.NotFound, id)
			continue
		}
		if err != nil {
			return BulkResult{}, err
		}

		if refusal := applyTrashAction(ctx, store, id, item, cmd.Action(), now); refusal != nil {
			if !errors.Is(refusal, errs.ErrConflict) {
				return BulkResult{}, refusal
			}
			result.Failed = append(result.Failed, BulkFailure{ID: id, Reason: refusal.Error()})
			continue
		}
		if f, ok := uow.(trashFollower[T]); ok {
			if err = f.followTrashAction(ctx, item, cmd.Action(), now); err != nil {
				return BulkResult{}, err
			}
		}
		result.Succeeded = append(result.Succeeded, id)
	}

	if err := uow.Commit(ctx); err != nil {
		return BulkResult{}, err
	}

	return result, nil
}

func authorizeTrashAction(actor access.Actor, action TrashAction) error {
	if action == TrashActionPurge {
		_, err := access.RequireCapability(actor, "permanently delete", user.Role.CanPurge)
		return err
	}
	_, err := access.RequireStaff(actor)
	return err
}

func applyTrashAction[T trash.Item](
	ctx context.Context,
	store TrashStore[T],
	id int64,
	item T,
	action TrashAction,
	now time.Time,
) error {
	switch action {
	case TrashActionDelete:
		if err := item.MoveToTrash(now); err != nil {
			return err
		}
		return store.Update(ctx, item)
	case TrashActionRestore:
		if err := item.RestoreFromTrash(); err != nil {
			return err
		}
		return store.Update(ctx, item)
	case TrashActionPurge:
		if err := item.EnsurePurgeable(); err != nil {
			return err
		}
		return store.Delete(ctx, id)
	default:
		return errs.NewValueIsInvalidError("action")
	}
}

// trashFollower is implemented by trash units of work whose items feed other
// aggregates. It runs after each applied action, inside the transaction.
type trashFollower[T trash.Item] interface {
	followTrashAction(ctx context.Context, item T, action TrashAction, now time.Time) error
}

// orderTrashUoW and customerTrashUoW expose the matching repository of a
// full unit of work as a TrashStore.
type orderTrashUoW struct{ OrderUoW }

func (u orderTrashUoW) TrashStore() TrashStore[*order.Order] {
	return u.OrderRepository()
}

// followTrashAction keeps customer statistics in step. A purged order was
// already taken out when it was trashed.
func (u orderTrashUoW) followTrashAction(ctx context.Context, o *order.Order, action TrashAction, now time.Time) error {
	switch action {
	case TrashActionDelete:
		return followOrderTrash(ctx, u.CustomerRepository(), services.NewCustomerLedger(), o, false, now)
	case TrashActionRestore:
		return followOrderTrash(ctx, u.CustomerRepository(), services.NewCustomerLedger(), o, true, now)
	default:
		return nil
	}
}

type customerTrashUoW struct{ CustomerUoW }

func (u customerTrashUoW) TrashStore() TrashStore[*customer.Customer] {
	return u.CustomerRepository()
}

// NewOrderTrashUoW adapts an order unit of work for the bulk handler.
func NewOrderTrashUoW(uow OrderUoW) TrashUoW[*order.Order] {
	return orderTrashUoW{uow}
}

// NewCustomerTrashUoW adapts a customer unit of work for the bulk handler.
func NewCustomerTrashUoW(uow CustomerUoW) TrashUoW[*customer.Customer] {
	return customerTrashUoW{uow}
}

var (
	_ trashFollower[*order.Order]    = orderTrashUoW{}
	_ TrashStore[*order.Order]       = ports.OrderRepository(nil)
	_ TrashStore[*customer.Customer] = ports.CustomerRepository(nil)
)
