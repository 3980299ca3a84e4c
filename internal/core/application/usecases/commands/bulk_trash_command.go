package commands

import (
	"errors"
	"fmt"
	"slices"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/pkg/errs"
	"snackshop/internal/pkg/guard"
)

const bulkTrashMaxIDs = 500

var ErrBulkTrashCommandIsNotConstructed = errors.New(
	"BulkTrashCommand must be created via NewBulkTrashCommand constructor",
)

// TrashAction is what a bulk trash command does to each item.
type TrashAction int

const (
	UnknownTrashAction TrashAction = iota
	TrashActionDelete
	TrashActionRestore
	TrashActionPurge
)

func (a TrashAction) String() string {
	switch a {
	case TrashActionDelete:
		return "delete"
	case TrashActionRestore:
		return "restore"
	case TrashActionPurge:
		return "permanent delete"
	default:
		return "unknown"
	}
}

// BulkTrashCommand applies one trash action to a list of ids. Duplicate ids
// are collapsed and the order of first appearance is kept.
type BulkTrashCommand struct {
	ids    []int64
	action TrashAction
	actor  access.Actor

	guard guard.ConstructorGuard
}

func NewBulkTrashCommand(ids []int64, action TrashAction, actor access.Actor) (BulkTrashCommand, error) {
	var joined []error
	if len(ids) == 0 {
		joined = append(joined, errs.NewValueIsRequiredError("ids"))
	}
	if len(ids) > bulkTrashMaxIDs {
		joined = append(joined, errs.NewValueIsOutOfRangeError("ids count", len(ids), 1, bulkTrashMaxIDs))
	}
	if action < TrashActionDelete || action > TrashActionPurge {
		joined = append(joined, errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%d is not a valid action", action)))
	}
	if actor == nil {
		joined = append(joined, errs.NewValueIsRequiredError("actor"))
	}

	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			joined = append(joined, errs.NewValueIsInvalidErrorWithCause("ids", fmt.Errorf("%d is not a valid id", id)))
			continue
		}
		if !slices.Contains(unique, id) {
			unique = append(unique, id)
		}
	}

	if err := errors.Join(joined...); err != nil {
		return BulkTrashCommand{}, err
	}

	return BulkTrashCommand{ids: unique, action: action, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c BulkTrashCommand) Validate() error {
	return c.guard.Validate(ErrBulkTrashCommandIsNotConstructed)
}

func (c BulkTrashCommand) IDs() []int64        { return slices.Clone(c.ids) }
func (c BulkTrashCommand) Action() TrashAction { return c.action }
func (c BulkTrashCommand) Actor() access.Actor { return c.actor }
