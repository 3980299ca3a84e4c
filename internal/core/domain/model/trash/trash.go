// Package trash provides the soft-delete state shared by orders and customers.
//
// A trashed item stays in storage with IsDeleted set and can be restored
// until it is permanently deleted. Only trashed items may be purged.
package trash

import (
	"time"

	"snackshop/internal/pkg/errs"
)

// Item is implemented by every aggregate that embeds State.
type Item interface {
	MoveToTrash(now time.Time) error
	RestoreFromTrash() error
	EnsurePurgeable() error
	IsDeleted() bool
}

// State is embedded by trashable aggregates. Its zero value is "not deleted".
type State struct {
	deleted   bool
	deletedAt *time.Time
}

// RestoreState rebuilds the state from persisted columns.
func RestoreState(deleted bool, deletedAt *time.Time) State {
	if !deleted {
		return State{}
	}
	return State{deleted: true, deletedAt: deletedAt}
}

func (s *State) IsDeleted() bool {
	return s.deleted
}

func (s *State) DeletedAt() *time.Time {
	return s.deletedAt
}

// MoveToTrash soft-deletes the item. Trashing an item twice is a conflict so
// that bulk reports do not count it as a fresh deletion.
func (s *State) MoveToTrash(now time.Time) error {
	if s.deleted {
		return errs.NewConflictError("item", "is already in trash")
	}
	s.deleted = true
	s.deletedAt = &now
	return nil
}

// RestoreFromTrash undoes MoveToTrash.
func (s *State) RestoreFromTrash() error {
	if !s.deleted {
		return errs.NewConflictError("item", "is not in trash")
	}
	s.deleted = false
	s.deletedAt = nil
	return nil
}

// EnsurePurgeable returns a conflict unless the item is in trash.
func (s *State) EnsurePurgeable() error {
	if !s.deleted {
		return errs.NewConflictError("item", "must be moved to trash before permanent deletion")
	}
	return nil
}
