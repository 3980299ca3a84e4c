package commands

import (
	"context"
	"errors"
	"time"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/customer"
	"snackshop/internal/pkg/errs"
)

// ImportRowError is a skipped row. Row numbers are 1-based data rows.
type ImportRowError struct {
	Row    int
	Reason string
}

// ImportReport accounts for every row exactly once.
type ImportReport struct {
	Created int
	Updated int
	Skipped []ImportRowError
}

// ImportCustomersCommandHandler creates customers for unknown phones and
// refreshes name, address and notes of known ones. A trashed customer is
// left alone and the row is skipped. Duplicate phones within the file are
// applied in order.
type ImportCustomersCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewImportCustomersCommandHandler(uowFactory CustomerUoWFactory) ImportCustomersCommandHandler {
	return ImportCustomersCommandHandler{uowFactory: uowFactory}
}

func (h *ImportCustomersCommandHandler) Handle(ctx context.Context, cmd ImportCustomersCommand) (ImportReport, error) {
	if err := cmd.Validate(); err != nil {
		return ImportReport{}, err
	}
	if _, err := access.RequireStaff(cmd.Actor()); err != nil {
		return ImportReport{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ImportReport{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	now := time.Now()
	report := ImportReport{Skipped: make([]ImportRowError, 0)}

	for i, row := range cmd.Rows() {
		rowNum := i + 1

		profile, err := row.toProfile()
		if err != nil {
			report.Skipped = append(report.Skipped, ImportRowError{Row: rowNum, Reason: err.Error()})
			continue
		}

		existing, err := repo.FindByPhone(ctx, profile.Phone)
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			c, newErr := customer.NewCustomer(profile, now)
			if newErr != nil {
				report.Skipped = append(report.Skipped, ImportRowError{Row: rowNum, Reason: newErr.Error()})
				continue
			}
			if err = repo.Add(ctx, c); err != nil {
				return ImportReport{}, err
			}
			report.Created++
		case err != nil:
			return ImportReport{}, err
		default:
			if profile.Address == nil {
				profile.Address = existing.Address()
			}
			if updErr := existing.UpdateProfile(profile, now); updErr != nil {
				report.Skipped = append(report.Skipped, ImportRowError{Row: rowNum, Reason: updErr.Error()})
				continue
			}
			if err = repo.Update(ctx, existing); err != nil {
				return ImportReport{}, err
			}
			report.Updated++
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return ImportReport{}, err
	}

	return report, nil
}
