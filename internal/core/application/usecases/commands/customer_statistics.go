package commands

import (
	"context"
	"errors"
	"time"

	"snackshop/internal/core/domain/model/customer"
	"snackshop/internal/core/domain/model/kernel"
	"snackshop/internal/core/domain/model/order"
	"snackshop/internal/core/domain/services"
	"snackshop/internal/core/ports"
	"snackshop/internal/pkg/errs"
)

// Customer statistics follow orders inside the order's transaction. An order
// whose phone has no customer record leaves statistics alone.

// recordCustomerOrder folds a placed order into the customer with its phone,
// creating the customer on first order, and remembers the address.
func recordCustomerOrder(
	ctx context.Context,
	repo ports.CustomerRepository,
	ledger services.CustomerLedger,
	o *order.Order,
) error {
	existing, err := repo.FindByPhone(ctx, o.Details().Phone)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	c, entry, err := ledger.RecordPlacement(existing, o)
	if err != nil {
		return err
	}

	if existing == nil {
		err = repo.Add(ctx, c)
	} else {
		err = repo.Update(ctx, c)
	}
	if err != nil {
		return err
	}

	entry.CustomerID = c.ID()
	return repo.RememberAddress(ctx, entry)
}

// adjustCustomerSpent moves the running total of the customer with phone
// by the change of an order total.
func adjustCustomerSpent(
	ctx context.Context,
	repo ports.CustomerRepository,
	ledger services.CustomerLedger,
	phone kernel.Phone,
	oldTotal, newTotal int64,
	now time.Time,
) error {
	if oldTotal == newTotal {
		return nil
	}

	c, err := findCustomer(ctx, repo, phone)
	if c == nil || err != nil {
		return err
	}

	ledger.RecordTotalChange(c, oldTotal, newTotal, now)
	return repo.Update(ctx, c)
}

// moveCustomerOrder hands an order whose phone was edited from the old
// customer to the customer of the new phone.
func moveCustomerOrder(
	ctx context.Context,
	repo ports.CustomerRepository,
	ledger services.CustomerLedger,
	oldPhone kernel.Phone,
	oldTotal int64,
	o *order.Order,
	now time.Time,
) error {
	previous, err := findCustomer(ctx, repo, oldPhone)
	if err != nil {
		return err
	}
	if previous != nil {
		ledger.RecordRemoval(previous, oldTotal, now)
		if err = repo.Update(ctx, previous); err != nil {
			return err
		}
	}

	return recordCustomerOrder(ctx, repo, ledger, o)
}

// followOrderTrash takes a trashed order out of its customer's statistics,
// or puts a restored one back.
func followOrderTrash(
	ctx context.Context,
	repo ports.CustomerRepository,
	ledger services.CustomerLedger,
	o *order.Order,
	restored bool,
	now time.Time,
) error {
	c, err := findCustomer(ctx, repo, o.Details().Phone)
	if c == nil || err != nil {
		return err
	}

	if restored {
		ledger.RecordRestore(c, o.TotalAmount(), now)
	} else {
		ledger.RecordRemoval(c, o.TotalAmount(), now)
	}
	return repo.Update(ctx, c)
}

// findCustomer returns nil without error when no customer has the phone.
func findCustomer(ctx context.Context, repo ports.CustomerRepository, phone kernel.Phone) (*customer.Customer, error) {
	c, err := repo.FindByPhone(ctx, phone)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
