package queries

import (
	"context"
	"errors"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/ports"
	"snackshop/internal/pkg/errs"
	"snackshop/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery opens one order. Anonymous callers need the order password;
// cost fields are only returned to staff.
type GetOrderQuery struct {
	orderID int64
	actor   access.Actor

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID int64, actor access.Actor) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderId")
	}
	if actor == nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("actor")
	}
	return GetOrderQuery{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() int64      { return q.orderID }
func (q GetOrderQuery) Actor() access.Actor { return q.actor }

// GetOrderQueryHandler reads through the order repository so the access
// policy sees the full aggregate.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

func NewGetOrderQueryHandler(orders ports.OrderRepository) (GetOrderQueryHandler, error) {
	if orders == nil {
		return GetOrderQueryHandler{}, errs.NewValueIsRequiredError("orders")
	}
	return GetOrderQueryHandler{orders: orders}, nil
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.orders.Get(ctx, query.orderID)
	if err != nil {
		return OrderView{}, err
	}

	staff := access.IsStaff(query.actor)
	if !staff && o.IsDeleted() {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.orderID)
	}
	if err := access.AuthorizeRead(query.actor, o); err != nil {
		return OrderView{}, err
	}

	return orderView(o, staff), nil
}
