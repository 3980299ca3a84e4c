package queries

import (
	"errors"

	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/pkg/errs"
	"snackshop/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery pages through orders for the staff dashboard, newest
// first.
type ListOrdersQuery struct {
	actor  access.Actor
	filter OrderFilter
	page   Page

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(actor access.Actor, filter OrderFilter, page Page) (ListOrdersQuery, error) {
	if actor == nil {
		return ListOrdersQuery{}, errs.NewValueIsRequiredError("actor")
	}
	if page.Size == 0 {
		page = Page{Number: 1, Size: DefaultPageSize}
	}
	return ListOrdersQuery{actor: actor, filter: filter, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ListOrdersQueryResponse is one page plus the total match count.
type ListOrdersQueryResponse struct {
	Items    []OrderView `json:"items"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
}
