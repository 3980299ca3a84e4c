package http

import (
	"errors"
	"fmt"
	"net/http"
	"slices"

	"snackshop/internal/core/application/usecases/commands"
	"snackshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type bulkFailure struct {
	ID     int64  `json:"id"`
	Reason string `json:"reason"`
}

type bulkResponse struct {
	Succeeded []int64       `json:"succeeded"`
	NotFound  []int64       `json:"notFound"`
	Failed    []bulkFailure `json:"failed"`
}

func newBulkResponse(r commands.BulkResult) bulkResponse {
	failed := make([]bulkFailure, 0, len(r.Failed))
	for _, f := range r.Failed {
		failed = append(failed, bulkFailure{ID: f.ID, Reason: f.Reason})
	}
	return bulkResponse{Succeeded: r.Succeeded, NotFound: r.NotFound, Failed: failed}
}

func (s *Server) bulkOrders(action commands.TrashAction) echo.HandlerFunc {
	return func(c echo.Context) error { return s.bulk(c, s.h.OrderTrash, action) }
}

func (s *Server) bulkCustomers(action commands.TrashAction) echo.HandlerFunc {
	return func(c echo.Context) error { return s.bulk(c, s.h.CustomerTrash, action) }
}

func (s *Server) singleOrder(action commands.TrashAction) echo.HandlerFunc {
	return func(c echo.Context) error { return s.single(c, s.h.OrderTrash, "order", action) }
}

func (s *Server) singleCustomer(action commands.TrashAction) echo.HandlerFunc {
	return func(c echo.Context) error { return s.single(c, s.h.CustomerTrash, "customer", action) }
}

func (s *Server) bulk(c echo.Context, h TrashHandler, action commands.TrashAction) error {
	var req idsRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewBulkTrashCommand(req.IDs, action, actor(c))
	if err != nil {
		return err
	}

	res, err := h.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newBulkResponse(res))
}

// single runs a trash action on the item in the path and reports a missing
// or refused item as an error instead of a bulk report.
func (s *Server) single(c echo.Context, h TrashHandler, kind string, action commands.TrashAction) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewBulkTrashCommand([]int64{id}, action, actor(c))
	if err != nil {
		return err
	}

	res, err := h.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	if slices.Contains(res.NotFound, id) {
		return errs.NewObjectNotFoundError(kind, id)
	}
	for _, f := range res.Failed {
		if f.ID == id {
			return errs.NewConflictErrorWithCause(kind, fmt.Sprintf("refused %s", action), errors.New(f.Reason))
		}
	}
	return c.NoContent(http.StatusNoContent)
}
