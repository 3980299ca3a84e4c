package http

import (
	"net/http"

	"snackshop/internal/adapters/out/spreadsheet"
	"snackshop/internal/core/application/usecases/commands"
	"snackshop/internal/core/application/usecases/queries"
	"snackshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type importRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type importResponse struct {
	Created int              `json:"created"`
	Updated int              `json:"updated"`
	Skipped []importRowError `json:"skipped"`
}

// ListCustomers handles GET /api/customers.
func (s *Server) ListCustomers(c echo.Context) error {
	var trashed bool
	if err := echo.QueryParamsBinder(c).Bool("trashed", &trashed).BindError(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("trashed", err)
	}
	p, err := page(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListCustomersQuery(actor(c), c.QueryParam("search"), trashed, p)
	if err != nil {
		return err
	}

	res, err := s.h.ListCustomers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// GetCustomer handles GET /api/customers/:id.
func (s *Server) GetCustomer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	res, err := s.h.GetCustomer.Handle(c.Request().Context(), actor(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// CreateCustomer handles POST /api/customers.
func (s *Server) CreateCustomer(c echo.Context) error {
	var req customerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateCustomerCommand(actor(c), req.input())
	if err != nil {
		return err
	}

	id, err := s.h.CreateCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]int64{"id": id})
}

// UpdateCustomer handles PATCH /api/customers/:id.
func (s *Server) UpdateCustomer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req customerRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateCustomerCommand(id, actor(c), req.input())
	if err != nil {
		return err
	}
	if err = s.h.UpdateCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.GetCustomer(c)
}

// ImportCustomers handles POST /api/customers/import with an xlsx file in
// the "file" form field.
func (s *Server) ImportCustomers(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause("file", err)
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	rows, err := spreadsheet.ReadCustomers(f)
	if err != nil {
		return err
	}

	cmd, err := commands.NewImportCustomersCommand(actor(c), rows)
	if err != nil {
		return err
	}

	report, err := s.h.ImportCustomers.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	skipped := make([]importRowError, 0, len(report.Skipped))
	for _, r := range report.Skipped {
		skipped = append(skipped, importRowError{Row: r.Row, Reason: r.Reason})
	}
	return c.JSON(http.StatusOK, importResponse{Created: report.Created, Updated: report.Updated, Skipped: skipped})
}

// CustomerAddresses handles GET /api/customers/:phone/addresses.
func (s *Server) CustomerAddresses(c echo.Context) error {
	addresses, err := s.h.CustomerAddresses.Handle(c.Request().Context(), actor(c), c.Param("phone"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, addresses)
}
