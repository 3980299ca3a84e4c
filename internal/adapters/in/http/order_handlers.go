package http

import (
	"fmt"
	"net/http"
	"time"

	"snackshop/internal/adapters/out/spreadsheet"
	"snackshop/internal/core/application/usecases/commands"
	"snackshop/internal/core/application/usecases/queries"
	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/sms"
	"snackshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type placeOrderResponse struct {
	ID          int64  `json:"id"`
	OrderNumber string `json:"orderNumber"`
	ShippingFee int64  `json:"shippingFee"`
	TotalAmount int64  `json:"totalAmount"`
}

type transitionResponse struct {
	Changed  bool                `json:"changed"`
	Sms      *queries.SmsLogView `json:"sms,omitempty"`
	SmsError string              `json:"smsError,omitempty"`
}

func smsLogView(n sms.Notification) queries.SmsLogView {
	return queries.SmsLogView{
		ID:        n.ID,
		OrderID:   n.OrderID,
		Phone:     n.Phone,
		Message:   n.Message,
		SentAt:    n.SentAt,
		Succeeded: n.Succeeded,
		Error:     n.Error,
	}
}

// transition answers 200 once the change is committed; a failed notification
// is reported in the body.
func (s *Server) transition(c echo.Context, r commands.TransitionResult) error {
	resp := transitionResponse{Changed: r.Changed}
	if r.Notification != nil {
		v := smsLogView(*r.Notification)
		resp.Sms = &v
	}
	if r.SmsError != nil {
		resp.SmsError = r.SmsError.Error()
		s.logger.WarnContext(c.Request().Context(), "Status notification failed",
			"path", c.Path(), "id", c.Param("id"), "error", r.SmsError)
	}
	return c.JSON(http.StatusOK, resp)
}

// PlaceOrder handles POST /api/orders. A logged-in caller becomes the owner.
func (s *Server) PlaceOrder(c echo.Context) error {
	var req orderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	var ownerID *int64
	if p, ok := principal(c); ok {
		ownerID = &p.UserID
	}

	cmd, err := commands.NewPlaceOrderCommand(req.input(), req.OrderPassword, ownerID, req.TotalAmount)
	if err != nil {
		return err
	}

	res, err := s.h.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, placeOrderResponse{
		ID:          res.ID,
		OrderNumber: res.Number.String(),
		ShippingFee: res.ShippingFee,
		TotalAmount: res.TotalAmount,
	})
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(id, actor(c))
	if err != nil {
		return err
	}

	view, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// UpdateOrder handles PATCH /api/orders/:id.
func (s *Server) UpdateOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req orderRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(id, actor(c), req.input(), req.TotalAmount)
	if err != nil {
		return err
	}
	if err = s.h.UpdateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.GetOrder(c)
}

// CancelOrder handles DELETE /api/orders/:id.
func (s *Server) CancelOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(id, actor(c))
	if err != nil {
		return err
	}
	if err = s.h.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// LookupOrders handles GET /api/orders/lookup.
func (s *Server) LookupOrders(c echo.Context) error {
	query, err := queries.NewLookupOrdersQuery(c.QueryParam("phone"), c.QueryParam("name"))
	if err != nil {
		return err
	}

	found, err := s.h.LookupOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, found)
}

// MyOrders handles GET /api/orders/mine.
func (s *Server) MyOrders(c echo.Context) error {
	p, _ := principal(c)

	orders, err := s.h.MyOrders.Handle(c.Request().Context(), p.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

func orderFilter(c echo.Context) (queries.OrderFilter, error) {
	var (
		trashed  bool
		from, to time.Time
	)
	err := echo.QueryParamsBinder(c).
		Bool("trashed", &trashed).
		Time("from", &from, dateLayout).
		Time("to", &to, dateLayout).
		BindError()
	if err != nil {
		return queries.OrderFilter{}, errs.NewValueIsInvalidErrorWithCause("query", err)
	}

	var fromPtr, toPtr *time.Time
	if !from.IsZero() {
		fromPtr = &from
	}
	if !to.IsZero() {
		end := to.AddDate(0, 0, 1)
		toPtr = &end
	}

	return queries.NewOrderFilter(
		c.QueryParam("status"),
		c.QueryParam("paymentStatus"),
		c.QueryParam("search"),
		trashed,
		fromPtr,
		toPtr,
	)
}

func page(c echo.Context) (queries.Page, error) {
	number, size := 1, queries.DefaultPageSize
	err := echo.QueryParamsBinder(c).
		Int("page", &number).
		Int("pageSize", &size).
		BindError()
	if err != nil {
		return queries.Page{}, errs.NewValueIsInvalidErrorWithCause("query", err)
	}
	return queries.NewPage(number, size)
}

// ListOrders handles GET /api/orders.
func (s *Server) ListOrders(c echo.Context) error {
	filter, err := orderFilter(c)
	if err != nil {
		return err
	}
	p, err := page(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListOrdersQuery(actor(c), filter, p)
	if err != nil {
		return err
	}

	res, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// ExportOrders handles GET /api/orders/export. The default format is xlsx;
// format=json returns the same rows as JSON.
func (s *Server) ExportOrders(c echo.Context) error {
	filter, err := orderFilter(c)
	if err != nil {
		return err
	}

	orders, err := s.h.ExportOrders.Handle(c.Request().Context(), actor(c), filter)
	if err != nil {
		return err
	}

	switch c.QueryParam("format") {
	case "", "xlsx":
	case "json":
		return c.JSON(http.StatusOK, orders)
	default:
		return errs.NewValueIsInvalidError("format")
	}

	name := fmt.Sprintf("orders-%s.xlsx", s.now().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	c.Response().Header().Set(echo.HeaderContentType, xlsxContentType)
	c.Response().WriteHeader(http.StatusOK)
	return spreadsheet.WriteOrders(c.Response(), orders)
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// StatusSummary handles GET /api/orders/summary.
func (s *Server) StatusSummary(c echo.Context) error {
	if _, err := access.RequireStaff(actor(c)); err != nil {
		return err
	}

	rows, err := s.h.StatusSummary.Handle(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}

// ChangeOrderStatus handles PATCH /api/orders/:id/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req statusRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, actor(c), req.Status, req.SendSms)
	if err != nil {
		return err
	}

	res, err := s.h.ChangeOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.transition(c, res)
}

// ChangePaymentStatus handles PATCH /api/orders/:id/payment-status.
func (s *Server) ChangePaymentStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req paymentStatusRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewChangePaymentStatusCommand(id, actor(c), req.PaymentStatus, req.SendSms)
	if err != nil {
		return err
	}

	res, err := s.h.ChangePaymentStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.transition(c, res)
}

// UpdateFulfillment handles PATCH /api/orders/:id/fulfillment.
func (s *Server) UpdateFulfillment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req fulfillmentRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	f, err := req.fulfillment()
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateFulfillmentCommand(id, actor(c), f)
	if err != nil {
		return err
	}
	if err = s.h.UpdateFulfillment.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.GetOrder(c)
}

// ApplyDiscount handles PATCH /api/orders/:id/discount.
func (s *Server) ApplyDiscount(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req discountRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewApplyDiscountCommand(id, actor(c), req.Amount, req.Reason)
	if err != nil {
		return err
	}
	if err = s.h.ApplyDiscount.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.GetOrder(c)
}

// RecordPaidAmount handles PATCH /api/orders/:id/paid-amount. A null amount
// clears the recorded value.
func (s *Server) RecordPaidAmount(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req paidAmountRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRecordPaidAmountCommand(id, actor(c), req.ActualPaidAmount)
	if err != nil {
		return err
	}
	if err = s.h.RecordPaidAmount.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.GetOrder(c)
}

// DraftSms handles POST /api/orders/:id/sms/draft.
func (s *Server) DraftSms(c echo.Context) error {
	cmd, err := smsCommand(c)
	if err != nil {
		return err
	}

	msg, err := s.h.Sms.Draft(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"phone": msg.Phone, "text": msg.Text})
}

// SendSms handles POST /api/orders/:id/sms.
func (s *Server) SendSms(c echo.Context) error {
	cmd, err := smsCommand(c)
	if err != nil {
		return err
	}

	n, err := s.h.Sms.Send(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, smsLogView(n))
}

func smsCommand(c echo.Context) (commands.SendSmsCommand, error) {
	id, err := pathID(c)
	if err != nil {
		return commands.SendSmsCommand{}, err
	}
	var req smsRequest
	if err = bind(c, &req); err != nil {
		return commands.SendSmsCommand{}, err
	}
	return commands.NewSendSmsCommand(id, actor(c), req.Template, req.Text)
}

// ListSmsLogs handles GET /api/orders/:id/sms.
func (s *Server) ListSmsLogs(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	logs, err := s.h.SmsLogs.Handle(c.Request().Context(), actor(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}
