package http

import (
	"context"
	"time"

	"snackshop/internal/core/application/usecases/commands"
	"snackshop/internal/core/application/usecases/queries"
	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/customer"
	"snackshop/internal/core/domain/model/order"
	"snackshop/internal/core/domain/model/settings"
	"snackshop/internal/core/domain/model/sms"

	"github.com/google/uuid"
)

// The interfaces below are satisfied by pointers to the use case handlers.

type (
	PlaceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (commands.PlaceOrderResult, error)
	}

	UpdateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderCommand) error
	}

	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
	}

	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (commands.TransitionResult, error)
	}

	ChangePaymentStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangePaymentStatusCommand) (commands.TransitionResult, error)
	}

	UpdateFulfillmentHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateFulfillmentCommand) error
	}

	ApplyDiscountHandler interface {
		Handle(ctx context.Context, cmd commands.ApplyDiscountCommand) error
	}

	RecordPaidAmountHandler interface {
		Handle(ctx context.Context, cmd commands.RecordPaidAmountCommand) error
	}

	TrashHandler interface {
		Handle(ctx context.Context, cmd commands.BulkTrashCommand) (commands.BulkResult, error)
	}

	CreateCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCustomerCommand) (int64, error)
	}

	UpdateCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateCustomerCommand) error
	}

	ImportCustomersHandler interface {
		Handle(ctx context.Context, cmd commands.ImportCustomersCommand) (commands.ImportReport, error)
	}

	SmsHandler interface {
		Draft(ctx context.Context, cmd commands.SendSmsCommand) (sms.Message, error)
		Send(ctx context.Context, cmd commands.SendSmsCommand) (sms.Notification, error)
	}

	UpdateSettingsHandler interface {
		UpdatePricing(ctx context.Context, actor access.Actor, p settings.Pricing) error
		UpdateAdminContact(ctx context.Context, actor access.Actor, c settings.AdminContact) (settings.AdminContact, error)
	}

	RegisterUserHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterUserCommand) (int64, error)
	}

	LoginHandler interface {
		Handle(ctx context.Context, cmd commands.LoginCommand) (commands.LoginResult, error)
	}

	LogoutHandler interface {
		Handle(ctx context.Context, sessionID uuid.UUID) error
	}

	Authenticator interface {
		Handle(ctx context.Context, token string) (commands.Principal, error)
	}

	ChangeUserRoleHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeUserRoleCommand) error
	}

	SetUserActiveHandler interface {
		Handle(ctx context.Context, cmd commands.SetUserActiveCommand) error
	}

	RevokeSessionsHandler interface {
		RevokeSession(ctx context.Context, actor access.Actor, sessionID uuid.UUID) error
		RevokeUserSessions(ctx context.Context, actor access.Actor, userID int64) (int64, error)
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}

	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.ListOrdersQueryResponse, error)
	}

	LookupOrdersHandler interface {
		Handle(ctx context.Context, query queries.LookupOrdersQuery) ([]queries.LookupOrdersQueryResponse, error)
	}

	MyOrdersHandler interface {
		Handle(ctx context.Context, userID int64) ([]queries.OrderView, error)
	}

	ExportOrdersHandler interface {
		Handle(ctx context.Context, actor access.Actor, filter queries.OrderFilter) ([]queries.OrderView, error)
	}

	StatusSummaryHandler interface {
		Handle(ctx context.Context) ([]queries.StatusSummaryRow, error)
	}

	ListCustomersHandler interface {
		Handle(ctx context.Context, query queries.ListCustomersQuery) (queries.ListCustomersQueryResponse, error)
	}

	GetCustomerHandler interface {
		Handle(ctx context.Context, actor access.Actor, customerID int64) (queries.GetCustomerQueryResponse, error)
	}

	CustomerAddressesHandler interface {
		Handle(ctx context.Context, actor access.Actor, rawPhone string) ([]queries.AddressView, error)
	}

	SettingsQueryHandler interface {
		Pricing(ctx context.Context, actor access.Actor) (queries.PricingView, error)
		AdminContact(ctx context.Context, actor access.Actor) (queries.AdminContactView, error)
	}

	SmsLogsHandler interface {
		Handle(ctx context.Context, actor access.Actor, orderID int64) ([]queries.SmsLogView, error)
	}

	AccountQueryHandler interface {
		Me(ctx context.Context, userID int64) (queries.UserView, error)
		ListUsers(ctx context.Context, actor access.Actor) ([]queries.UserView, error)
		ListSessions(ctx context.Context, actor access.Actor, now time.Time) ([]queries.SessionView, error)
	}
)

// Handlers collects the use cases the server dispatches to.
type Handlers struct {
	PlaceOrder          PlaceOrderHandler
	UpdateOrder         UpdateOrderHandler
	CancelOrder         CancelOrderHandler
	ChangeOrderStatus   ChangeOrderStatusHandler
	ChangePaymentStatus ChangePaymentStatusHandler
	UpdateFulfillment   UpdateFulfillmentHandler
	ApplyDiscount       ApplyDiscountHandler
	RecordPaidAmount    RecordPaidAmountHandler
	OrderTrash          TrashHandler
	CustomerTrash       TrashHandler
	CreateCustomer      CreateCustomerHandler
	UpdateCustomer      UpdateCustomerHandler
	ImportCustomers     ImportCustomersHandler
	Sms                 SmsHandler
	UpdateSettings      UpdateSettingsHandler
	RegisterUser        RegisterUserHandler
	Login               LoginHandler
	Logout              LogoutHandler
	Authenticate        Authenticator
	ChangeUserRole      ChangeUserRoleHandler
	SetUserActive       SetUserActiveHandler
	RevokeSessions      RevokeSessionsHandler

	GetOrder          GetOrderHandler
	ListOrders        ListOrdersHandler
	LookupOrders      LookupOrdersHandler
	MyOrders          MyOrdersHandler
	ExportOrders      ExportOrdersHandler
	StatusSummary     StatusSummaryHandler
	ListCustomers     ListCustomersHandler
	GetCustomer       GetCustomerHandler
	CustomerAddresses CustomerAddressesHandler
	Settings          SettingsQueryHandler
	SmsLogs           SmsLogsHandler
	Accounts          AccountQueryHandler
}

var (
	_ TrashHandler    = (*commands.BulkTrashCommandHandler[*order.Order])(nil)
	_ TrashHandler    = (*commands.BulkTrashCommandHandler[*customer.Customer])(nil)
	_ SmsHandler      = (*commands.SendSmsCommandHandler)(nil)
	_ GetOrderHandler = queries.GetOrderQueryHandler{}
)
