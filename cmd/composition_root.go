package cmd

import (
	"errors"
	"io"
	"log/slog"
	"time"

	httpadapter "snackshop/internal/adapters/in/http"
	"snackshop/internal/adapters/out/postgres"
	"snackshop/internal/adapters/out/postgres/orderrepo"
	"snackshop/internal/adapters/out/postgres/settingsrepo"
	"snackshop/internal/adapters/out/settingscache"
	"snackshop/internal/adapters/out/smsqueue"
	"snackshop/internal/adapters/out/token"
	"snackshop/internal/core/application/usecases/commands"
	"snackshop/internal/core/application/usecases/queries"
	"snackshop/internal/core/domain/model/customer"
	"snackshop/internal/core/domain/model/order"
	"snackshop/internal/core/domain/model/trash"
	"snackshop/internal/core/ports"
	"snackshop/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// limiterIdle is how long an IP may stay silent before its lookup bucket
// is dropped.
const limiterIdle = time.Hour

type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	settings   ports.SettingsProvider
	notifier   ports.Notifier
	tokens     ports.TokenIssuer
	closers    []io.Closer
}

// NewCompositionRoot wires the outbound adapters. Redis and RabbitMQ are
// optional: without REDIS_ADDR settings are read from PostgreSQL on every
// call, and without AMQP_URL messages are only logged.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}

	var client redis.UniversalClient
	if cfg.RedisAddr != "" {
		rc := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		client = rc
		c.closers = append(c.closers, rc)
	}
	provider, err := settingscache.NewProvider(
		settingsrepo.NewGormSettingsRepository(gormDB),
		client,
		cfg.SettingsCacheTTL,
		logger,
	)
	if err != nil {
		return nil, errors.Join(err, c.Close())
	}
	c.settings = provider

	if cfg.AMQPURL != "" {
		publisher, dialErr := smsqueue.Dial(cfg.AMQPURL, cfg.SmsQueue, logger)
		if dialErr != nil {
			return nil, errors.Join(dialErr, c.Close())
		}
		c.notifier = publisher
		c.closers = append(c.closers, publisher)
	} else {
		logger.Warn("AMQP_URL is not set, SMS messages will only be logged")
		c.notifier = smsqueue.NewLogNotifier(logger)
	}

	issuer, err := token.NewJWTIssuer(cfg.JWTSecret)
	if err != nil {
		return nil, errors.Join(err, c.Close())
	}
	c.tokens = issuer

	return c, nil
}

// Close releases the broker and cache connections.
func (c *CompositionRoot) Close() error {
	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errList = append(errList, c.closers[i].Close())
	}
	c.closers = nil
	return errors.Join(errList...)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) settingsUoWFactory() commands.SettingsUoWFactory {
	return FuncSettingsUoWFactory(func() commands.SettingsUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) smsUoWFactory() commands.SmsUoWFactory {
	return FuncSmsUoWFactory(func() commands.SmsUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.settings)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.settings)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.smsUoWFactory(), c.notifier, c.settings)
}

func (c *CompositionRoot) CreateChangePaymentStatusCommandHandler() commands.ChangePaymentStatusCommandHandler {
	return commands.NewChangePaymentStatusCommandHandler(c.orderUoWFactory(), c.smsUoWFactory(), c.notifier, c.settings)
}

func (c *CompositionRoot) CreateSendSmsCommandHandler() commands.SendSmsCommandHandler {
	return commands.NewSendSmsCommandHandler(c.smsUoWFactory(), c.notifier, c.settings)
}

func (c *CompositionRoot) CreateOrderTrashCommandHandler() commands.BulkTrashCommandHandler[*order.Order] {
	var f commands.TrashUoWFactory[*order.Order] = FuncTrashUoWFactory[*order.Order](
		func() commands.TrashUoW[*order.Order] {
			return commands.NewOrderTrashUoW(c.uowFactory.Create())
		},
	)
	return commands.NewBulkTrashCommandHandler(f)
}

func (c *CompositionRoot) CreateCustomerTrashCommandHandler() commands.BulkTrashCommandHandler[*customer.Customer] {
	var f commands.TrashUoWFactory[*customer.Customer] = FuncTrashUoWFactory[*customer.Customer](
		func() commands.TrashUoW[*customer.Customer] {
			return commands.NewCustomerTrashUoW(c.uowFactory.Create())
		},
	)
	return commands.NewBulkTrashCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateSettingsCommandHandler() commands.UpdateSettingsCommandHandler {
	return commands.NewUpdateSettingsCommandHandler(c.settingsUoWFactory(), c.settings, c.logger)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.accountUoWFactory(), c.tokens, c.cfg.SessionTTL)
}

func (c *CompositionRoot) CreateAuthenticateSessionCommandHandler() commands.AuthenticateSessionCommandHandler {
	return commands.NewAuthenticateSessionCommandHandler(c.accountUoWFactory(), c.tokens)
}

func (c *CompositionRoot) CreateRevokeSessionsCommandHandler() commands.RevokeSessionsCommandHandler {
	return commands.NewRevokeSessionsCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateStatusSummaryQueryHandler() queries.StatusSummaryQueryHandler {
	return queries.NewStatusSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateExportOrdersQueryHandler() queries.ExportOrdersQueryHandler {
	return queries.NewExportOrdersQueryHandler(c.gormDB)
}

// Handlers builds every use case the HTTP server dispatches to.
func (c *CompositionRoot) Handlers() (httpadapter.Handlers, error) {
	getOrder, err := queries.NewGetOrderQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
	if err != nil {
		return httpadapter.Handlers{}, err
	}
	settingsQuery, err := queries.NewSettingsQueryHandler(c.settings)
	if err != nil {
		return httpadapter.Handlers{}, err
	}

	placeOrder := c.CreatePlaceOrderCommandHandler()
	updateOrder := c.CreateUpdateOrderCommandHandler()
	cancelOrder := commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
	changeStatus := c.CreateChangeOrderStatusCommandHandler()
	changePayment := c.CreateChangePaymentStatusCommandHandler()
	fulfillment := commands.NewUpdateFulfillmentCommandHandler(c.orderUoWFactory())
	discount := commands.NewApplyDiscountCommandHandler(c.orderUoWFactory())
	paidAmount := commands.NewRecordPaidAmountCommandHandler(c.orderUoWFactory())
	orderTrash := c.CreateOrderTrashCommandHandler()
	customerTrash := c.CreateCustomerTrashCommandHandler()
	createCustomer := commands.NewCreateCustomerCommandHandler(c.customerUoWFactory())
	updateCustomer := commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory())
	importCustomers := commands.NewImportCustomersCommandHandler(c.customerUoWFactory())
	sendSms := c.CreateSendSmsCommandHandler()
	updateSettings := c.CreateUpdateSettingsCommandHandler()
	register := commands.NewRegisterUserCommandHandler(c.accountUoWFactory())
	login := c.CreateLoginCommandHandler()
	logout := commands.NewLogoutCommandHandler(c.accountUoWFactory())
	authenticate := c.CreateAuthenticateSessionCommandHandler()
	changeRole := commands.NewChangeUserRoleCommandHandler(c.accountUoWFactory())
	setActive := commands.NewSetUserActiveCommandHandler(c.accountUoWFactory())
	revoke := c.CreateRevokeSessionsCommandHandler()

	return httpadapter.Handlers{
		PlaceOrder:          &placeOrder,
		UpdateOrder:         &updateOrder,
		CancelOrder:         &cancelOrder,
		ChangeOrderStatus:   &changeStatus,
		ChangePaymentStatus: &changePayment,
		UpdateFulfillment:   &fulfillment,
		ApplyDiscount:       &discount,
		RecordPaidAmount:    &paidAmount,
		OrderTrash:          &orderTrash,
		CustomerTrash:       &customerTrash,
		CreateCustomer:      &createCustomer,
		UpdateCustomer:      &updateCustomer,
		ImportCustomers:     &importCustomers,
		Sms:                 &sendSms,
		UpdateSettings:      &updateSettings,
		RegisterUser:        &register,
		Login:               &login,
		Logout:              &logout,
		Authenticate:        &authenticate,
		ChangeUserRole:      &changeRole,
		SetUserActive:       &setActive,
		RevokeSessions:      &revoke,

		GetOrder:          getOrder,
		ListOrders:        queries.NewListOrdersQueryHandler(c.gormDB),
		LookupOrders:      queries.NewLookupOrdersQueryHandler(c.gormDB),
		MyOrders:          queries.NewMyOrdersQueryHandler(c.gormDB),
		ExportOrders:      c.CreateExportOrdersQueryHandler(),
		StatusSummary:     c.CreateStatusSummaryQueryHandler(),
		ListCustomers:     queries.NewListCustomersQueryHandler(c.gormDB),
		GetCustomer:       queries.NewGetCustomerQueryHandler(c.gormDB),
		CustomerAddresses: queries.NewCustomerAddressesQueryHandler(c.gormDB),
		Settings:          settingsQuery,
		SmsLogs:           queries.NewListSmsLogsQueryHandler(c.gormDB),
		Accounts:          queries.NewAccountQueryHandler(c.gormDB),
	}, nil
}

// NewServer builds the HTTP server over Handlers.
func (c *CompositionRoot) NewServer() (*httpadapter.Server, error) {
	h, err := c.Handlers()
	if err != nil {
		return nil, err
	}
	return httpadapter.NewServer(h, c.logger, httpadapter.Options{
		LookupPerMinute: c.cfg.LookupRatePerMinute,
		SecureCookies:   c.cfg.SecureCookies,
		TrustedProxies:  c.cfg.TrustedProxies,
	}), nil
}

// NewJobManager schedules the session purge and limiter pruning.
func (c *CompositionRoot) NewJobManager(server *httpadapter.Server) *jobs.JobManager {
	revoke := c.CreateRevokeSessionsCommandHandler()
	return jobs.NewJobManager(&revoke, server.Limiter(), limiterIdle, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}

type FuncSmsUoWFactory func() commands.SmsUoW

func (f FuncSmsUoWFactory) Create() commands.SmsUoW {
	return f()
}

type FuncTrashUoWFactory[T trash.Item] func() commands.TrashUoW[T]

func (f FuncTrashUoWFactory[T]) Create() commands.TrashUoW[T] {
	return f()
}
