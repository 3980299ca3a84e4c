// Package http exposes the order, customer, settings and account use cases
// as a JSON API over echo.
package http

import (
	"log/slog"
	"net"
	"net/http"
	"time"

	_ "snackshop/internal/adapters/in/http/docs"
	"snackshop/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Options tune the server beyond its handlers.
type Options struct {
	LookupPerMinute int
	SecureCookies   bool
	BodyLimit       string

	// TrustedProxies are the ranges whose X-Forwarded-For is believed. When
	// empty the client IP is the peer address and forwarding headers are
	// ignored.
	TrustedProxies []*net.IPNet
}

// Server routes requests to the use case handlers.
type Server struct {
	h       Handlers
	logger  *slog.Logger
	limiter *IPRateLimiter
	opts    Options
	now     func() time.Time
}

func NewServer(h Handlers, logger *slog.Logger, opts Options) *Server {
	if opts.BodyLimit == "" {
		opts.BodyLimit = "10M"
	}
	return &Server{
		h:       h,
		logger:  logger.With("component", "http"),
		limiter: NewIPRateLimiter(opts.LookupPerMinute),
		opts:    opts,
		now:     time.Now,
	}
}

// Limiter is the lookup rate limiter, pruned by a background job.
func (s *Server) Limiter() *IPRateLimiter {
	return s.limiter
}

// Echo builds the router with every route registered.
func (s *Server) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(s.logger)
	e.IPExtractor = s.ipExtractor()

	e.Use(middleware.RequestID())
	e.Use(requestLogger(s.logger))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(s.opts.BodyLimit))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", s.authenticate)
	s.registerAuthRoutes(api)
	s.registerOrderRoutes(api)
	s.registerCustomerRoutes(api)
	s.registerSettingsRoutes(api)
	s.registerAdminRoutes(api)

	return e
}

func (s *Server) ipExtractor() echo.IPExtractor {
	if len(s.opts.TrustedProxies) == 0 {
		return echo.ExtractIPDirect()
	}
	trust := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, r := range s.opts.TrustedProxies {
		trust = append(trust, echo.TrustIPRange(r))
	}
	return echo.ExtractIPFromXFFHeader(trust...)
}

func (s *Server) registerAuthRoutes(api *echo.Group) {
	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)
	api.POST("/auth/logout", s.Logout, requireLogin)
	api.GET("/auth/me", s.Me, requireLogin)
}

func (s *Server) registerOrderRoutes(api *echo.Group) {
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.ListOrders, requireLogin)
	api.GET("/orders/lookup", s.LookupOrders, s.limiter.Middleware())
	api.GET("/orders/mine", s.MyOrders, requireLogin)
	api.GET("/orders/export", s.ExportOrders, requireLogin)
	api.GET("/orders/summary", s.StatusSummary, requireLogin)
	api.POST("/orders/bulk-delete", s.bulkOrders(commands.TrashActionDelete), requireLogin)
	api.POST("/orders/bulk-restore", s.bulkOrders(commands.TrashActionRestore), requireLogin)
	api.POST("/orders/bulk-permanent-delete", s.bulkOrders(commands.TrashActionPurge), requireLogin)

	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.CancelOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus, requireLogin)
	api.PATCH("/orders/:id/payment-status", s.ChangePaymentStatus, requireLogin)
	api.PATCH("/orders/:id/fulfillment", s.UpdateFulfillment, requireLogin)
	api.PATCH("/orders/:id/discount", s.ApplyDiscount, requireLogin)
	api.PATCH("/orders/:id/paid-amount", s.RecordPaidAmount, requireLogin)
	api.POST("/orders/:id/restore", s.singleOrder(commands.TrashActionRestore), requireLogin)
	api.DELETE("/orders/:id/permanent", s.singleOrder(commands.TrashActionPurge), requireLogin)
	api.POST("/orders/:id/sms/draft", s.DraftSms, requireLogin)
	api.POST("/orders/:id/sms", s.SendSms, requireLogin)
	api.GET("/orders/:id/sms", s.ListSmsLogs, requireLogin)
}

func (s *Server) registerCustomerRoutes(api *echo.Group) {
	api.GET("/customers", s.ListCustomers, requireLogin)
	api.POST("/customers", s.CreateCustomer, requireLogin)
	api.POST("/customers/import", s.ImportCustomers, requireLogin)
	api.POST("/customers/bulk-delete", s.bulkCustomers(commands.TrashActionDelete), requireLogin)
	api.POST("/customers/bulk-restore", s.bulkCustomers(commands.TrashActionRestore), requireLogin)
	api.POST("/customers/bulk-permanent-delete", s.bulkCustomers(commands.TrashActionPurge), requireLogin)

	api.GET("/customers/:id", s.GetCustomer, requireLogin)
	api.PATCH("/customers/:id", s.UpdateCustomer, requireLogin)
	api.DELETE("/customers/:id", s.singleCustomer(commands.TrashActionDelete), requireLogin)
	api.POST("/customers/:id/restore", s.singleCustomer(commands.TrashActionRestore), requireLogin)
	api.DELETE("/customers/:id/permanent", s.singleCustomer(commands.TrashActionPurge), requireLogin)
	api.GET("/customers/:phone/addresses", s.CustomerAddresses, requireLogin)
}

func (s *Server) registerSettingsRoutes(api *echo.Group) {
	api.GET("/settings", s.GetPricing)
	api.POST("/settings", s.UpdatePricing, requireLogin)
	api.GET("/admin-settings", s.GetAdminContact, requireLogin)
	api.POST("/admin-settings", s.UpdateAdminContact, requireLogin)
}

func (s *Server) registerAdminRoutes(api *echo.Group) {
	api.GET("/users", s.ListUsers, requireLogin)
	api.PATCH("/users/:id/role", s.ChangeUserRole, requireLogin)
	api.PATCH("/users/:id/active", s.SetUserActive, requireLogin)
	api.DELETE("/users/:id/sessions", s.RevokeUserSessions, requireLogin)
	api.GET("/sessions", s.ListSessions, requireLogin)
	api.DELETE("/sessions/:id", s.RevokeSession, requireLogin)
}
