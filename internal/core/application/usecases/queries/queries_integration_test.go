package queries_test

import (
	"context"
	"testing"
	"time"

	"snackshop/internal/adapters/out/postgres/customerrepo"
	"snackshop/internal/adapters/out/postgres/orderrepo"
	"snackshop/internal/adapters/out/postgres/pgtest"
	"snackshop/internal/adapters/out/postgres/userrepo"
	"snackshop/internal/core/application/usecases/queries"
	"snackshop/internal/core/domain/model/access"
	"snackshop/internal/core/domain/model/customer"
	"snackshop/internal/core/domain/model/kernel"
	"snackshop/internal/core/domain/model/order"
	"snackshop/internal/core/domain/model/session"
	"snackshop/internal/core/domain/model/user"
	"snackshop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

var (
	manager = access.Staff{UserID: 1, Role: user.RoleManager}
	admin   = access.Staff{UserID: 2, Role: user.RoleAdmin}
)

type QueriesIntegrationTestSuite struct {
	suite.Suite
	pg        *pgtest.Database
	orders    *orderrepo.GormOrderRepository
	customers *customerrepo.GormCustomerRepository
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.orders = orderrepo.NewGormOrderRepository(suite.pg.DB)
	suite.customers = customerrepo.NewGormCustomerRepository(suite.pg.DB)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) addOrder(name, phone string, small int) *order.Order {
	o, err := pgtest.NewOrder(name, phone, small, 0)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(context.Background(), o))
	return o
}

func (suite *QueriesIntegrationTestSuite) trash(o *order.Order) {
	suite.Require().NoError(o.MoveToTrash(pgtest.PlacedAt))
	suite.Require().NoError(suite.orders.Update(context.Background(), o))
}

func (suite *QueriesIntegrationTestSuite) TestListOrders() {
	ctx := context.Background()
	handler := queries.NewListOrdersQueryHandler(suite.pg.DB)
	first := suite.addOrder("김한과", "010-1111-2222", 1)
	second := suite.addOrder("이약과", "010-3333-4444", 2)
	suite.trash(suite.addOrder("박강정", "010-5555-6666", 1))
	_, err := second.ChangeStatus(order.StatusPreparing, user.RoleManager, pgtest.PlacedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Update(ctx, second))

	list := func(f queries.OrderFilter) queries.ListOrdersQueryResponse {
		page, err := queries.NewPage(1, 10)
		suite.Require().NoError(err)
		q, err := queries.NewListOrdersQuery(manager, f, page)
		suite.Require().NoError(err)
		res, err := handler.Handle(ctx, q)
		suite.Require().NoError(err)
		return res
	}

	suite.Run("active_view_hides_trash", func() {
		res := list(queries.OrderFilter{})
		suite.Equal(int64(2), res.Total)
		suite.Require().Len(res.Items, 2)
		suite.NotNil(res.Items[0].Costs)
	})

	suite.Run("trash_view", func() {
		res := list(queries.OrderFilter{Trashed: true})
		suite.Equal(int64(1), res.Total)
		suite.Equal("박강정", res.Items[0].CustomerName)
	})

	suite.Run("status_filter", func() {
		f, err := queries.NewOrderFilter("preparing", "", "", false, nil, nil)
		suite.Require().NoError(err)
		res := list(f)
		suite.Require().Len(res.Items, 1)
		suite.Equal(second.ID(), res.Items[0].ID)
	})

	suite.Run("search_by_phone_fragment", func() {
		res := list(queries.OrderFilter{Search: "1111"})
		suite.Require().Len(res.Items, 1)
		suite.Equal(first.ID(), res.Items[0].ID)
		suite.Equal("010-1111-2222", res.Items[0].Phone)
	})

	suite.Run("non_staff_is_forbidden", func() {
		q, err := queries.NewListOrdersQuery(access.Owner{UserID: 9}, queries.OrderFilter{}, queries.Page{})
		suite.Require().NoError(err)
		_, err = handler.Handle(ctx, q)
		suite.ErrorIs(err, errs.ErrForbidden)
	})
}

func (suite *QueriesIntegrationTestSuite) TestLookupOrders() {
	ctx := context.Background()
	handler := queries.NewLookupOrdersQueryHandler(suite.pg.DB)
	suite.addOrder("김한과", "010-1111-2222", 1)
	suite.addOrder("이약과", "010-3333-4444", 1)
	suite.trash(suite.addOrder("김한과", "010-9999-0000", 1))

	lookup := func(phone, name string) ([]queries.LookupOrdersQueryResponse, error) {
		q, err := queries.NewLookupOrdersQuery(phone, name)
		suite.Require().NoError(err)
		return handler.Handle(ctx, q)
	}

	suite.Run("phone_alone_matches", func() {
		res, err := lookup("01011112222", "")
		suite.Require().NoError(err)
		suite.Len(res, 1)
		suite.True(res[0].HasPassword)
	})

	suite.Run("either_field_matches", func() {
		res, err := lookup("010-3333-4444", "김한과")
		suite.Require().NoError(err)
		suite.Len(res, 2, "trashed orders are excluded")
	})

	suite.Run("partial_name_does_not_match", func() {
		_, err := lookup("", "김한")
		suite.ErrorIs(err, errs.ErrObjectNotFound)
	})

	suite.Run("both_empty_is_validation_error", func() {
		_, err := queries.NewLookupOrdersQuery(" ", "")
		suite.True(errs.IsValidation(err))
	})
}

func (suite *QueriesIntegrationTestSuite) TestMyOrders() {
	ctx := context.Background()
	ownerID := int64(7)
	o, err := pgtest.NewOrder("김한과", "010-1111-2222", 1, 0)
	suite.Require().NoError(err)
	s := o.Snapshot()
	s.OwnerID = &ownerID
	owned, err := order.RestoreOrder(s)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(ctx, owned))
	suite.addOrder("이약과", "010-3333-4444", 1)

	res, err := queries.NewMyOrdersQueryHandler(suite.pg.DB).Handle(ctx, ownerID)

	suite.Require().NoError(err)
	suite.Require().Len(res, 1)
	suite.Equal(owned.ID(), res[0].ID)
	suite.Nil(res[0].Costs)
}

func (suite *QueriesIntegrationTestSuite) TestCustomers() {
	ctx := context.Background()
	c, err := pgtest.NewCustomer("김한과", "010-1111-2222")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.customers.Add(ctx, c))
	other, err := pgtest.NewCustomer("이약과", "010-3333-4444")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.customers.Add(ctx, other))
	suite.addOrder("김한과", "010-1111-2222", 3)

	older, err := kernel.NewAddress("06236", "서울시 강남구 1", "")
	suite.Require().NoError(err)
	newer, err := kernel.NewAddress("48058", "부산시 해운대구 2", "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.customers.RememberAddress(ctx, customer.AddressEntry{
		CustomerID: c.ID(), Address: older, LastUsedAt: pgtest.PlacedAt,
	}))
	suite.Require().NoError(suite.customers.RememberAddress(ctx, customer.AddressEntry{
		CustomerID: c.ID(), Address: newer, LastUsedAt: pgtest.PlacedAt.Add(time.Hour),
	}))

	suite.Run("list_with_search", func() {
		q, err := queries.NewListCustomersQuery(manager, "이약", false, queries.Page{})
		suite.Require().NoError(err)
		res, err := queries.NewListCustomersQueryHandler(suite.pg.DB).Handle(ctx, q)
		suite.Require().NoError(err)
		suite.Equal(int64(1), res.Total)
		suite.Equal("010-3333-4444", res.Items[0].Phone)
	})

	suite.Run("get_includes_recent_orders", func() {
		res, err := queries.NewGetCustomerQueryHandler(suite.pg.DB).Handle(ctx, manager, c.ID())
		suite.Require().NoError(err)
		suite.Equal("김한과", res.Name)
		suite.Len(res.RecentOrders, 1)
	})

	suite.Run("get_missing_is_not_found", func() {
		_, err := queries.NewGetCustomerQueryHandler(suite.pg.DB).Handle(ctx, manager, 999)
		suite.ErrorIs(err, errs.ErrObjectNotFound)
	})

	suite.Run("addresses_most_recent_first", func() {
		res, err := queries.NewCustomerAddressesQueryHandler(suite.pg.DB).Handle(ctx, manager, "010-1111-2222")
		suite.Require().NoError(err)
		suite.Require().Len(res, 2)
		suite.Equal("48058", res[0].PostalCode)
	})
}

func (suite *QueriesIntegrationTestSuite) TestSmsLogs() {
	ctx := context.Background()
	o := suite.addOrder("김한과", "010-1111-2222", 1)
	suite.Require().NoError(suite.pg.DB.Exec(`
		INSERT INTO sms_notifications (order_id, phone, message, sent_at, succeeded, error)
		VALUES (?, '010-1111-2222', '접수', ?, true, ''), (?, '010-1111-2222', '발송', ?, false, 'queue down')
	`, o.ID(), pgtest.PlacedAt, o.ID(), pgtest.PlacedAt.Add(time.Minute)).Error)

	logs, err := queries.NewListSmsLogsQueryHandler(suite.pg.DB).Handle(ctx, manager, o.ID())

	suite.Require().NoError(err)
	suite.Require().Len(logs, 2)
	suite.False(logs[0].Succeeded)
	suite.Equal("queue down", logs[0].Error)
}

func (suite *QueriesIntegrationTestSuite) TestAccounts() {
	ctx := context.Background()
	users := userrepo.NewGormUserRepository(suite.pg.DB)
	sessions := userrepo.NewGormSessionRepository(suite.pg.DB)
	u, err := user.NewUser("hong", "홍길동", "", "secret", pgtest.PlacedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(users.Add(ctx, u))
	live, err := session.NewSession(u.ID(), time.Hour, pgtest.PlacedAt, "10.0.0.1", "curl")
	suite.Require().NoError(err)
	stale, err := session.NewSession(u.ID(), time.Minute, pgtest.PlacedAt.Add(-time.Hour), "10.0.0.2", "curl")
	suite.Require().NoError(err)
	suite.Require().NoError(sessions.Add(ctx, live))
	suite.Require().NoError(sessions.Add(ctx, stale))
	handler := queries.NewAccountQueryHandler(suite.pg.DB)

	suite.Run("me", func() {
		me, err := handler.Me(ctx, u.ID())
		suite.Require().NoError(err)
		suite.Equal("hong", me.Username)
		suite.Equal("user", me.Role)
	})

	suite.Run("list_users_requires_admin", func() {
		_, err := handler.ListUsers(ctx, manager)
		suite.ErrorIs(err, errs.ErrForbidden)

		list, err := handler.ListUsers(ctx, admin)
		suite.Require().NoError(err)
		suite.Len(list, 1)
	})

	suite.Run("list_sessions_skips_expired", func() {
		list, err := handler.ListSessions(ctx, admin, pgtest.PlacedAt)
		suite.Require().NoError(err)
		suite.Require().Len(list, 1)
		suite.Equal(live.ID(), list[0].ID)
		suite.Equal("hong", list[0].Username)
	})
}

func (suite *QueriesIntegrationTestSuite) TestExportAndSummary() {
	ctx := context.Background()
	suite.addOrder("김한과", "010-1111-2222", 1)
	confirmed := suite.addOrder("이약과", "010-3333-4444", 6)
	_, err := confirmed.ChangePaymentStatus(order.PaymentConfirmed, user.RoleManager, pgtest.PlacedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Update(ctx, confirmed))

	suite.Run("export_returns_all_matching_oldest_first", func() {
		rows, err := queries.NewExportOrdersQueryHandler(suite.pg.DB).Handle(ctx, manager, queries.OrderFilter{})
		suite.Require().NoError(err)
		suite.Len(rows, 2)
	})

	suite.Run("summary_lists_every_stage", func() {
		rows, err := queries.NewStatusSummaryQueryHandler(suite.pg.DB).Handle(ctx)
		suite.Require().NoError(err)
		suite.Len(rows, len(order.AllStatuses()))
		suite.Equal("pending", rows[0].Status)
		suite.Equal(int64(2), rows[0].Orders)
		suite.Equal(int64(1), rows[0].Unpaid)
		suite.Equal(int64(23000+114000), rows[0].TotalAmount)
		suite.Zero(rows[1].Orders)
	})
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
