package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "orderflow/internal/adapters/out/postgres"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/delivery"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/payment"
	"orderflow/internal/core/domain/model/refund"
	"orderflow/internal/core/domain/model/rider"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// QueriesTestSuite runs the read models against an in-memory SQLite store
// seeded through the repositories.
type QueriesTestSuite struct {
	suite.Suite
	db      *gorm.DB
	factory ports.UnitOfWorkFactory
}

func (suite *QueriesTestSuite) SetupTest() {
	db, err := postgres_adapter.Open(postgres_adapter.DBConfig{Driver: "sqlite", DSN: ":memory:"})
	suite.Require().NoError(err)
	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.db = db
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *QueriesTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Close())
}

func (suite *QueriesTestSuite) TestGetOrder_FullView() {
	ctx := suite.T().Context()
	o := suite.addOrder(ctx, order.Delivery)
	r := suite.addRider(ctx, "Juan")

	uow := suite.begin(ctx)
	d, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), suite.money("49"), "Blk 4 Lot 2")
	suite.Require().NoError(err)
	suite.Require().NoError(d.AssignRider(r.ID()))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, d))
	p, err := payment.NewPayment(kernel.NewUUID(), o.ID(), payment.GCash)
	suite.Require().NoError(err)
	suite.Require().NoError(p.AttachProof("https://cdn.example.com/proofs/1.jpg", time.Now()))
	suite.Require().NoError(uow.PaymentRepository().Add(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)
	view, err := queries.NewGetOrderQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(o.ID(), view.ID)
	suite.Equal(o.Number(), view.Number)
	suite.Equal(order.Delivery, view.Type)
	suite.Equal(order.Pending, view.Status)
	suite.Equal("240.00", view.Total.StringFixed(2))
	suite.Require().Len(view.Items, 1)
	suite.Equal("Halo-Halo", view.Items[0].Name)
	suite.Equal("240.00", view.Items[0].Subtotal.StringFixed(2))

	suite.Require().NotNil(view.Delivery)
	suite.Require().NotNil(view.Delivery.RiderID)
	suite.Equal(r.ID(), *view.Delivery.RiderID)
	suite.Equal("49.00", view.Delivery.Fee.StringFixed(2))

	suite.Require().NotNil(view.Payment)
	suite.True(view.Payment.IsPaid)
	suite.Nil(view.PendingRefund)
}

func (suite *QueriesTestSuite) TestGetOrder_NotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.db).Handle(suite.T().Context(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesTestSuite) TestGetActiveOrders_SkipsTerminalAndFilters() {
	ctx := suite.T().Context()
	first := suite.addOrder(ctx, order.Pickup)
	second := suite.addOrder(ctx, order.Delivery)
	done := suite.addOrder(ctx, order.Pickup)
	suite.moveTo(ctx, second, order.Queueing)
	suite.moveTo(ctx, done, order.Queueing, order.Preparing, order.Cooking, order.Ready, order.ClaimOrder, order.Completed)

	all, err := queries.NewGetActiveOrdersQuery(nil)
	suite.Require().NoError(err)
	orders, err := queries.NewGetActiveOrdersQueryHandler(suite.db).Handle(ctx, all)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal(first.ID(), orders[0].ID)
	suite.Equal(second.ID(), orders[1].ID)
	suite.Nil(orders[1].RiderID)
	suite.False(orders[1].HasCancellationRequest)

	queueing := order.Queueing
	filtered, err := queries.NewGetActiveOrdersQuery(&queueing)
	suite.Require().NoError(err)
	orders, err = queries.NewGetActiveOrdersQueryHandler(suite.db).Handle(ctx, filtered)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(order.Queueing, orders[0].Status)
}

func (suite *QueriesTestSuite) TestGetCancellationRequests_BothQueues() {
	ctx := suite.T().Context()
	refunding := suite.addOrder(ctx, order.Pickup)
	failed := suite.addOrder(ctx, order.Delivery)

	uow := suite.begin(ctx)
	o, err := uow.OrderRepository().GetForUpdate(ctx, refunding.ID())
	suite.Require().NoError(err)
	_, err = o.RequestRefund(time.Now())
	suite.Require().NoError(err)
	payout, err := refund.NewPayoutNumber("09171234567", "09171234567")
	suite.Require().NoError(err)
	r, err := refund.NewRefund(kernel.NewUUID(), o.ID(), "ordered twice", payout, order.Pending, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.RefundRepository().Add(ctx, r))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	suite.moveTo(ctx, failed, order.Queueing, order.Preparing, order.Cooking, order.Ready, order.OnDelivery)
	uow = suite.begin(ctx)
	o, err = uow.OrderRepository().GetForUpdate(ctx, failed.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(o.ReportFailedDelivery("gate locked"))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	requests, err := queries.NewGetCancellationRequestsQueryHandler(suite.db).
		Handle(ctx, queries.NewGetCancellationRequestsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(requests, 2)

	suite.Equal(queries.CustomerRefund, requests[0].Kind)
	suite.Equal(order.Refunding, requests[0].OrderStatus)
	suite.Equal("09171234567", requests[0].PayoutNumber)
	suite.NotNil(requests[0].RequestedAt)

	suite.Equal(queries.FailedDelivery, requests[1].Kind)
	suite.Equal("gate locked", requests[1].Reason)
	suite.Equal(order.OnDelivery, requests[1].OrderStatus)
}

func (suite *QueriesTestSuite) TestGetOrderEvents_AuditTrail() {
	ctx := suite.T().Context()
	o := suite.addOrder(ctx, order.Pickup)
	suite.moveTo(ctx, o, order.Queueing, order.Preparing)

	query, err := queries.NewGetOrderEventsQuery(o.ID())
	suite.Require().NoError(err)
	events, err := queries.NewGetOrderEventsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(events, 2)
	suite.Equal("Pending", events[0].From)
	suite.Equal("Queueing", events[0].To)
	suite.Equal("staff", events[0].Actor)
	suite.Equal("Preparing", events[1].To)
	suite.Nil(events[1].PublishedAt)
}

func (suite *QueriesTestSuite) TestGetAllRiders_ActiveFirst() {
	ctx := suite.T().Context()
	suite.addRider(ctx, "Zed")
	inactive := suite.addRider(ctx, "Ana")

	uow := suite.begin(ctx)
	inactive.Deactivate()
	suite.Require().NoError(uow.RiderRepository().Update(ctx, inactive))
	suite.Require().NoError(uow.Commit(ctx))

	riders, err := queries.NewGetAllRidersQueryHandler(suite.db).Handle(ctx, queries.NewGetAllRidersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(riders, 2)
	suite.Equal("Zed", riders[0].Name)
	suite.True(riders[0].Active)
	suite.Equal("Ana", riders[1].Name)
	suite.False(riders[1].Active)
}

func (suite *QueriesTestSuite) TestGetPaymentProofStatus() {
	ctx := suite.T().Context()
	o := suite.addOrder(ctx, order.Pickup)

	query, err := queries.NewGetPaymentProofStatusQuery(o.ID())
	suite.Require().NoError(err)
	h := queries.NewGetPaymentProofStatusQueryHandler(suite.db)

	_, err = h.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	uow := suite.begin(ctx)
	p, err := payment.NewPayment(kernel.NewUUID(), o.ID(), payment.Cash)
	suite.Require().NoError(err)
	suite.Require().NoError(p.AttachReturnProof("OR-2231"))
	suite.Require().NoError(uow.PaymentRepository().Add(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))

	status, err := h.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("cash", status.Method)
	suite.False(status.IsPaid)
	suite.False(status.HasProof)
	suite.True(status.HasReturnProof)
}

func (suite *QueriesTestSuite) TestZeroValueQueries_FailValidation() {
	ctx := suite.T().Context()

	_, err := queries.NewGetOrderQueryHandler(suite.db).Handle(ctx, queries.GetOrderQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetOrderQueryIsNotConstructed)
	_, err = queries.NewGetActiveOrdersQueryHandler(suite.db).Handle(ctx, queries.GetActiveOrdersQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
	_, err = queries.NewGetAllRidersQueryHandler(suite.db).Handle(ctx, queries.GetAllRidersQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetAllRidersQueryIsNotConstructed)

	completed := order.Completed
	_, err = queries.NewGetActiveOrdersQuery(&completed)
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *QueriesTestSuite) money(s string) kernel.Money {
	m, err := kernel.NewMoney(decimal.RequireFromString(s))
	suite.Require().NoError(err)
	return m
}

func (suite *QueriesTestSuite) begin(ctx context.Context) ports.UnitOfWork {
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	return uow
}

func (suite *QueriesTestSuite) addOrder(ctx context.Context, orderType order.Type) *order.Order {
	item, err := order.NewItem("Halo-Halo", 2, suite.money("120"))
	suite.Require().NoError(err)

	uow := suite.begin(ctx)
	number, err := uow.OrderRepository().NextNumber(ctx)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), number, kernel.NewUUID(), orderType, []order.Item{item}, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))
	return o
}

func (suite *QueriesTestSuite) addRider(ctx context.Context, name string) *rider.Rider {
	r, err := rider.NewRider(kernel.NewUUID(), name, "")
	suite.Require().NoError(err)

	uow := suite.begin(ctx)
	suite.Require().NoError(uow.RiderRepository().Add(ctx, r))
	suite.Require().NoError(uow.Commit(ctx))
	return r
}

func (suite *QueriesTestSuite) moveTo(ctx context.Context, o *order.Order, path ...order.Status) {
	for _, target := range path {
		uow := suite.begin(ctx)
		locked, err := uow.OrderRepository().GetForUpdate(ctx, o.ID())
		suite.Require().NoError(err)
		_, err = locked.Transition(order.TransitionRequest{Target: target, Actor: order.Staff, At: time.Now()})
		suite.Require().NoError(err)
		suite.Require().NoError(uow.OrderRepository().Update(ctx, locked))
		suite.Require().NoError(uow.Commit(ctx))
	}
}

func TestQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}
