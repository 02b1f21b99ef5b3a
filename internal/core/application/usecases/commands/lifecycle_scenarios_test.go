package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	postgres_adapter "orderflow/internal/adapters/out/postgres"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/outbox"
	"orderflow/internal/core/domain/model/payment"
	"orderflow/internal/core/domain/model/refund"
	"orderflow/internal/core/domain/model/rider"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type lifecycleFactory struct{ ports.UnitOfWorkFactory }

func (f lifecycleFactory) Create() commands.UoW { return f.UnitOfWorkFactory.Create() }

type riderFactory struct{ ports.UnitOfWorkFactory }

func (f riderFactory) Create() commands.RiderUoW { return f.UnitOfWorkFactory.Create() }

type outboxFactory struct{ ports.UnitOfWorkFactory }

func (f outboxFactory) Create() commands.OutboxUoW { return f.UnitOfWorkFactory.Create() }

// recordingPublisher keeps every message it was handed.
type recordingPublisher struct {
	mu       sync.Mutex
	messages []*outbox.Message
}

func (p *recordingPublisher) Publish(_ context.Context, m *outbox.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, m)
	return nil
}

// LifecycleScenariosTestSuite drives the command handlers end to end against
// an in-memory SQLite store.
type LifecycleScenariosTestSuite struct {
	suite.Suite
	db      *gorm.DB
	ports   ports.UnitOfWorkFactory
	factory commands.UoWFactory
	fee     kernel.Money
}

func (suite *LifecycleScenariosTestSuite) SetupTest() {
	db, err := postgres_adapter.Open(postgres_adapter.DBConfig{Driver: "sqlite", DSN: ":memory:"})
	suite.Require().NoError(err)
	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.db = db
	suite.ports = postgres_adapter.NewGormUnitOfWorkFactory(db)
	suite.factory = lifecycleFactory{suite.ports}
	suite.fee, err = kernel.NewMoney(decimal.NewFromInt(49))
	suite.Require().NoError(err)
}

func (suite *LifecycleScenariosTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Close())
}

func (suite *LifecycleScenariosTestSuite) TestDeliveryOrder_RiderFrozenAfterDispatch() {
	ctx := suite.T().Context()
	o := suite.placeOrder(ctx, order.Delivery, "Blk 4 Lot 2, Brgy. San Isidro")
	riderA := suite.createRider(ctx, "Rider A")

	o = suite.advance(ctx, o.ID(), order.Queueing)
	suite.Equal(order.Queueing, o.Status())

	assign, err := commands.NewAssignRiderCommand(o.ID(), riderA.ID())
	suite.Require().NoError(err)
	_, err = commands.NewAssignRiderCommandHandler(suite.factory, suite.fee).Handle(ctx, assign)
	suite.Require().NoError(err)

	d, err := suite.ports.Create().DeliveryRepository().GetByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(d.Rider())
	suite.True(d.Rider().IsEqual(riderA.ID()))
	suite.Equal("Blk 4 Lot 2, Brgy. San Isidro", d.AddressRef())

	for _, target := range []order.Status{order.Preparing, order.Cooking, order.Ready, order.OnDelivery} {
		o = suite.advance(ctx, o.ID(), target)
	}
	suite.Equal(order.OnDelivery, o.Status())

	d, err = suite.ports.Create().DeliveryRepository().GetByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.NotNil(d.DispatchedAt())

	remove, err := commands.NewRemoveRiderCommand(o.ID())
	suite.Require().NoError(err)
	_, err = commands.NewRemoveRiderCommandHandler(suite.factory).Handle(ctx, remove)
	suite.Require().ErrorIs(err, order.ErrNotRemovable)

	var rejected *commands.RejectedError
	suite.Require().ErrorAs(err, &rejected)
	suite.Equal(order.OnDelivery, rejected.Status)

	d, err = suite.ports.Create().DeliveryRepository().GetByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(d.Rider().IsEqual(riderA.ID()))

	suite.Len(suite.unpublished(ctx), 5)
}

func (suite *LifecycleScenariosTestSuite) TestCustomerCancellation_FromQueueing() {
	ctx := suite.T().Context()
	o := suite.placeOrder(ctx, order.Pickup, "")
	suite.advance(ctx, o.ID(), order.Queueing)

	cancel, err := commands.NewRequestCustomerCancellationCommand(o.ID(), "ordered twice", "0917-123-4567", "09171234567")
	suite.Require().NoError(err)
	h := commands.NewRequestCustomerCancellationCommandHandler(suite.factory)

	o, err = h.Handle(ctx, cancel)
	suite.Require().NoError(err)
	suite.Equal(order.Refunding, o.Status())

	r, err := suite.ports.Create().RefundRepository().GetPendingByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(refund.Pending, r.Status())
	suite.Equal(order.Queueing, r.PriorStatus())
	suite.Equal("09171234567", r.Payout().String())

	// a repeated request neither fails nor opens a second refund
	o, err = h.Handle(ctx, cancel)
	suite.Require().NoError(err)
	suite.Equal(order.Refunding, o.Status())

	approve, err := commands.NewApproveRefundCommand(o.ID())
	suite.Require().NoError(err)
	o, err = commands.NewResolveRefundCommandHandler(suite.factory).Handle(ctx, approve)
	suite.Require().NoError(err)
	suite.Equal(order.Refund, o.Status())

	_, err = h.Handle(ctx, cancel)
	suite.Require().ErrorIs(err, errs.ErrInvalidTransition)
}

func (suite *LifecycleScenariosTestSuite) TestCustomerCancellation_RejectedRefundRestoresStatus() {
	ctx := suite.T().Context()
	o := suite.placeOrder(ctx, order.Delivery, "")

	cancel, err := commands.NewRequestCustomerCancellationCommand(o.ID(), "wrong items", "09181234567", "09181234567")
	suite.Require().NoError(err)
	_, err = commands.NewRequestCustomerCancellationCommandHandler(suite.factory).Handle(ctx, cancel)
	suite.Require().NoError(err)

	reject, err := commands.NewRejectRefundCommand(o.ID())
	suite.Require().NoError(err)
	o, err = commands.NewResolveRefundCommandHandler(suite.factory).Handle(ctx, reject)
	suite.Require().NoError(err)
	suite.Equal(order.Pending, o.Status())

	_, err = suite.ports.Create().RefundRepository().GetPendingByOrder(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *LifecycleScenariosTestSuite) TestRejectOrder_RequiresReturnProof() {
	ctx := suite.T().Context()
	o := suite.placeOrder(ctx, order.Pickup, "")

	bare, err := commands.NewRejectOrderCommand(o.ID(), "")
	suite.Require().NoError(err)
	h := commands.NewRejectOrderCommandHandler(suite.factory)

	_, err = h.Handle(ctx, bare)
	suite.Require().ErrorIs(err, order.ErrMissingReturnProof)
	var rejected *commands.RejectedError
	suite.Require().ErrorAs(err, &rejected)
	suite.Equal(order.Pending, rejected.Status)

	proof, err := commands.NewAttachReturnProofCommand(o.ID(), "GCASH-REF-8841")
	suite.Require().NoError(err)
	_, err = commands.NewAttachReturnProofCommandHandler(suite.factory).Handle(ctx, proof)
	suite.Require().NoError(err)

	o, err = h.Handle(ctx, bare)
	suite.Require().NoError(err)
	suite.Equal(order.Rejected, o.Status())

	p, err := suite.ports.Create().PaymentRepository().GetByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(p.ReturnProofRef())
	suite.Equal("GCASH-REF-8841", *p.ReturnProofRef())

	// rejecting again is a no-op
	o, err = h.Handle(ctx, bare)
	suite.Require().NoError(err)
	suite.Equal(order.Rejected, o.Status())
	suite.Len(suite.unpublished(ctx), 1)
}

func (suite *LifecycleScenariosTestSuite) TestRepeatedRequest_RecordsOneEvent() {
	ctx := suite.T().Context()
	o := suite.placeOrder(ctx, order.Pickup, "")

	suite.advance(ctx, o.ID(), order.Queueing)
	suite.advance(ctx, o.ID(), order.Queueing)

	messages := suite.unpublished(ctx)
	suite.Require().Len(messages, 1)

	var payload outbox.StatusChangedPayload
	suite.Require().NoError(json.Unmarshal(messages[0].Payload(), &payload))
	suite.Equal("Pending", payload.From)
	suite.Equal("Queueing", payload.To)
	suite.Equal("staff", payload.Actor)
	suite.Equal(o.Number(), payload.OrderNumber)
}

func (suite *LifecycleScenariosTestSuite) TestPublishOutboxMessages_DrainsOutbox() {
	ctx := suite.T().Context()
	o := suite.placeOrder(ctx, order.Pickup, "")
	for _, target := range []order.Status{order.Queueing, order.Preparing, order.Cooking} {
		suite.advance(ctx, o.ID(), target)
	}

	publisher := &recordingPublisher{}
	cmd, err := commands.NewPublishOutboxMessagesCommand(2)
	suite.Require().NoError(err)
	h := commands.NewPublishOutboxMessagesCommandHandler(outboxFactory{suite.ports}, publisher)

	published, err := h.Handle(ctx, cmd)
	suite.Require().NoError(err)
	suite.Equal(2, published)

	published, err = h.Handle(ctx, cmd)
	suite.Require().NoError(err)
	suite.Equal(1, published)

	published, err = h.Handle(ctx, cmd)
	suite.Require().NoError(err)
	suite.Zero(published)

	suite.Require().Len(publisher.messages, 3)
	var last outbox.StatusChangedPayload
	suite.Require().NoError(json.Unmarshal(publisher.messages[2].Payload(), &last))
	suite.Equal("Cooking", last.To)
	suite.Empty(suite.unpublished(ctx))
}

func (suite *LifecycleScenariosTestSuite) TestAssignRider_InactiveRider() {
	ctx := suite.T().Context()
	o := suite.placeOrder(ctx, order.Delivery, "")
	r := suite.createRider(ctx, "Off Duty")

	deactivate, err := commands.NewSetRiderActiveCommand(r.ID(), false)
	suite.Require().NoError(err)
	_, err = commands.NewSetRiderActiveCommandHandler(riderFactory{suite.ports}).Handle(ctx, deactivate)
	suite.Require().NoError(err)

	assign, err := commands.NewAssignRiderCommand(o.ID(), r.ID())
	suite.Require().NoError(err)
	_, err = commands.NewAssignRiderCommandHandler(suite.factory, suite.fee).Handle(ctx, assign)
	suite.Require().ErrorIs(err, rider.ErrRiderUnavailable)

	_, err = suite.ports.Create().DeliveryRepository().GetByOrder(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *LifecycleScenariosTestSuite) TestConcurrentAccept_RecordsOneEvent() {
	ctx := suite.T().Context()
	o := suite.placeOrder(ctx, order.Pickup, "")
	cmd, err := commands.NewAcceptOrderCommand(o.ID())
	suite.Require().NoError(err)
	h := commands.NewRequestTransitionCommandHandler(suite.factory)

	const workers = 8
	var wg sync.WaitGroup
	failures := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := h.Handle(ctx, cmd); err != nil {
				failures <- err
			}
		}()
	}
	wg.Wait()
	close(failures)

	for err := range failures {
		suite.True(errors.Is(err, errs.ErrStaleState) || errors.Is(err, errs.ErrBusy), "unexpected error: %v", err)
	}

	got, err := suite.ports.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Queueing, got.Status())
	suite.Len(suite.unpublished(ctx), 1)
}

func (suite *LifecycleScenariosTestSuite) TestConcurrentAssignAndRemove_SerializeOnOrder() {
	ctx := suite.T().Context()
	o := suite.placeOrder(ctx, order.Delivery, "Purok 3, Brgy. Poblacion")

	riders := make(map[kernel.UUID]bool)
	assignHandler := commands.NewAssignRiderCommandHandler(suite.factory, suite.fee)
	removeHandler := commands.NewRemoveRiderCommandHandler(suite.factory)

	const workers = 8
	var wg sync.WaitGroup
	succeeded := make(chan struct{}, workers)
	failures := make(chan error, workers)
	for i := range workers {
		var run func() error
		if i%2 == 0 {
			r := suite.createRider(ctx, "Racer")
			riders[r.ID()] = true
			cmd, err := commands.NewAssignRiderCommand(o.ID(), r.ID())
			suite.Require().NoError(err)
			run = func() error {
				_, err := assignHandler.Handle(ctx, cmd)
				return err
			}
		} else {
			cmd, err := commands.NewRemoveRiderCommand(o.ID())
			suite.Require().NoError(err)
			run = func() error {
				_, err := removeHandler.Handle(ctx, cmd)
				return err
			}
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := run(); err != nil {
				failures <- err
				return
			}
			succeeded <- struct{}{}
		}()
	}
	wg.Wait()
	close(failures)
	close(succeeded)

	for err := range failures {
		suite.True(errors.Is(err, errs.ErrStaleState) || errors.Is(err, errs.ErrBusy), "unexpected error: %v", err)
	}
	suite.Positive(len(succeeded))

	d, err := suite.ports.Create().DeliveryRepository().GetByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	if d.Rider() != nil {
		suite.True(riders[*d.Rider()], "rider %s did not take part", *d.Rider())
	}

	got, err := suite.ports.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, got.Status())
	suite.Empty(suite.unpublished(ctx))
}

func (suite *LifecycleScenariosTestSuite) placeOrder(ctx context.Context, orderType order.Type, address string) *order.Order {
	price, err := kernel.NewMoney(decimal.RequireFromString("185.00"))
	suite.Require().NoError(err)

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), orderType,
		[]commands.LineInput{{Name: "Chicken Inasal", Quantity: 2, UnitPrice: price}},
		"", nil, address, payment.GCash,
	)
	suite.Require().NoError(err)

	o, err := commands.NewPlaceOrderCommandHandler(suite.factory, suite.fee).Handle(ctx, cmd)
	suite.Require().NoError(err)
	suite.Equal(order.Pending, o.Status())
	return o
}

func (suite *LifecycleScenariosTestSuite) createRider(ctx context.Context, name string) *rider.Rider {
	cmd, err := commands.NewCreateRiderCommand(name, "09170000000")
	suite.Require().NoError(err)
	r, err := commands.NewCreateRiderCommandHandler(riderFactory{suite.ports}).Handle(ctx, cmd)
	suite.Require().NoError(err)
	return r
}

func (suite *LifecycleScenariosTestSuite) advance(ctx context.Context, id kernel.UUID, target order.Status) *order.Order {
	cmd, err := commands.NewAdvanceStatusCommand(id, target)
	suite.Require().NoError(err)
	o, err := commands.NewRequestTransitionCommandHandler(suite.factory).Handle(ctx, cmd)
	suite.Require().NoError(err)
	return o
}

func (suite *LifecycleScenariosTestSuite) unpublished(ctx context.Context) []*outbox.Message {
	messages, err := suite.ports.Create().OutboxRepository().GetUnpublished(ctx, 100)
	suite.Require().NoError(err)
	return messages
}

func TestLifecycleScenariosTestSuite(t *testing.T) {
	suite.Run(t, new(LifecycleScenariosTestSuite))
}
