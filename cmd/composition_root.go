package cmd

import (
	"context"
	"fmt"
	"strings"

	httpin "orderflow/internal/adapters/in/http"
	"orderflow/internal/adapters/out/kafka"
	"orderflow/internal/adapters/out/logsink"
	"orderflow/internal/adapters/out/postgres"
	"orderflow/internal/adapters/out/rabbitmq"
	"orderflow/internal/adapters/out/redis"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/ports"
	"orderflow/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	defaultFee kernel.Money
	logger     *zap.SugaredLogger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *zap.SugaredLogger) (CompositionRoot, error) {
	fee, err := kernel.MoneyFromString(configs.Engine.DefaultDeliveryFee)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("engine.default_delivery_fee: %w", err)
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, postgres.WithLockTimeout(configs.DB.LockTimeout)),
		defaultFee: fee,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) riderUoWFactory() commands.RiderUoWFactory {
	return FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.defaultFee)
}

func (c *CompositionRoot) CreateRequestTransitionCommandHandler() commands.RequestTransitionCommandHandler {
	return commands.NewRequestTransitionCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	return commands.NewAssignRiderCommandHandler(c.orderUoWFactory(), c.defaultFee)
}

func (c *CompositionRoot) CreateRemoveRiderCommandHandler() commands.RemoveRiderCommandHandler {
	return commands.NewRemoveRiderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRequestCustomerCancellationCommandHandler() commands.RequestCustomerCancellationCommandHandler {
	return commands.NewRequestCustomerCancellationCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReportFailedDeliveryCommandHandler() commands.ReportFailedDeliveryCommandHandler {
	return commands.NewReportFailedDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateResolveCancellationCommandHandler() commands.ResolveCancellationCommandHandler {
	return commands.NewResolveCancellationCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateResolveRefundCommandHandler() commands.ResolveRefundCommandHandler {
	return commands.NewResolveRefundCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAttachPaymentProofCommandHandler() commands.AttachPaymentProofCommandHandler {
	return commands.NewAttachPaymentProofCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAttachReturnProofCommandHandler() commands.AttachReturnProofCommandHandler {
	return commands.NewAttachReturnProofCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateRiderCommandHandler() commands.CreateRiderCommandHandler {
	return commands.NewCreateRiderCommandHandler(c.riderUoWFactory())
}

func (c *CompositionRoot) CreateSetRiderActiveCommandHandler() commands.SetRiderActiveCommandHandler {
	return commands.NewSetRiderActiveCommandHandler(c.riderUoWFactory())
}

func (c *CompositionRoot) CreatePublishOutboxMessagesCommandHandler(publisher ports.MessagePublisher) commands.PublishOutboxMessagesCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPublishOutboxMessagesCommandHandler(f, publisher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderEventsQueryHandler() queries.GetOrderEventsQueryHandler {
	return queries.NewGetOrderEventsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCancellationRequestsQueryHandler() queries.GetCancellationRequestsQueryHandler {
	return queries.NewGetCancellationRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllRidersQueryHandler() queries.GetAllRidersQueryHandler {
	return queries.NewGetAllRidersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPaymentProofStatusQueryHandler() queries.GetPaymentProofStatusQueryHandler {
	return queries.NewGetPaymentProofStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		httpin.CommandHandlers{
			PlaceOrder:           c.CreatePlaceOrderCommandHandler(),
			RequestTransition:    c.CreateRequestTransitionCommandHandler(),
			RejectOrder:          c.CreateRejectOrderCommandHandler(),
			AssignRider:          c.CreateAssignRiderCommandHandler(),
			RemoveRider:          c.CreateRemoveRiderCommandHandler(),
			CustomerCancellation: c.CreateRequestCustomerCancellationCommandHandler(),
			ReportFailedDelivery: c.CreateReportFailedDeliveryCommandHandler(),
			ResolveCancellation:  c.CreateResolveCancellationCommandHandler(),
			ResolveRefund:        c.CreateResolveRefundCommandHandler(),
			AttachPaymentProof:   c.CreateAttachPaymentProofCommandHandler(),
			AttachReturnProof:    c.CreateAttachReturnProofCommandHandler(),
			CreateRider:          c.CreateCreateRiderCommandHandler(),
			SetRiderActive:       c.CreateSetRiderActiveCommandHandler(),
		},
		httpin.QueryHandlers{
			GetOrder:                c.CreateGetOrderQueryHandler(),
			GetActiveOrders:         c.CreateGetActiveOrdersQueryHandler(),
			GetOrderEvents:          c.CreateGetOrderEventsQueryHandler(),
			GetCancellationRequests: c.CreateGetCancellationRequestsQueryHandler(),
			GetAllRiders:            c.CreateGetAllRidersQueryHandler(),
			GetPaymentProofStatus:   c.CreateGetPaymentProofStatusQueryHandler(),
		},
		c.logger,
	)
}

// CreateMessagePublisher connects the configured notification sink. The
// returned close function releases its connection.
func (c *CompositionRoot) CreateMessagePublisher(ctx context.Context) (ports.MessagePublisher, func() error, error) {
	sink := c.configs.Sink
	kind := strings.ToLower(strings.TrimSpace(sink.Kind))
	c.logger.Infow("notification_sink_selected", "kind", kind)

	switch kind {
	case "", "log":
		return logsink.NewPublisher(c.logger), func() error { return nil }, nil
	case "kafka":
		producer, err := kafka.NewSyncProducer(sink.Kafka.ToKafkaConfig())
		if err != nil {
			return nil, nil, fmt.Errorf("kafka sink: %w", err)
		}
		publisher := kafka.NewPublisher(producer, sink.Kafka.Topic)
		return publisher, publisher.Close, nil
	case "redis":
		client, err := redis.NewClient(ctx, sink.Redis.ToRedisConfig())
		if err != nil {
			return nil, nil, fmt.Errorf("redis sink: %w", err)
		}
		return redis.NewPublisher(client, sink.Redis.Channel), client.Close, nil
	case "rabbitmq":
		conn, err := rabbitmq.Dial(sink.RabbitMQ.ToRabbitMQConfig())
		if err != nil {
			return nil, nil, fmt.Errorf("rabbitmq sink: %w", err)
		}
		return rabbitmq.NewPublisher(conn.Channel(), sink.RabbitMQ.Exchange), conn.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported notification sink: %s", sink.Kind)
	}
}

func (c *CompositionRoot) CreateOutboxRelayJob(publisher ports.MessagePublisher) *jobs.OutboxRelayJob {
	return jobs.NewOutboxRelayJob(
		c.CreatePublishOutboxMessagesCommandHandler(publisher),
		c.configs.Outbox.Schedule,
		c.configs.Outbox.BatchSize,
		c.configs.Outbox.Timeout,
		c.logger,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncRiderUoWFactory func() commands.RiderUoW

func (f FuncRiderUoWFactory) Create() commands.RiderUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
