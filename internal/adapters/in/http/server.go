package http

import (
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"

	"go.uber.org/zap"
)

// CommandHandlers groups the state-changing use cases the API exposes.
type CommandHandlers struct {
	PlaceOrder           commands.PlaceOrderCommandHandler
	RequestTransition    commands.RequestTransitionCommandHandler
	RejectOrder          commands.RejectOrderCommandHandler
	AssignRider          commands.AssignRiderCommandHandler
	RemoveRider          commands.RemoveRiderCommandHandler
	CustomerCancellation commands.RequestCustomerCancellationCommandHandler
	ReportFailedDelivery commands.ReportFailedDeliveryCommandHandler
	ResolveCancellation  commands.ResolveCancellationCommandHandler
	ResolveRefund        commands.ResolveRefundCommandHandler
	AttachPaymentProof   commands.AttachPaymentProofCommandHandler
	AttachReturnProof    commands.AttachReturnProofCommandHandler
	CreateRider          commands.CreateRiderCommandHandler
	SetRiderActive       commands.SetRiderActiveCommandHandler
}

// QueryHandlers groups the read models the API exposes.
type QueryHandlers struct {
	GetOrder                queries.GetOrderQueryHandler
	GetActiveOrders         queries.GetActiveOrdersQueryHandler
	GetOrderEvents          queries.GetOrderEventsQueryHandler
	GetCancellationRequests queries.GetCancellationRequestsQueryHandler
	GetAllRiders            queries.GetAllRidersQueryHandler
	GetPaymentProofStatus   queries.GetPaymentProofStatusQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases. The actor
// of every operation is implied by the route group it is served under.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	logger   *zap.SugaredLogger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers, logger *zap.SugaredLogger) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		logger:   logger.With("component", "http_server"),
	}
}
