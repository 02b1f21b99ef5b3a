package order

// workflow names the operation that owns an edge. Direct edges have an empty
// workflow and can be requested through Order.Transition.
type workflow string

const (
	direct                     workflow = ""
	workflowCustomerCancel     workflow = "customer cancellation"
	workflowApproveCancel      workflow = "cancellation approval"
	workflowRefundAdjudication workflow = "refund adjudication"
)

type edgeGuard int

const (
	noGuard edgeGuard = iota
	requiresReturnProof
	deliveryOnly
	pickupOnly
)

type edge struct {
	actor    Actor
	workflow workflow
	guard    edgeGuard
}

// legalEdges is the complete transition table. Any pair missing here is illegal.
var legalEdges = map[Status]map[Status]edge{
	Pending: {
		Queueing:  {actor: Staff},
		Rejected:  {actor: Staff, guard: requiresReturnProof},
		Refunding: {actor: Customer, workflow: workflowCustomerCancel},
	},
	Queueing: {
		Preparing: {actor: Staff},
		Refunding: {actor: Customer, workflow: workflowCustomerCancel},
	},
	Preparing: {
		Cooking: {actor: Staff},
	},
	Cooking: {
		Ready: {actor: Staff},
	},
	Ready: {
		OnDelivery: {actor: Staff, guard: deliveryOnly},
		ClaimOrder: {actor: Staff, guard: pickupOnly},
	},
	ClaimOrder: {
		Completed: {actor: Staff},
	},
	OnDelivery: {
		Completed: {actor: Staff},
		Cancelled: {actor: Staff, workflow: workflowApproveCancel},
	},
	Refunding: {
		Refund:   {actor: Staff, workflow: workflowRefundAdjudication},
		Pending:  {actor: Staff, workflow: workflowRefundAdjudication},
		Queueing: {actor: Staff, workflow: workflowRefundAdjudication},
	},
}

func lookupEdge(from, to Status) (edge, bool) {
	targets, ok := legalEdges[from]
	if !ok {
		return edge{}, false
	}
	e, ok := targets[to]
	return e, ok
}

// CanTransition reports whether actor may move an order from one status to
// another through a direct request. Workflow-only edges report false.
func CanTransition(from, to Status, actor Actor) bool {
	e, ok := lookupEdge(from, to)
	return ok && e.actor == actor && e.workflow == direct
}
