package http

import (
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/rider"
	"orderflow/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func optionalUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	googleUUID := id.Bytes()
	return &googleUUID
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toOrderState(o *order.Order) servers.OrderState {
	return servers.OrderState{
		Id:                     o.ID().Bytes(),
		Number:                 o.Number(),
		Type:                   servers.OrderType(o.Type().String()),
		Status:                 servers.OrderStatus(o.Status().String()),
		Total:                  o.Total().String(),
		StatusUpdatedAt:        o.StatusUpdatedAt(),
		HasCancellationRequest: o.HasCancellationRequest(),
		FailedDeliveryReason:   o.FailedDeliveryReason(),
	}
}

func toRider(r *rider.Rider) servers.Rider {
	return servers.Rider{
		Id:     r.ID().Bytes(),
		Name:   r.Name(),
		Phone:  r.Phone(),
		Active: r.IsActive(),
	}
}

func toOrderDetails(o *queries.GetOrderQueryResponse) servers.OrderDetails {
	details := servers.OrderDetails{
		Id:                   o.ID.Bytes(),
		Number:               o.Number,
		CustomerId:           o.CustomerID.Bytes(),
		Type:                 servers.OrderType(o.Type.String()),
		Status:               servers.OrderStatus(o.Status.String()),
		Total:                o.Total.StringFixed(2),
		AdditionalInfo:       optionalString(o.AdditionalInfo),
		ScheduledFor:         o.ScheduledFor,
		CreatedAt:            o.CreatedAt,
		StatusUpdatedAt:      o.StatusUpdatedAt,
		FailedDeliveryReason: o.FailedDeliveryReason,
		Items:                make([]servers.OrderItem, len(o.Items)),
	}

	for i, item := range o.Items {
		details.Items[i] = servers.OrderItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Subtotal:  item.Subtotal.StringFixed(2),
		}
	}

	if d := o.Delivery; d != nil {
		details.Delivery = &servers.Delivery{
			RiderId:      optionalUUID(d.RiderID),
			Fee:          d.Fee.StringFixed(2),
			AddressRef:   d.AddressRef,
			DispatchedAt: d.DispatchedAt,
		}
	}
	if p := o.Payment; p != nil {
		details.Payment = &servers.Payment{
			Method:         servers.PaymentMethod(p.Method),
			IsPaid:         p.IsPaid,
			ProofUrl:       p.ProofURL,
			PaidAt:         p.PaidAt,
			ReturnProofRef: p.ReturnProofRef,
		}
	}
	if r := o.PendingRefund; r != nil {
		details.PendingRefund = &servers.PendingRefund{
			Reason:       r.Reason,
			PayoutNumber: r.PayoutNumber,
			PriorStatus:  servers.OrderStatus(r.PriorStatus.String()),
			RequestedAt:  r.RequestedAt,
		}
	}

	return details
}

func toActiveOrder(o queries.GetActiveOrdersQueryResponse) servers.ActiveOrder {
	return servers.ActiveOrder{
		Id:                     o.ID.Bytes(),
		Number:                 o.Number,
		Type:                   servers.OrderType(o.Type.String()),
		Status:                 servers.OrderStatus(o.Status.String()),
		Total:                  o.Total.StringFixed(2),
		AdditionalInfo:         optionalString(o.AdditionalInfo),
		ScheduledFor:           o.ScheduledFor,
		StatusUpdatedAt:        o.StatusUpdatedAt,
		RiderId:                optionalUUID(o.RiderID),
		HasCancellationRequest: o.HasCancellationRequest,
	}
}

func toCancellationRequest(r queries.GetCancellationRequestsQueryResponse) servers.CancellationRequest {
	return servers.CancellationRequest{
		OrderId:      r.OrderID.Bytes(),
		OrderNumber:  r.OrderNumber,
		OrderStatus:  servers.OrderStatus(r.OrderStatus.String()),
		Kind:         servers.CancellationRequestKind(r.Kind),
		Reason:       r.Reason,
		PayoutNumber: optionalString(r.PayoutNumber),
		RequestedAt:  r.RequestedAt,
	}
}

func toOrderEvent(e queries.GetOrderEventsQueryResponse) servers.OrderEvent {
	return servers.OrderEvent{
		EventId:     e.EventID,
		From:        e.From,
		To:          e.To,
		Actor:       e.Actor,
		OccurredAt:  e.OccurredAt,
		PublishedAt: e.PublishedAt,
	}
}
