package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/payment"
)

type PaymentRepository interface {
	Add(ctx context.Context, p *payment.Payment) error
	Update(ctx context.Context, p *payment.Payment) error
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)
}
