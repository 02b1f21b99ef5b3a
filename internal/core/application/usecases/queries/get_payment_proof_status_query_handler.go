package queries

import (
	"context"

	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetPaymentProofStatusQueryHandler struct {
	db *gorm.DB
}

func NewGetPaymentProofStatusQueryHandler(db *gorm.DB) GetPaymentProofStatusQueryHandler {
	return GetPaymentProofStatusQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound when the order has no payment record.
func (h GetPaymentProofStatusQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentProofStatusQuery,
) (*GetPaymentProofStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []paymentRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT method, is_paid, proof_url, paid_at, return_proof_ref
		FROM payments
		WHERE order_id = ?
	`, query.OrderID().Bytes()).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.NewObjectNotFoundError("payment", query.OrderID())
	}

	p := rows[0]
	return &GetPaymentProofStatusQueryResponse{
		OrderID:        query.OrderID(),
		Method:         p.Method,
		IsPaid:         p.IsPaid,
		HasProof:       p.ProofURL != nil && *p.ProofURL != "",
		ProofURL:       p.ProofURL,
		PaidAt:         p.PaidAt,
		HasReturnProof: p.ReturnProofRef != nil && *p.ReturnProofRef != "",
	}, nil
}
