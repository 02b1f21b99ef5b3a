package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/rider"
)

type RiderRepository interface {
	Add(ctx context.Context, r *rider.Rider) error
	Update(ctx context.Context, r *rider.Rider) error
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)
	GetAll(ctx context.Context) ([]*rider.Rider, error)
}
