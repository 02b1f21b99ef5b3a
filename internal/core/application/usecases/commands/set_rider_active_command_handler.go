package commands

import (
	"context"

	"orderflow/internal/core/domain/model/rider"
)

type SetRiderActiveCommandHandler struct {
	uowFactory RiderUoWFactory
}

func NewSetRiderActiveCommandHandler(uowFactory RiderUoWFactory) SetRiderActiveCommandHandler {
	return SetRiderActiveCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h SetRiderActiveCommandHandler) Handle(ctx context.Context, command SetRiderActiveCommand) (*rider.Rider, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	r, err := uow.RiderRepository().Get(ctx, command.RiderID())
	if err != nil {
		return nil, err
	}
	if command.Active() {
		r.Activate()
	} else {
		r.Deactivate()
	}

	if err = uow.RiderRepository().Update(ctx, r); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return r, nil
}
