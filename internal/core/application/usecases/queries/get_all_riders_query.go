// Package queries contains read operations for retrieving system state.
// Handlers read straight from the tables with SQL and return flat read models;
// they never lock rows and never go through the aggregates.
package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetAllRidersQueryIsNotConstructed = errors.New(
		"GetAllRidersQuery must be created via NewGetAllRidersQuery constructor",
	)
)

// GetAllRidersQuery lists the rider directory, active riders first.
//
// Example:
//
//	query := NewGetAllRidersQuery()
//	handler := NewGetAllRidersQueryHandler(db)
//
//	riders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list riders: %w", err)
//	}
type GetAllRidersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllRidersQuery() GetAllRidersQuery {
	return GetAllRidersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllRidersQueryIsNotConstructed)
}

// GetAllRidersQueryResponse is one rider of the directory.
type GetAllRidersQueryResponse struct {
	ID     kernel.UUID
	Name   string
	Phone  string
	Active bool
}
