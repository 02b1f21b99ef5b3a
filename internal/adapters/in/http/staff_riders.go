package http

import (
	"net/http"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListRiders handles GET /api/v1/staff/riders - retrieves the rider directory.
func (s *Server) ListRiders(ctx echo.Context) error {
	riders, err := s.queries.GetAllRiders.Handle(ctx.Request().Context(), queries.NewGetAllRidersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Rider, len(riders))
	for i, r := range riders {
		response[i] = servers.Rider{
			Id:     r.ID.Bytes(),
			Name:   r.Name,
			Phone:  r.Phone,
			Active: r.Active,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateRider handles POST /api/v1/staff/riders - adds an active rider.
func (s *Server) CreateRider(ctx echo.Context) error {
	var newRider servers.CreateRiderJSONRequestBody
	if err := ctx.Bind(&newRider); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var phone string
	if newRider.Phone != nil {
		phone = *newRider.Phone
	}
	cmd, err := commands.NewCreateRiderCommand(newRider.Name, phone)
	if err != nil {
		return s.fail(ctx, err)
	}

	r, err := s.commands.CreateRider.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toRider(r))
}

// SetRiderActive handles PUT /api/v1/staff/riders/{riderId}/active.
func (s *Server) SetRiderActive(ctx echo.Context, riderId openapi_types.UUID) error {
	var body servers.SetRiderActiveJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(riderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewSetRiderActiveCommand(id, body.Active)
	if err != nil {
		return s.fail(ctx, err)
	}

	r, err := s.commands.SetRiderActive.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toRider(r))
}
