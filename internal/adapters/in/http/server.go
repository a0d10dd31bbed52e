// Package http exposes the simulated agency over a JSON API. Handlers
// translate requests into commands and queries and map domain errors onto
// HTTP status codes; no business logic lives here.
package http

import (
	"errors"
	"net/http"

	"agencysim/internal/core/application/usecases/commands"
	"agencysim/internal/core/application/usecases/queries"
	"agencysim/internal/core/domain/model/kernel"
	"agencysim/internal/core/domain/model/parcel"
	"agencysim/internal/core/domain/model/simulation"
	"agencysim/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers of the agency API.
// It coordinates between HTTP requests and application use cases.
type Server struct {
	// Command handlers
	createParcelHandler    commands.CreateParcelCommandHandler
	updateStatusHandler    *commands.UpdateParcelStatusCommandHandler
	startSimulationHandler commands.StartSimulationCommandHandler

	// Query handlers
	getParcelHandler   queries.GetParcelQueryHandler
	listParcelsHandler queries.ListParcelsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	updateStatusHandler *commands.UpdateParcelStatusCommandHandler,
	startSimulationHandler commands.StartSimulationCommandHandler,
	getParcelHandler queries.GetParcelQueryHandler,
	listParcelsHandler queries.ListParcelsQueryHandler,
) *Server {
	return &Server{
		createParcelHandler:    createParcelHandler,
		updateStatusHandler:    updateStatusHandler,
		startSimulationHandler: startSimulationHandler,
		getParcelHandler:       getParcelHandler,
		listParcelsHandler:     listParcelsHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/parcels", s.CreateParcel)
	api.GET("/parcels", s.ListParcels)
	api.GET("/parcels/:tracking_number", s.GetParcel)
	api.PUT("/parcels/:tracking_number/status", s.UpdateParcelStatus)
	api.POST("/parcels/:tracking_number/simulate", s.SimulateParcel)
}

// CreateParcel handles POST /api/v1/parcels - registers a new parcel.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var request CreateParcelRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customer, err := parcel.NewCustomer(request.CustomerName, request.CustomerPhone, request.CustomerAddress)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCreateParcelCommand(
		request.OrderID,
		customer,
		parcel.NewDestination(request.Wilaya, request.Commune),
		request.ProductList,
		request.Price,
		request.WebhookURL,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	aggregate, err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Envelope{
		Success: true,
		Data:    newParcelResponse(aggregate),
	})
}

// GetParcel handles GET /api/v1/parcels/:tracking_number - fetches one parcel.
func (s *Server) GetParcel(ctx echo.Context) error {
	trackingNumber, err := kernel.TrackingNumberFromString(ctx.Param("tracking_number"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetParcelQuery(trackingNumber)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	aggregate, err := s.getParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    newParcelResponse(aggregate),
	})
}

// ListParcels handles GET /api/v1/parcels - lists all parcels (admin/debug).
func (s *Server) ListParcels(ctx echo.Context) error {
	parcels, err := s.listParcelsHandler.Handle(ctx.Request().Context(), queries.NewListParcelsQuery())
	if err != nil {
		return mapDomainError(ctx, err)
	}

	response := make([]ParcelResponse, len(parcels))
	for i, aggregate := range parcels {
		response[i] = newParcelResponse(aggregate)
	}

	count := len(response)
	return ctx.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    response,
		Count:   &count,
	})
}

// UpdateParcelStatus handles PUT /api/v1/parcels/:tracking_number/status -
// applies a manual status transition.
func (s *Server) UpdateParcelStatus(ctx echo.Context) error {
	trackingNumber, err := kernel.TrackingNumberFromString(ctx.Param("tracking_number"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var request UpdateStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := parcel.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(trackingNumber, status, request.Note)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	aggregate, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Status updated",
		Data:    newParcelResponse(aggregate),
	})
}

// SimulateParcel handles POST /api/v1/parcels/:tracking_number/simulate -
// starts a background simulation run.
func (s *Server) SimulateParcel(ctx echo.Context) error {
	trackingNumber, err := kernel.TrackingNumberFromString(ctx.Param("tracking_number"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var request SimulateRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewStartSimulationCommand(
		trackingNumber,
		simulation.NewPlan(request.Speed, request.Scenario),
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	handle, err := s.startSimulationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Simulation started",
		Data:    newSimulationResponse(trackingNumber.String(), handle),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Message: message,
	})
}

// mapDomainError converts domain errors into the response envelope: unknown
// identifiers become 404, validation failures 400, everything else 500.
func mapDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Envelope{
			Success: false,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err.Error())
	default:
		return ctx.JSON(http.StatusInternalServerError, Envelope{
			Success: false,
			Message: "Internal error",
		})
	}
}
