// Package http provides the inbound REST adapter. Every mutating route
// reads the acting identity from the X-Actor-Id header; requests without
// the header run as the anonymous actor and are rejected by the
// authorization policy.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/application/usecases/queries"
	"foodbridge/internal/core/domain/model/delivery"
	"foodbridge/internal/core/domain/model/donor"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/posting"
	"foodbridge/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ActorHeader carries the identity of the caller. Profile identifiers
// double as identities, so the value is the caller's own profile id.
const ActorHeader = "X-Actor-Id"

// Server implements the HTTP handlers for the coordination API.
// It coordinates between HTTP requests and application use cases.
type Server struct {
	// Command handlers
	createDonorHandler       commands.CreateDonorProfileCommandHandler
	createReceiverHandler    commands.CreateReceiverProfileCommandHandler
	createDriverHandler      commands.CreateDriverProfileCommandHandler
	createPostingHandler     commands.CreateSurplusPostingCommandHandler
	createAssignmentHandler  commands.CreateAssignmentCommandHandler
	recordDeliveryHandler    commands.RecordDeliveryCommandHandler
	createFoodRequestHandler commands.CreateFoodRequestCommandHandler
	sendMessageHandler       commands.SendMessageCommandHandler
	deleteMessageHandler     commands.DeleteMessageCommandHandler

	// Query handlers
	listDonorsHandler       queries.ListDonorsQueryHandler
	listReceiversHandler    queries.ListReceiversQueryHandler
	listDriversHandler      queries.ListDriversQueryHandler
	listPostingsHandler     queries.ListPostingsQueryHandler
	listAssignmentsHandler  queries.ListAssignmentsQueryHandler
	listDeliveriesHandler   queries.ListDeliveriesQueryHandler
	listFoodRequestsHandler queries.ListFoodRequestsQueryHandler
	getMessagesHandler      queries.GetMessagesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDonorHandler commands.CreateDonorProfileCommandHandler,
	createReceiverHandler commands.CreateReceiverProfileCommandHandler,
	createDriverHandler commands.CreateDriverProfileCommandHandler,
	createPostingHandler commands.CreateSurplusPostingCommandHandler,
	createAssignmentHandler commands.CreateAssignmentCommandHandler,
	recordDeliveryHandler commands.RecordDeliveryCommandHandler,
	createFoodRequestHandler commands.CreateFoodRequestCommandHandler,
	sendMessageHandler commands.SendMessageCommandHandler,
	deleteMessageHandler commands.DeleteMessageCommandHandler,
	listDonorsHandler queries.ListDonorsQueryHandler,
	listReceiversHandler queries.ListReceiversQueryHandler,
	listDriversHandler queries.ListDriversQueryHandler,
	listPostingsHandler queries.ListPostingsQueryHandler,
	listAssignmentsHandler queries.ListAssignmentsQueryHandler,
	listDeliveriesHandler queries.ListDeliveriesQueryHandler,
	listFoodRequestsHandler queries.ListFoodRequestsQueryHandler,
	getMessagesHandler queries.GetMessagesQueryHandler,
) *Server {
	return &Server{
		createDonorHandler:       createDonorHandler,
		createReceiverHandler:    createReceiverHandler,
		createDriverHandler:      createDriverHandler,
		createPostingHandler:     createPostingHandler,
		createAssignmentHandler:  createAssignmentHandler,
		recordDeliveryHandler:    recordDeliveryHandler,
		createFoodRequestHandler: createFoodRequestHandler,
		sendMessageHandler:       sendMessageHandler,
		deleteMessageHandler:     deleteMessageHandler,
		listDonorsHandler:        listDonorsHandler,
		listReceiversHandler:     listReceiversHandler,
		listDriversHandler:       listDriversHandler,
		listPostingsHandler:      listPostingsHandler,
		listAssignmentsHandler:   listAssignmentsHandler,
		listDeliveriesHandler:    listDeliveriesHandler,
		listFoodRequestsHandler:  listFoodRequestsHandler,
		getMessagesHandler:       getMessagesHandler,
	}
}

// RegisterRoutes mounts every API route on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/donors", s.CreateDonor)
	api.GET("/donors", s.GetDonors)
	api.POST("/receivers", s.CreateReceiver)
	api.GET("/receivers", s.GetReceivers)
	api.POST("/drivers", s.CreateDriver)
	api.GET("/drivers", s.GetDrivers)

	api.POST("/postings", s.CreatePosting)
	api.GET("/postings", s.GetPostings)
	api.POST("/assignments", s.CreateAssignment)
	api.GET("/assignments", s.GetAssignments)
	api.POST("/deliveries", s.RecordDelivery)
	api.GET("/deliveries", s.GetDeliveries)
	api.POST("/requests", s.CreateFoodRequest)
	api.GET("/requests", s.GetFoodRequests)

	api.POST("/messages", s.SendMessage)
	api.GET("/messages/:participantId", s.GetMessages)
	api.DELETE("/messages/:messageId", s.DeleteMessage)
}

// CreateDonor handles POST /api/v1/donors - registers a new donor.
func (s *Server) CreateDonor(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body NewProfileRequest
	if err = ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	businessType, err := donor.ParseBusinessType(body.BusinessType)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateDonorProfileCommand(
		actor, body.Name, body.Phone, body.Email, body.Address, businessType,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	profile, err := s.createDonorHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toDonorResponse(profile))
}

// GetDonors handles GET /api/v1/donors - retrieves all donors.
func (s *Server) GetDonors(ctx echo.Context) error {
	donors, err := s.listDonorsHandler.Handle(ctx.Request().Context(), queries.NewListDonorsQuery())
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]ProfileResponse, len(donors))
	for i, profile := range donors {
		response[i] = toDonorResponse(profile)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateReceiver handles POST /api/v1/receivers - registers a new receiver.
func (s *Server) CreateReceiver(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body NewProfileRequest
	if err = ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewCreateReceiverProfileCommand(
		actor, body.Name, body.Phone, body.Email, body.Address,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	profile, err := s.createReceiverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toReceiverResponse(profile))
}

// GetReceivers handles GET /api/v1/receivers - retrieves all receivers.
func (s *Server) GetReceivers(ctx echo.Context) error {
	receivers, err := s.listReceiversHandler.Handle(ctx.Request().Context(), queries.NewListReceiversQuery())
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]ProfileResponse, len(receivers))
	for i, profile := range receivers {
		response[i] = toReceiverResponse(profile)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDriver handles POST /api/v1/drivers - registers a new driver.
func (s *Server) CreateDriver(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body NewProfileRequest
	if err = ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewCreateDriverProfileCommand(
		actor, body.Name, body.Phone, body.Email, body.Address,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	profile, err := s.createDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toDriverResponse(profile))
}

// GetDrivers handles GET /api/v1/drivers - retrieves all drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	drivers, err := s.listDriversHandler.Handle(ctx.Request().Context(), queries.NewListDriversQuery())
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]ProfileResponse, len(drivers))
	for i, profile := range drivers {
		response[i] = toDriverResponse(profile)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreatePosting handles POST /api/v1/postings - lists surplus food.
func (s *Server) CreatePosting(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body NewPostingRequest
	if err = ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	foodType, err := posting.ParseFoodType(body.FoodType)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateSurplusPostingCommand(
		actor, kernel.ID(body.DonorID), foodType, body.QuantityKg,
		body.BestBeforeDate, body.HandlingInstructions,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	entity, err := s.createPostingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toPostingResponse(entity))
}

// GetPostings handles GET /api/v1/postings - retrieves all postings.
func (s *Server) GetPostings(ctx echo.Context) error {
	postings, err := s.listPostingsHandler.Handle(ctx.Request().Context(), queries.NewListPostingsQuery())
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]PostingResponse, len(postings))
	for i, entity := range postings {
		response[i] = toPostingResponse(entity)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateAssignment handles POST /api/v1/assignments - a driver takes a posting.
func (s *Server) CreateAssignment(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body NewAssignmentRequest
	if err = ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewCreateAssignmentCommand(
		actor, kernel.ID(body.ReceiverID), kernel.ID(body.PostingID), kernel.ID(body.DriverID),
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	entity, err := s.createAssignmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toAssignmentResponse(entity))
}

// GetAssignments handles GET /api/v1/assignments - retrieves all assignments.
func (s *Server) GetAssignments(ctx echo.Context) error {
	assignments, err := s.listAssignmentsHandler.Handle(ctx.Request().Context(), queries.NewListAssignmentsQuery())
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]AssignmentResponse, len(assignments))
	for i, entity := range assignments {
		response[i] = toAssignmentResponse(entity)
	}

	return ctx.JSON(http.StatusOK, response)
}

// RecordDelivery handles POST /api/v1/deliveries - confirms a delivery.
func (s *Server) RecordDelivery(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body NewDeliveryRequest
	if err = ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	rating := delivery.NoRating()
	if body.Rating != nil {
		rating, err = delivery.NewRating(*body.Rating)
		if err != nil {
			return badRequest(ctx, err)
		}
	}

	cmd, err := commands.NewRecordDeliveryCommand(
		actor, kernel.ID(body.PostingID), kernel.ID(body.DriverID), rating,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	record, err := s.recordDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toDeliveryResponse(record))
}

// GetDeliveries handles GET /api/v1/deliveries - retrieves all delivery records.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	records, err := s.listDeliveriesHandler.Handle(ctx.Request().Context(), queries.NewListDeliveriesQuery())
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]DeliveryResponse, len(records))
	for i, record := range records {
		response[i] = toDeliveryResponse(record)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateFoodRequest handles POST /api/v1/requests - registers a receiver's ask.
func (s *Server) CreateFoodRequest(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body NewFoodRequestRequest
	if err = ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewCreateFoodRequestCommand(
		actor, kernel.ID(body.ReceiverID), body.Description, body.QuantityKg,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	entity, err := s.createFoodRequestHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toFoodRequestResponse(entity))
}

// GetFoodRequests handles GET /api/v1/requests - retrieves all food requests.
func (s *Server) GetFoodRequests(ctx echo.Context) error {
	requests, err := s.listFoodRequestsHandler.Handle(ctx.Request().Context(), queries.NewListFoodRequestsQuery())
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]FoodRequestResponse, len(requests))
	for i, entity := range requests {
		response[i] = toFoodRequestResponse(entity)
	}

	return ctx.JSON(http.StatusOK, response)
}

// SendMessage handles POST /api/v1/messages - sends a message.
func (s *Server) SendMessage(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body NewMessageRequest
	if err = ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewSendMessageCommand(
		actor, kernel.ID(body.SenderID), kernel.ID(body.RecipientID), body.Content,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	entity, err := s.sendMessageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toMessageResponse(entity))
}

// GetMessages handles GET /api/v1/messages/:participantId - retrieves a
// participant's messages. Only the participant themselves or a governance
// approved actor may read them.
func (s *Server) GetMessages(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	participantID, err := idParam(ctx, "participantId")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetMessagesQuery(actor, participantID)
	if err != nil {
		return badRequest(ctx, err)
	}

	messages, err := s.getMessagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]MessageResponse, len(messages))
	for i, entity := range messages {
		response[i] = toMessageResponse(entity)
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeleteMessage handles DELETE /api/v1/messages/:messageId - deletes a
// message. Only the sender or a governance approved actor may delete.
func (s *Server) DeleteMessage(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	messageID, err := idParam(ctx, "messageId")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteMessageCommand(actor, messageID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.deleteMessageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// actorFrom reads the acting identity from the request headers. A missing
// header yields the anonymous actor.
func actorFrom(ctx echo.Context) (kernel.Identity, error) {
	raw := ctx.Request().Header.Get(ActorHeader)
	if raw == "" {
		return kernel.Anonymous, nil
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return kernel.Anonymous, errs.NewValueIsInvalidErrorWithCause("actorId", err)
	}

	return kernel.Identity(value), nil
}

// idParam parses a numeric identifier from a path parameter.
func idParam(ctx echo.Context, name string) (kernel.ID, error) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return kernel.ID(0), errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	return kernel.ID(value), nil
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// mapError translates application errors into HTTP status codes.
func mapError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}
