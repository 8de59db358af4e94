// Package http exposes the marketplace workflow over a REST API.
// It coordinates between HTTP handlers and application use cases: request
// payloads become commands and queries, domain errors map onto status codes.
//
// The caller is identified by the X-User-Id header. Authentication itself is
// handled upstream by the platform gateway; this service trusts the header.
package http

import (
	"errors"
	"net/http"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the order and custom order workflows.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	deliverOrderHandler    commands.DeliverOrderCommandHandler
	acceptDeliveryHandler  commands.AcceptDeliveryCommandHandler
	requestRevisionHandler commands.RequestRevisionCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	proposeCustomHandler   commands.ProposeCustomOrderCommandHandler
	acceptCustomHandler    commands.AcceptCustomOrderCommandHandler
	rejectCustomHandler    commands.RejectCustomOrderCommandHandler

	// Query handlers
	getOrdersHandler        queries.GetOrdersForParticipantQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
	getCustomOrdersHandler  queries.GetCustomOrdersQueryHandler
	getAllOrdersHandler     queries.GetAllOrdersQueryHandler
	getOverdueOrdersHandler queries.GetOverdueOrdersQueryHandler

	roles ports.RoleProvider
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	acceptDeliveryHandler commands.AcceptDeliveryCommandHandler,
	requestRevisionHandler commands.RequestRevisionCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	proposeCustomHandler commands.ProposeCustomOrderCommandHandler,
	acceptCustomHandler commands.AcceptCustomOrderCommandHandler,
	rejectCustomHandler commands.RejectCustomOrderCommandHandler,
	getOrdersHandler queries.GetOrdersForParticipantQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCustomOrdersHandler queries.GetCustomOrdersQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOverdueOrdersHandler queries.GetOverdueOrdersQueryHandler,
	roles ports.RoleProvider,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		deliverOrderHandler:     deliverOrderHandler,
		acceptDeliveryHandler:   acceptDeliveryHandler,
		requestRevisionHandler:  requestRevisionHandler,
		cancelOrderHandler:      cancelOrderHandler,
		proposeCustomHandler:    proposeCustomHandler,
		acceptCustomHandler:     acceptCustomHandler,
		rejectCustomHandler:     rejectCustomHandler,
		getOrdersHandler:        getOrdersHandler,
		getOrderHandler:         getOrderHandler,
		getCustomOrdersHandler:  getCustomOrdersHandler,
		getAllOrdersHandler:     getAllOrdersHandler,
		getOverdueOrdersHandler: getOverdueOrdersHandler,
		roles:                   roles,
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/all", s.GetAllOrders)
	api.GET("/orders/overdue", s.GetOverdueOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/deliver", s.DeliverOrder)
	api.POST("/orders/:orderId/accept", s.AcceptDelivery)
	api.POST("/orders/:orderId/revision", s.RequestRevision)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)

	api.POST("/custom-orders", s.ProposeCustomOrder)
	api.GET("/custom-orders", s.GetCustomOrders)
	api.POST("/custom-orders/:customOrderId/accept", s.AcceptCustomOrder)
	api.POST("/custom-orders/:customOrderId/reject", s.RejectCustomOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// callerID extracts the authenticated user from the X-User-Id header.
func callerID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get("X-User-Id")
	if raw == "" {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, "X-User-Id header is required")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, "X-User-Id header is not a valid UUID")
	}
	return id, nil
}

// pathUUID extracts and parses a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, name+" is not a valid UUID")
	}
	return id, nil
}

// writeError maps domain errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrRevisionLimitExceeded),
		errors.Is(err, errs.ErrConcurrencyConflict):
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

// CreateOrder handles POST /api/v1/orders - places an order for a service package.
func (s *Server) CreateOrder(ctx echo.Context) error {
	buyerID, err := callerID(ctx)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	serviceID, err := kernel.UUIDFromString(req.ServiceID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "serviceId is not a valid UUID",
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, buyerID, serviceID, req.Tier, req.Requirements)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// DeliverOrder handles POST /api/v1/orders/:orderId/deliver - submits completed work.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	var req DeliverOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID, caller, req.Note, req.Files)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptDelivery handles POST /api/v1/orders/:orderId/accept - approves delivered
// work, completing the order and releasing escrow.
func (s *Server) AcceptDelivery(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewAcceptDeliveryCommand(orderID, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.acceptDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestRevision handles POST /api/v1/orders/:orderId/revision - sends delivered
// work back for rework.
func (s *Server) RequestRevision(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	var req RequestRevisionRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRequestRevisionCommand(orderID, caller, req.Note)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.requestRevisionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel - cancels an order and
// refunds escrow.
func (s *Server) CancelOrder(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders - lists the caller's orders, both sides.
func (s *Server) GetOrders(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrdersForParticipantQuery(caller)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAllOrders handles GET /api/v1/orders/all - lists every order, optionally
// filtered by status. Admin only.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return err
	}

	role, err := s.roles.GetRole(ctx.Request().Context(), caller)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetAllOrdersQuery(caller, role, ctx.QueryParam("status"))
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOverdueOrders handles GET /api/v1/orders/overdue - lists in-progress orders
// past their delivery due date with nothing delivered. Admin only.
func (s *Server) GetOverdueOrders(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return err
	}

	role, err := s.roles.GetRole(ctx.Request().Context(), caller)
	if err != nil {
		return writeError(ctx, err)
	}
	if role != kernel.RoleAdmin {
		return writeError(ctx, errs.NewForbiddenError(caller.String(), "list overdue orders"))
	}

	query := queries.NewGetOverdueOrdersQuery(time.Now())

	orders, err := s.getOverdueOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderId - retrieves one order in full.
func (s *Server) GetOrder(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	role, err := s.roles.GetRole(ctx.Request().Context(), caller)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, caller, role)
	if err != nil {
		return writeError(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderDetail{
		Order:         toOrder(detail.OrderResponse),
		Requirements:  detail.Requirements,
		DeliveryNote:  detail.DeliveryNote,
		DeliveryFiles: detail.DeliveryFiles,
		Features:      detail.Features,
		DeliveryDays:  detail.DeliveryDays,
	})
}

// ProposeCustomOrder handles POST /api/v1/custom-orders - creates a proposal.
func (s *Server) ProposeCustomOrder(ctx echo.Context) error {
	managerID, err := callerID(ctx)
	if err != nil {
		return err
	}

	var req ProposeCustomOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	recipientID, err := kernel.UUIDFromString(req.RecipientID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "recipientId is not a valid UUID",
		})
	}

	price, err := kernel.NewMoney(req.Price)
	if err != nil {
		return writeError(ctx, err)
	}

	customOrderID := kernel.NewUUID()
	cmd, err := commands.NewProposeCustomOrderCommand(
		customOrderID, managerID, recipientID, req.Title, req.Description, price, req.DeliveryDays)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.proposeCustomHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: customOrderID.String()})
}

// GetCustomOrders handles GET /api/v1/custom-orders - lists the caller's proposals.
func (s *Server) GetCustomOrders(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCustomOrdersQuery(caller)
	if err != nil {
		return writeError(ctx, err)
	}

	proposals, err := s.getCustomOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]CustomOrder, len(proposals))
	for i, p := range proposals {
		var orderID *string
		if p.OrderID != nil {
			id := p.OrderID.String()
			orderID = &id
		}

		response[i] = CustomOrder{
			ID:              p.ID.String(),
			Number:          p.Number,
			ManagerID:       p.ManagerID.String(),
			RecipientID:     p.RecipientID.String(),
			RecipientRole:   p.RecipientRole,
			Title:           p.Title,
			Description:     p.Description,
			Price:           p.Price,
			DeliveryDays:    p.DeliveryDays,
			Status:          p.Status,
			RejectionReason: p.RejectionReason,
			OrderID:         orderID,
			CreatedAt:       p.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptCustomOrder handles POST /api/v1/custom-orders/:customOrderId/accept -
// accepts a proposal and materializes its order.
func (s *Server) AcceptCustomOrder(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return err
	}
	customOrderID, err := pathUUID(ctx, "customOrderId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewAcceptCustomOrderCommand(customOrderID, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.acceptCustomHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectCustomOrder handles POST /api/v1/custom-orders/:customOrderId/reject -
// declines a proposal.
func (s *Server) RejectCustomOrder(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return err
	}
	customOrderID, err := pathUUID(ctx, "customOrderId")
	if err != nil {
		return err
	}

	var req RejectCustomOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRejectCustomOrderCommand(customOrderID, caller, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.rejectCustomHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func toOrder(o queries.OrderResponse) Order {
	return Order{
		ID:                o.ID.String(),
		Number:            o.Number,
		BuyerID:           o.BuyerID.String(),
		SellerID:          o.SellerID.String(),
		Status:            o.Status,
		Escrow:            o.Escrow,
		Tier:              o.Tier,
		Price:             o.Price,
		RevisionsUsed:     o.RevisionsUsed,
		RevisionAllowance: o.RevisionAllowance,
		CreatedAt:         o.CreatedAt,
		DeliveryDue:       o.DeliveryDue,
	}
}
