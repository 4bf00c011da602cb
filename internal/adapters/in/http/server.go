// Package http exposes the order and shipment operations over an echo-based
// REST API.
package http

import (
	"errors"
	"net/http"
	"time"

	"eshop/internal/core/application/usecases/commands"
	"eshop/internal/core/application/usecases/queries"
	"eshop/internal/core/domain/model/cart"
	"eshop/internal/core/domain/model/order"
	"eshop/internal/core/domain/model/product"
	"eshop/internal/core/domain/model/shipment"
	"eshop/internal/core/ports"
	"eshop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned for failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest is the JSON body for POST /api/v1/orders.
type PlaceOrderRequest struct {
	OrderID      string           `json:"order_id,omitempty"`
	ShippingType string           `json:"shipping_type"`
	DueDate      time.Time        `json:"due_date"`
	Items        []PlaceOrderItem `json:"items"`
}

// PlaceOrderItem is one cart line in a placement request.
type PlaceOrderItem struct {
	Product string `json:"product"`
	Amount  int    `json:"amount"`
}

// PlaceOrderResponse is the JSON body returned for a successful placement.
type PlaceOrderResponse struct {
	OrderID    string `json:"order_id"`
	ShipmentID string `json:"shipment_id"`
}

// ShipmentStatusResponse is the JSON body for shipment status reads and
// transitions.
type ShipmentStatusResponse struct {
	ShipmentID string `json:"shipment_id"`
	Status     string `json:"status"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	catalog ports.ProductCatalog

	// Command handlers
	placeOrderHandler       commands.PlaceOrderCommandHandler
	completeShippingHandler commands.CompleteShippingCommandHandler
	failShippingHandler     commands.FailShippingCommandHandler

	// Query handlers
	getShipmentStatusHandler queries.GetShipmentStatusQueryHandler
	getShippingTypesHandler  queries.GetShippingTypesQueryHandler
}

// NewServer creates an HTTP server with the required collaborators.
func NewServer(
	catalog ports.ProductCatalog,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	completeShippingHandler commands.CompleteShippingCommandHandler,
	failShippingHandler commands.FailShippingCommandHandler,
	getShipmentStatusHandler queries.GetShipmentStatusQueryHandler,
	getShippingTypesHandler queries.GetShippingTypesQueryHandler,
) *Server {
	return &Server{
		catalog:                  catalog,
		placeOrderHandler:        placeOrderHandler,
		completeShippingHandler:  completeShippingHandler,
		failShippingHandler:      failShippingHandler,
		getShipmentStatusHandler: getShipmentStatusHandler,
		getShippingTypesHandler:  getShippingTypesHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/shipping-types", s.GetShippingTypes)
	api.POST("/orders", s.PlaceOrder)
	api.GET("/shipments/:id/status", s.GetShipmentStatus)
	api.POST("/shipments/:id/complete", s.CompleteShipping)
	api.POST("/shipments/:id/fail", s.FailShipping)
}

// GetShippingTypes handles GET /api/v1/shipping-types.
func (s *Server) GetShippingTypes(ctx echo.Context) error {
	query := queries.NewGetShippingTypesQuery()

	types, err := s.getShippingTypesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, types)
}

// PlaceOrder handles POST /api/v1/orders. Builds a cart from the requested
// items, places the order and announces the resulting shipment.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID := req.OrderID
	if orderID == "" {
		orderID = uuid.NewString()
	}

	c := cart.NewCart()
	for _, item := range req.Items {
		p, err := s.catalog.Get(ctx.Request().Context(), item.Product)
		if err != nil {
			return errorResponse(ctx, err)
		}
		if err = c.AddProduct(p, item.Amount); err != nil {
			return errorResponse(ctx, err)
		}
	}

	ord, err := order.NewOrder(orderID, c)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(ord, req.ShippingType, req.DueDate)
	if err != nil {
		return errorResponse(ctx, err)
	}

	shipmentID, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{
		OrderID:    orderID,
		ShipmentID: shipmentID,
	})
}

// GetShipmentStatus handles GET /api/v1/shipments/:id/status.
func (s *Server) GetShipmentStatus(ctx echo.Context) error {
	query, err := queries.NewGetShipmentStatusQuery(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	resp, err := s.getShipmentStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ShipmentStatusResponse{
		ShipmentID: resp.ShipmentID,
		Status:     resp.Status.String(),
	})
}

// CompleteShipping handles POST /api/v1/shipments/:id/complete.
func (s *Server) CompleteShipping(ctx echo.Context) error {
	cmd, err := commands.NewCompleteShippingCommand(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.completeShippingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ShipmentStatusResponse{
		ShipmentID: result.ShipmentID,
		Status:     result.Status.String(),
	})
}

// FailShipping handles POST /api/v1/shipments/:id/fail.
func (s *Server) FailShipping(ctx echo.Context) error {
	cmd, err := commands.NewFailShippingCommand(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.failShippingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ShipmentStatusResponse{
		ShipmentID: result.ShipmentID,
		Status:     result.Status.String(),
	})
}

// errorResponse maps domain errors to HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, shipment.ErrInvalidTransition),
		errors.Is(err, shipment.ErrShipmentNotOverdue),
		errors.Is(err, order.ErrOrderAlreadyPlaced),
		errors.Is(err, product.ErrInsufficientInventory):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
