// Package http exposes the order use cases over an echo HTTP server.
package http

import (
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler commands.CreateOrderCommandHandler
	addItemHandler     commands.AddItemToOrderCommandHandler
	getOrderHandler    queries.GetOrderQueryHandler
	listOrdersHandler  queries.ListOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addItemHandler commands.AddItemToOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		addItemHandler:     addItemHandler,
		getOrderHandler:    getOrderHandler,
		listOrdersHandler:  listOrdersHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", s.CreateOrder)
	e.POST("/orders/:order_id/items", s.AddItemToOrder)
	e.GET("/orders/:order_id", s.GetOrder)
	e.GET("/orders", s.ListOrders)
	e.GET("/health", s.Health)
}

type createOrderRequest struct {
	CustomerID string `json:"customer_id"`
}

type createOrderResponse struct {
	OrderID string `json:"order_id"`
	Message string `json:"message"`
}

type addItemRequest struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

type addItemResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type orderItemResponse struct {
	SKU      string  `json:"sku"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
}

type orderDetailResponse struct {
	OrderID     string              `json:"order_id"`
	CustomerID  string              `json:"customer_id"`
	Items       []orderItemResponse `json:"items"`
	TotalAmount float64             `json:"total_amount"`
	ItemsCount  int                 `json:"items_count"`
}

type orderSummaryResponse struct {
	OrderID     string  `json:"order_id"`
	CustomerID  string  `json:"customer_id"`
	ItemsCount  int     `json:"items_count"`
	TotalAmount float64 `json:"total_amount"`
}

type listOrdersResponse struct {
	Orders      []orderSummaryResponse `json:"orders"`
	TotalOrders int                    `json:"total_orders"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to create order"})
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{
		OrderID: orderID,
		Message: "Order created successfully",
	})
}

// AddItemToOrder handles POST /orders/:order_id/items.
// Invalid input and missing orders both answer success=false; only
// infrastructure faults become a 500.
func (s *Server) AddItemToOrder(ctx echo.Context) error {
	var req addItemRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusOK, addItemResponse{Success: false, Message: "Invalid request body"})
	}

	cmd, err := commands.NewAddItemToOrderCommand(ctx.Param("order_id"), req.SKU, req.Quantity)
	if err != nil {
		return ctx.JSON(http.StatusOK, addItemResponse{Success: false, Message: err.Error()})
	}

	ok, err := s.addItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to add item"})
	}

	message := "Item added successfully"
	if !ok {
		message = "Failed to add item"
	}

	return ctx.JSON(http.StatusOK, addItemResponse{Success: ok, Message: message})
}

// GetOrder handles GET /orders/:order_id. A missing order is a 404, never a
// 200 with an empty payload.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("order_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to retrieve order"})
	}
	if detail == nil {
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: "Order not found"})
	}

	items := make([]orderItemResponse, 0, len(detail.Items))
	for _, item := range detail.Items {
		items = append(items, orderItemResponse{
			SKU:      item.SKU,
			Quantity: item.Quantity,
			Price:    item.Price.InexactFloat64(),
			Subtotal: item.Subtotal.InexactFloat64(),
		})
	}

	return ctx.JSON(http.StatusOK, orderDetailResponse{
		OrderID:     detail.OrderID,
		CustomerID:  detail.CustomerID,
		Items:       items,
		TotalAmount: detail.TotalAmount.InexactFloat64(),
		ItemsCount:  detail.ItemsCount,
	})
}

// ListOrders handles GET /orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to retrieve orders"})
	}

	summaries := make([]orderSummaryResponse, 0, len(result.Orders))
	for _, summary := range result.Orders {
		summaries = append(summaries, orderSummaryResponse{
			OrderID:     summary.OrderID,
			CustomerID:  summary.CustomerID,
			ItemsCount:  summary.ItemsCount,
			TotalAmount: summary.TotalAmount.InexactFloat64(),
		})
	}

	return ctx.JSON(http.StatusOK, listOrdersResponse{
		Orders:      summaries,
		TotalOrders: result.TotalOrders,
	})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
