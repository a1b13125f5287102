// Package http exposes the assistant over a REST API: the chat turn
// endpoint, checkout, the menu listing and operational endpoints.
package http

import (
	"encoding/base64"
	"net/http"

	"maitred/internal/core/application/usecases/commands"
	"maitred/internal/core/application/usecases/queries"
	"maitred/internal/core/domain/model/catalog"
	"maitred/internal/core/domain/model/flow"
	"maitred/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	processTurnHandler commands.ProcessTurnCommandHandler
	checkoutHandler    commands.CheckoutCommandHandler

	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getMenuHandler         queries.GetMenuQueryHandler

	cache         *catalog.Cache
	catalogSource ports.CatalogRepository
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	processTurnHandler commands.ProcessTurnCommandHandler,
	checkoutHandler commands.CheckoutCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	cache *catalog.Cache,
	catalogSource ports.CatalogRepository,
) *Server {
	return &Server{
		processTurnHandler:     processTurnHandler,
		checkoutHandler:        checkoutHandler,
		getActiveOrdersHandler: getActiveOrdersHandler,
		getMenuHandler:         getMenuHandler,
		cache:                  cache,
		catalogSource:          catalogSource,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/assistant/chat", s.Chat)
	api.POST("/assistant/checkout", s.Checkout)
	api.GET("/menu", s.GetMenu)
	api.GET("/orders/active", s.GetActiveOrders)
	api.POST("/catalog/reload", s.ReloadCatalog)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Chat handles POST /api/v1/assistant/chat - runs one conversation turn.
func (s *Server) Chat(ctx echo.Context) error {
	var req ChatRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var audio []byte
	if req.AudioBase64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.AudioBase64)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid audio encoding",
			})
		}
		audio = decoded
	}

	items, err := itemsFromDTO(req.CurrentOrder)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	cmd, err := commands.NewProcessTurnCommand(commands.ProcessTurnParams{
		SessionID:       req.SessionID,
		Utterance:       req.Message,
		Audio:           audio,
		AudioFormat:     req.AudioFormat,
		State:           flow.ParseState(req.FlowState),
		Items:           items,
		SelectedAddress: req.SelectedAddress,
		KnownAddresses:  req.KnownAddresses,
		Occasion:        req.OccasionType,
		DeliveryAt:      req.RequestedDeliveryTime,
		Memo:            req.Memo,
		History:         historyFromDTO(req.ConversationHistory),
	})
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid chat request: " + err.Error(),
		})
	}

	result, err := s.processTurnHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to process the turn",
		})
	}

	return ctx.JSON(http.StatusOK, ChatResponse{
		Reply:                 result.Reply,
		FlowState:             result.State.String(),
		UIAction:              result.Signal.String(),
		Intent:                result.Intent.String(),
		Utterance:             result.Utterance,
		CurrentOrder:          itemsToDTO(result.Items),
		TotalPrice:            result.TotalPrice,
		SelectedAddress:       result.SelectedAddress,
		OccasionType:          result.Occasion,
		RequestedDeliveryTime: result.DeliveryAt,
		Memo:                  result.Memo,
	})
}

// Checkout handles POST /api/v1/assistant/checkout - places the order.
func (s *Server) Checkout(ctx echo.Context) error {
	var req CheckoutRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items, err := itemsFromDTO(req.CurrentOrder)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	cmd, err := commands.NewCheckoutCommand(commands.CheckoutParams{
		SessionID:  req.SessionID,
		Address:    req.Address,
		DeliveryAt: req.RequestedDeliveryTime,
		Occasion:   req.OccasionType,
		Memo:       req.Memo,
		Items:      items,
	})
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid checkout request: " + err.Error(),
		})
	}

	result, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to place the order",
		})
	}
	if result.Failed() {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: result.Failure,
		})
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{
		OrderID:     result.OrderID.String(),
		OrderNumber: result.OrderNumber,
		GrandTotal:  result.GrandTotal,
	})
}

// GetMenu handles GET /api/v1/menu - retrieves the browsable menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	menu, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve the menu",
		})
	}

	response := MenuResponse{
		Dinners:    make([]MenuDinnerDTO, len(menu.Dinners)),
		Styles:     make([]MenuStyleDTO, len(menu.Styles)),
		ExtraItems: make([]MenuItemDTO, len(menu.ExtraItems)),
	}
	for i, dinner := range menu.Dinners {
		response.Dinners[i] = MenuDinnerDTO{
			Name:      dinner.Name,
			LocalName: dinner.LocalName,
			BasePrice: dinner.BasePrice,
		}
	}
	for i, style := range menu.Styles {
		response.Styles[i] = MenuStyleDTO{
			Name:       style.Name,
			LocalName:  style.LocalName,
			ExtraPrice: style.ExtraPrice,
		}
	}
	for i, item := range menu.ExtraItems {
		response.ExtraItems[i] = MenuItemDTO{
			Name:      item.Name,
			LocalName: item.LocalName,
			Category:  item.Category,
			UnitPrice: item.UnitPrice,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves in-flight orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]ActiveOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = ActiveOrderResponse{
			ID:         o.ID.String(),
			Number:     o.Number,
			Address:    o.Address,
			GrandTotal: o.GrandTotal,
			Status:     o.Status.String(),
			PlacedAt:   o.PlacedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReloadCatalog handles POST /api/v1/catalog/reload - refreshes the
// in-memory catalog from storage.
func (s *Server) ReloadCatalog(ctx echo.Context) error {
	if err := s.cache.Reload(ctx.Request().Context(), s.catalogSource); err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to reload the catalog",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}
