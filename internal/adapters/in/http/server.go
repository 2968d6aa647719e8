// Package http exposes the ordering workflow over a REST API.
// Handlers translate between transport DTOs and application commands/queries;
// no business rules live here.
package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	startOrderHandler           commands.StartOrderCommandHandler
	addCartItemHandler          commands.AddCartItemCommandHandler
	removeCartItemHandler       commands.RemoveCartItemCommandHandler
	changeItemQuantityHandler   commands.ChangeItemQuantityCommandHandler
	checkoutOrderHandler        commands.CheckoutOrderCommandHandler
	confirmOrderHandler         commands.ConfirmOrderCommandHandler
	abandonOrderHandler         commands.AbandonOrderCommandHandler
	updateOrderStatusHandler    commands.UpdateOrderStatusCommandHandler
	addProfileAddressHandler    commands.AddProfileAddressCommandHandler
	switchProfileAddressHandler commands.SwitchProfileAddressCommandHandler
	removeProfileAddressHandler commands.RemoveProfileAddressCommandHandler
	setFavoriteHandler          commands.SetFavoriteCommandHandler
	rateDishHandler             commands.RateDishCommandHandler

	// Query handlers
	getCartHandler         queries.GetCartQueryHandler
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getProfileHandler      queries.GetProfileQueryHandler

	menu *menu.RestaurantMenu
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	startOrderHandler commands.StartOrderCommandHandler,
	addCartItemHandler commands.AddCartItemCommandHandler,
	removeCartItemHandler commands.RemoveCartItemCommandHandler,
	changeItemQuantityHandler commands.ChangeItemQuantityCommandHandler,
	checkoutOrderHandler commands.CheckoutOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	abandonOrderHandler commands.AbandonOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	addProfileAddressHandler commands.AddProfileAddressCommandHandler,
	switchProfileAddressHandler commands.SwitchProfileAddressCommandHandler,
	removeProfileAddressHandler commands.RemoveProfileAddressCommandHandler,
	setFavoriteHandler commands.SetFavoriteCommandHandler,
	rateDishHandler commands.RateDishCommandHandler,
	getCartHandler queries.GetCartQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getProfileHandler queries.GetProfileQueryHandler,
	restaurantMenu *menu.RestaurantMenu,
) *Server {
	return &Server{
		startOrderHandler:           startOrderHandler,
		addCartItemHandler:          addCartItemHandler,
		removeCartItemHandler:       removeCartItemHandler,
		changeItemQuantityHandler:   changeItemQuantityHandler,
		checkoutOrderHandler:        checkoutOrderHandler,
		confirmOrderHandler:         confirmOrderHandler,
		abandonOrderHandler:         abandonOrderHandler,
		updateOrderStatusHandler:    updateOrderStatusHandler,
		addProfileAddressHandler:    addProfileAddressHandler,
		switchProfileAddressHandler: switchProfileAddressHandler,
		removeProfileAddressHandler: removeProfileAddressHandler,
		setFavoriteHandler:          setFavoriteHandler,
		rateDishHandler:             rateDishHandler,
		getCartHandler:              getCartHandler,
		getOrderHistoryHandler:      getOrderHistoryHandler,
		getActiveOrdersHandler:      getActiveOrdersHandler,
		getProfileHandler:           getProfileHandler,
		menu:                        restaurantMenu,
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/menu", s.GetMenu)

	api.POST("/orders", s.StartOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:orderID/cart", s.GetCart)
	api.POST("/orders/:orderID/items", s.AddCartItem)
	api.PATCH("/orders/:orderID/items/:name", s.ChangeItemQuantity)
	api.DELETE("/orders/:orderID/items/:name", s.RemoveCartItem)
	api.POST("/orders/:orderID/checkout", s.CheckoutOrder)
	api.POST("/orders/:orderID/confirm", s.ConfirmOrder)
	api.DELETE("/orders/:orderID", s.AbandonOrder)
	api.PUT("/orders/:orderID/status", s.UpdateOrderStatus)

	api.GET("/customers/:customerID/orders", s.GetOrderHistory)
	api.GET("/customers/:customerID/profile", s.GetProfile)
	api.POST("/customers/:customerID/addresses", s.AddProfileAddress)
	api.PUT("/customers/:customerID/addresses/current", s.SwitchProfileAddress)
	api.DELETE("/customers/:customerID/addresses/:label", s.RemoveProfileAddress)
	api.POST("/customers/:customerID/favorites", s.AddFavorite)
	api.DELETE("/customers/:customerID/favorites/:restaurantName", s.RemoveFavorite)
	api.PUT("/customers/:customerID/ratings", s.RateDish)

	e.GET("/health", s.Health)
}

// GetMenu handles GET /api/v1/menu - lists the restaurant's current offering.
func (s *Server) GetMenu(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, MenuResponse{
		RestaurantName: s.menu.RestaurantName(),
		Items:          s.menu.Items(),
	})
}

// StartOrder handles POST /api/v1/orders - opens a new order session.
func (s *Server) StartOrder(ctx echo.Context) error {
	var request StartOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewStartOrderCommand(orderID, request.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.startOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, StartOrderResponse{OrderID: orderID.String()})
}

// GetCart handles GET /api/v1/orders/{orderID}/cart - returns the cart snapshot.
func (s *Server) GetCart(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetCartQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cart, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CartResponse{
		Items:       cartItems(cart.Items),
		Subtotal:    cart.Subtotal.Float64(),
		Tax:         cart.Tax.Float64(),
		DeliveryFee: cart.DeliveryFee.Float64(),
		Total:       cart.Total.Float64(),
		Status:      cart.Status,
	})
}

// AddCartItem handles POST /api/v1/orders/{orderID}/items - adds an item to the cart.
func (s *Server) AddCartItem(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request AddItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	unitPrice, err := kernel.MoneyFromFloat(request.UnitPrice)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	cmd, err := commands.NewAddCartItemCommand(orderID, request.Name, unitPrice, request.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeItemQuantity handles PATCH /api/v1/orders/{orderID}/items/{name} -
// sets a new quantity for an existing cart line.
func (s *Server) ChangeItemQuantity(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request ChangeQuantityRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeItemQuantityCommand(orderID, ctx.Param("name"), request.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.changeItemQuantityHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartItem handles DELETE /api/v1/orders/{orderID}/items/{name} -
// removes a cart line. Removing an absent item is a no-op.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewRemoveCartItemCommand(orderID, ctx.Param("name"))
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CheckoutOrder handles POST /api/v1/orders/{orderID}/checkout - validates the
// session and returns the checkout snapshot without settling payment.
func (s *Server) CheckoutOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCheckoutOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	summary, err := s.checkoutOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CheckoutResponse{
		Items:           checkoutItems(summary.Items),
		Subtotal:        summary.Pricing.Subtotal.Float64(),
		Tax:             summary.Pricing.Tax.Float64(),
		DeliveryFee:     summary.Pricing.DeliveryFee.Float64(),
		Total:           summary.Pricing.Total.Float64(),
		DeliveryAddress: summary.DeliveryAddress,
	})
}

// ConfirmOrder handles POST /api/v1/orders/{orderID}/confirm - settles payment
// and turns the session into a permanent order record.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request ConfirmOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfirmOrderCommand(
		orderID,
		services.Method(request.PaymentMethod),
		services.PaymentDetails{
			CardNumber: request.CardNumber,
			ExpiryDate: request.ExpiryDate,
			CVV:        request.CVV,
		},
	)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	confirmation, err := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ConfirmOrderResponse{
		OrderID:           confirmation.OrderID.String(),
		TransactionID:     confirmation.TransactionID,
		EstimatedDelivery: confirmation.EstimatedDelivery,
	})
}

// AbandonOrder handles DELETE /api/v1/orders/{orderID} - discards the session
// without settling payment.
func (s *Server) AbandonOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewAbandonOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if handleErr := s.abandonOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PUT /api/v1/orders/{orderID}/status - sets the
// customer-facing status label of a live session.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request UpdateStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveOrders handles GET /api/v1/orders/active - lists confirmed orders
// still in flight.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	records, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderRecords(records))
}

// GetOrderHistory handles GET /api/v1/customers/{customerID}/orders - lists a
// customer's confirmed orders, newest first.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	query, err := queries.NewGetOrderHistoryQuery(ctx.Param("customerID"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	records, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderRecords(records))
}

// GetProfile handles GET /api/v1/customers/{customerID}/profile - returns the
// customer's addresses, favorites, and dish ratings.
func (s *Server) GetProfile(ctx echo.Context) error {
	query, err := queries.NewGetProfileQuery(ctx.Param("customerID"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	profile, err := s.getProfileHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	addresses := make([]ProfileAddress, len(profile.Addresses))
	for i, address := range profile.Addresses {
		addresses[i] = ProfileAddress{
			Label:   address.Label,
			Address: address.Address,
			Current: address.Current,
		}
	}

	return ctx.JSON(http.StatusOK, ProfileResponse{
		CustomerID: profile.CustomerID,
		Addresses:  addresses,
		Favorites:  profile.Favorites,
		Ratings:    profile.Ratings,
	})
}

// AddProfileAddress handles POST /api/v1/customers/{customerID}/addresses -
// stores a labeled delivery address.
func (s *Server) AddProfileAddress(ctx echo.Context) error {
	var request AddAddressRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddProfileAddressCommand(ctx.Param("customerID"), request.Label, request.Address)
	if err != nil {
		return badRequest(ctx, "Invalid address data: "+err.Error())
	}

	if handleErr := s.addProfileAddressHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// SwitchProfileAddress handles PUT /api/v1/customers/{customerID}/addresses/current -
// selects the current delivery address by label.
func (s *Server) SwitchProfileAddress(ctx echo.Context) error {
	var request SwitchAddressRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSwitchProfileAddressCommand(ctx.Param("customerID"), request.Label)
	if err != nil {
		return badRequest(ctx, "Invalid address data: "+err.Error())
	}

	if handleErr := s.switchProfileAddressHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveProfileAddress handles DELETE /api/v1/customers/{customerID}/addresses/{label} -
// removes a labeled address.
func (s *Server) RemoveProfileAddress(ctx echo.Context) error {
	cmd, err := commands.NewRemoveProfileAddressCommand(ctx.Param("customerID"), ctx.Param("label"))
	if err != nil {
		return badRequest(ctx, "Invalid address data: "+err.Error())
	}

	if handleErr := s.removeProfileAddressHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddFavorite handles POST /api/v1/customers/{customerID}/favorites - marks a
// restaurant as a favorite.
func (s *Server) AddFavorite(ctx echo.Context) error {
	var request AddFavoriteRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetFavoriteCommand(ctx.Param("customerID"), request.RestaurantName, true)
	if err != nil {
		return badRequest(ctx, "Invalid favorite data: "+err.Error())
	}

	if handleErr := s.setFavoriteHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveFavorite handles DELETE /api/v1/customers/{customerID}/favorites/{restaurantName} -
// unmarks a favorite restaurant. Removal is idempotent.
func (s *Server) RemoveFavorite(ctx echo.Context) error {
	cmd, err := commands.NewSetFavoriteCommand(ctx.Param("customerID"), ctx.Param("restaurantName"), false)
	if err != nil {
		return badRequest(ctx, "Invalid favorite data: "+err.Error())
	}

	if handleErr := s.setFavoriteHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RateDish handles PUT /api/v1/customers/{customerID}/ratings - rates a dish
// on the 1 to 5 scale. Re-rating overwrites the previous value.
func (s *Server) RateDish(ctx echo.Context) error {
	var request RateDishRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRateDishCommand(ctx.Param("customerID"), request.DishName, request.Rating)
	if err != nil {
		return badRequest(ctx, "Invalid rating data: "+err.Error())
	}

	if handleErr := s.rateDishHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("orderID"))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors onto HTTP statuses: unknown objects are
// 404, rejected input is 400, a failed payment is 402, everything else is a
// 500 with a generic message so internals do not leak to clients.
func writeError(ctx echo.Context, err error) error {
	var paymentFailed *order.PaymentFailedError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.As(err, &paymentFailed):
		return ctx.JSON(http.StatusPaymentRequired, Error{
			Code:    http.StatusPaymentRequired,
			Message: err.Error(),
		})
	case isRejectedInput(err):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func isRejectedInput(err error) bool {
	var unavailable *order.ItemUnavailableError

	return errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, order.ErrEmptyCart) ||
		errors.Is(err, order.ErrNotValidated) ||
		errors.Is(err, services.ErrUnsupportedMethod) ||
		errors.Is(err, services.ErrInvalidCardDetails) ||
		errors.As(err, &unavailable)
}
