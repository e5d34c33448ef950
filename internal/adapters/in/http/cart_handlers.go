package http

import (
	"net/http"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateCart handles POST /api/v1/carts.
func (s *Server) CreateCart(ctx echo.Context) error {
	var request CreateCartRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	var userID *kernel.UUID
	if request.UserID != "" {
		parsed, err := kernel.UUIDFromString(request.UserID)
		if err != nil {
			return badRequest(ctx, "Invalid user id", err)
		}
		userID = &parsed
	}

	currency, err := kernel.CurrencyFromCode(kernel.CurrencyCode(request.Currency))
	if err != nil {
		return badRequest(ctx, "Invalid currency", err)
	}

	cartID := kernel.NewUUID()
	cmd, err := commands.NewCreateCartCommand(cartID, userID, request.SessionID, currency)
	if err != nil {
		return badRequest(ctx, "Invalid cart data", err)
	}

	if err = s.commands.CreateCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondWithCart(ctx, cartID, http.StatusCreated)
}

// GetCart handles GET /api/v1/carts/:cartId.
func (s *Server) GetCart(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("cartId"))
	if err != nil {
		return badRequest(ctx, "Invalid cart id", err)
	}

	aggregate, err := s.loadCart(ctx.Request().Context(), cartID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := newCartResponse(aggregate)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUserCart handles GET /api/v1/users/:userId/cart.
func (s *Server) GetUserCart(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user id", err)
	}

	aggregate, err := s.carts.GetByUser(ctx.Request().Context(), userID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := newCartResponse(aggregate)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSessionCart handles GET /api/v1/sessions/:sessionId/cart.
func (s *Server) GetSessionCart(ctx echo.Context) error {
	aggregate, err := s.carts.GetBySession(ctx.Request().Context(), ctx.Param("sessionId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := newCartResponse(aggregate)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddCartItem handles POST /api/v1/carts/:cartId/items.
func (s *Server) AddCartItem(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("cartId"))
	if err != nil {
		return badRequest(ctx, "Invalid cart id", err)
	}

	var request AddCartItemRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product id", err)
	}

	unitPrice, err := parseMoney(&request.UnitPrice)
	if err != nil {
		return badRequest(ctx, "Invalid unit price", err)
	}

	meetingPoint, err := parseOptionalLocation(request.MeetingPoint)
	if err != nil {
		return badRequest(ctx, "Invalid meeting point", err)
	}

	cmd, err := commands.NewAddCartItemCommand(
		cartID,
		productID,
		cart.ProductType(request.ProductType),
		request.ProductTitle,
		request.ProductSlug,
		request.ProductImage,
		*unitPrice,
		request.Quantity,
		request.VariantID,
		request.VariantName,
		request.SelectedOptions,
		request.Metadata,
		meetingPoint,
	)
	if err != nil {
		return badRequest(ctx, "Invalid item data", err)
	}

	if err = s.commands.AddCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	s.evictCart(ctx.Request().Context(), cartID)
	return s.respondWithCart(ctx, cartID, http.StatusOK)
}

// UpdateItemQuantity handles PATCH /api/v1/carts/:cartId/items/:itemId.
// The quantity must stay positive; removing a line goes through DELETE.
func (s *Server) UpdateItemQuantity(ctx echo.Context) error {
	cartID, itemID, err := cartItemParams(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid identifier", err)
	}

	var request UpdateItemQuantityRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	cmd, err := commands.NewUpdateItemQuantityCommand(cartID, itemID, request.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid quantity", err)
	}

	if err = s.commands.UpdateItemQuantity.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	s.evictCart(ctx.Request().Context(), cartID)
	return s.respondWithCart(ctx, cartID, http.StatusOK)
}

// RemoveCartItem handles DELETE /api/v1/carts/:cartId/items/:itemId.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	cartID, itemID, err := cartItemParams(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid identifier", err)
	}

	cmd, err := commands.NewRemoveCartItemCommand(cartID, itemID)
	if err != nil {
		return badRequest(ctx, "Invalid identifier", err)
	}

	if err = s.commands.RemoveCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	s.evictCart(ctx.Request().Context(), cartID)
	return s.respondWithCart(ctx, cartID, http.StatusOK)
}

// ClearCart handles DELETE /api/v1/carts/:cartId/items.
func (s *Server) ClearCart(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("cartId"))
	if err != nil {
		return badRequest(ctx, "Invalid cart id", err)
	}

	cmd, err := commands.NewClearCartCommand(cartID)
	if err != nil {
		return badRequest(ctx, "Invalid cart id", err)
	}

	if err = s.commands.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	s.evictCart(ctx.Request().Context(), cartID)
	return s.respondWithCart(ctx, cartID, http.StatusOK)
}

// AssignCartToUser handles POST /api/v1/carts/:cartId/assign.
// Attaches a guest cart to the authenticated user after login.
func (s *Server) AssignCartToUser(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("cartId"))
	if err != nil {
		return badRequest(ctx, "Invalid cart id", err)
	}

	var request AssignCartRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	userID, err := kernel.UUIDFromString(request.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user id", err)
	}

	cmd, err := commands.NewAssignCartToUserCommand(cartID, userID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data", err)
	}

	if err = s.commands.AssignCartToUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	s.evictCart(ctx.Request().Context(), cartID)
	return s.respondWithCart(ctx, cartID, http.StatusOK)
}

// UpdateCartCurrency handles PATCH /api/v1/carts/:cartId/currency.
// Item prices are converted along with the cart currency.
func (s *Server) UpdateCartCurrency(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("cartId"))
	if err != nil {
		return badRequest(ctx, "Invalid cart id", err)
	}

	var request UpdateCartCurrencyRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	currency, err := kernel.CurrencyFromCode(kernel.CurrencyCode(request.Currency))
	if err != nil {
		return badRequest(ctx, "Invalid currency", err)
	}

	cmd, err := commands.NewUpdateCartCurrencyCommand(cartID, currency)
	if err != nil {
		return badRequest(ctx, "Invalid currency data", err)
	}

	if err = s.commands.UpdateCartCurrency.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	s.evictCart(ctx.Request().Context(), cartID)
	return s.respondWithCart(ctx, cartID, http.StatusOK)
}

// MergeGuestCart handles POST /api/v1/carts/:cartId/merge.
// Folds the guest cart into the user's existing cart after login; the guest
// cart id stops resolving once the merge completes.
func (s *Server) MergeGuestCart(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("cartId"))
	if err != nil {
		return badRequest(ctx, "Invalid cart id", err)
	}

	var request MergeCartRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	userID, err := kernel.UUIDFromString(request.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user id", err)
	}

	cmd, err := commands.NewMergeGuestCartCommand(cartID, userID)
	if err != nil {
		return badRequest(ctx, "Invalid merge data", err)
	}

	if err = s.commands.MergeGuestCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	s.evictCart(ctx.Request().Context(), cartID)

	aggregate, err := s.carts.GetByUser(ctx.Request().Context(), userID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := newCartResponse(aggregate)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ExtendCartExpiration handles POST /api/v1/carts/:cartId/extend.
func (s *Server) ExtendCartExpiration(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("cartId"))
	if err != nil {
		return badRequest(ctx, "Invalid cart id", err)
	}

	var request ExtendCartRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	cmd, err := commands.NewExtendCartExpirationCommand(cartID, request.Hours)
	if err != nil {
		return badRequest(ctx, "Invalid extension", err)
	}

	if err = s.commands.ExtendCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	s.evictCart(ctx.Request().Context(), cartID)
	return s.respondWithCart(ctx, cartID, http.StatusOK)
}

// ValidateCart handles GET /api/v1/carts/:cartId/validation.
// Returns the checkout validation result without side effects.
func (s *Server) ValidateCart(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("cartId"))
	if err != nil {
		return badRequest(ctx, "Invalid cart id", err)
	}

	aggregate, err := s.loadCart(ctx.Request().Context(), cartID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, aggregate.ValidateForCheckout())
}

// Checkout handles POST /api/v1/carts/:cartId/checkout.
// On success the cart is gone and the created order is returned.
func (s *Server) Checkout(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("cartId"))
	if err != nil {
		return badRequest(ctx, "Invalid cart id", err)
	}

	var request CheckoutRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	contactInfo, err := kernel.NewContactInfo(
		request.ContactInfo.FirstName,
		request.ContactInfo.LastName,
		request.ContactInfo.Email,
		request.ContactInfo.Phone,
	)
	if err != nil {
		return badRequest(ctx, "Invalid contact info", err)
	}

	participants := make([]commands.ParticipantInput, 0, len(request.Participants))
	for _, participant := range request.Participants {
		participants = append(participants, commands.ParticipantInput{
			FirstName:   participant.FirstName,
			LastName:    participant.LastName,
			DateOfBirth: participant.DateOfBirth,
			Document:    participant.Document,
		})
	}

	tax, err := parseOptionalMoney(request.Tax)
	if err != nil {
		return badRequest(ctx, "Invalid tax", err)
	}

	discount, err := parseOptionalMoney(request.Discount)
	if err != nil {
		return badRequest(ctx, "Invalid discount", err)
	}

	cmd, err := commands.NewCheckoutCommand(
		cartID,
		contactInfo,
		participants,
		request.PaymentMethod,
		request.Notes,
		tax,
		discount,
		request.BookingDate,
		request.BookingTime,
	)
	if err != nil {
		return badRequest(ctx, "Invalid checkout data", err)
	}

	newOrder, err := s.commands.Checkout.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	s.evictCart(ctx.Request().Context(), cartID)
	return ctx.JSON(http.StatusCreated, newOrderResponse(newOrder))
}

// respondWithCart reads the cart back and writes the full representation.
func (s *Server) respondWithCart(ctx echo.Context, cartID kernel.UUID, status int) error {
	aggregate, err := s.carts.Get(ctx.Request().Context(), cartID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := newCartResponse(aggregate)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(status, response)
}

func cartItemParams(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	cartID, err := kernel.UUIDFromString(ctx.Param("cartId"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return cartID, itemID, nil
}

func parseMoney(request *MoneyRequest) (*kernel.Price, error) {
	currency, err := kernel.CurrencyFromCode(kernel.CurrencyCode(request.Currency))
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(request.Amount, currency)
	if err != nil {
		return nil, err
	}

	return &price, nil
}

func parseOptionalMoney(request *MoneyRequest) (*kernel.Price, error) {
	if request == nil {
		return nil, nil
	}
	return parseMoney(request)
}

func parseOptionalLocation(request *LocationRequest) (*kernel.Location, error) {
	if request == nil {
		return nil, nil
	}

	location, err := kernel.NewLocation(
		request.Address, request.City, request.Country,
		request.Latitude, request.Longitude,
	)
	if err != nil {
		return nil, err
	}

	return &location, nil
}
