package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Dim-Aks/Bot-shop/internal/delivery/http/response"
	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
	domainerrors "github.com/Dim-Aks/Bot-shop/internal/domain/errors"
	"github.com/Dim-Aks/Bot-shop/internal/errors"
	"github.com/Dim-Aks/Bot-shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// UserHandler holds dependencies for user directory handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	cartUC usecase.CartUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(userUC usecase.UserUsecase, cartUC usecase.CartUsecase) *UserHandler {
	return &UserHandler{userUC: userUC, cartUC: cartUC}
}

type userResponse struct {
	ID         uint      `json:"id"`
	TelegramID int64     `json:"telegram_id"`
	Username   string    `json:"username,omitempty"`
	FirstName  string    `json:"first_name,omitempty"`
	LastName   string    `json:"last_name,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

type cartItemResponse struct {
	LineID   uint            `json:"line_id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type cartResponse struct {
	Items []cartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

type setActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:         user.ID,
		TelegramID: user.TelegramID,
		Username:   user.Username,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		IsActive:   user.IsActive,
		CreatedAt:  user.CreatedAt,
	}
}

// List handles the user listing request.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userUC.List(c.Request().Context())
	if err != nil {
		return translateError(err)
	}

	items := make([]userResponse, 0, len(users))
	for _, user := range users {
		items = append(items, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, items, "")
}

// Get handles the single user request.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.Get(c.Request().Context(), id)
	if err != nil {
		return translateError(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

// Cart handles the per-user cart inspection request.
func (h *UserHandler) Cart(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	items, err := h.cartUC.ItemsForUser(c.Request().Context(), id)
	if err != nil {
		return translateError(err)
	}

	cart := cartResponse{
		Items: make([]cartItemResponse, 0, len(items)),
		Total: entity.CartTotal(items),
	}
	for _, item := range items {
		cart.Items = append(cart.Items, cartItemResponse{
			LineID:   item.LineID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Subtotal: item.Subtotal(),
		})
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// RemoveCartLine handles the admin removal of a single cart line. Removing
// a line that is already gone also reports success.
func (h *UserHandler) RemoveCartLine(c echo.Context) error {
	lineID, err := strconv.ParseUint(c.Param("lineID"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid lineID parameter")
	}

	if !h.cartUC.RemoveLine(c.Request().Context(), uint(lineID)) {
		return domainerrors.NewDatabaseExecuteError(errors.New("cart line delete failed"), "failed to remove cart line")
	}

	return response.Success(c, http.StatusOK, nil, "Cart line removed")
}

// SetActive handles the activation flag update request. Deactivated users
// drop out of mailing fan-outs.
func (h *UserHandler) SetActive(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var input setActiveRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activation input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.userUC.SetActive(c.Request().Context(), id, *input.Active); err != nil {
		return translateError(err)
	}

	return response.Success(c, http.StatusOK, nil, "User updated")
}
