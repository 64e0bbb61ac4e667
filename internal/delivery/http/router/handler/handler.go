// Package handler contains the HTTP handlers for the admin API.
package handler

import (
	"net/http"
	"strconv"

	"github.com/Dim-Aks/Bot-shop/internal/delivery/http/response"
	domainerrors "github.com/Dim-Aks/Bot-shop/internal/domain/errors"
	"github.com/Dim-Aks/Bot-shop/internal/domain/repository"
	"github.com/Dim-Aks/Bot-shop/internal/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// idParam parses the :id path parameter.
func idParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id parameter")
	}

	return uint(id), nil
}

// translateError maps repository sentinels onto the API error taxonomy so
// the error handler can render them. Unknown errors pass through and render
// as internal errors.
func translateError(err error) error {
	switch {
	case errors.Is(err, repository.ErrCategoryNotFound):
		return domainerrors.ErrCategoryNotFound
	case errors.Is(err, repository.ErrSubCategoryNotFound):
		return domainerrors.ErrSubCategoryNotFound
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, repository.ErrCartLineNotFound):
		return domainerrors.ErrCartLineNotFound
	case errors.Is(err, repository.ErrMailingNotFound):
		return domainerrors.ErrMailingNotFound
	default:
		return errors.WithStack(err)
	}
}
