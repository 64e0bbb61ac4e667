package handler

import (
	"net/http"
	"time"

	"github.com/Dim-Aks/Bot-shop/internal/delivery/http/response"
	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
	"github.com/Dim-Aks/Bot-shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CategoryHandler holds dependencies for category management handlers.
type CategoryHandler struct {
	uc usecase.CatalogUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CatalogUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type categoryResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toCategoryResponse(category *entity.Category) categoryResponse {
	return categoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

// List handles the category listing request.
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return translateError(err)
	}

	items := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		items = append(items, toCategoryResponse(category))
	}

	return response.Success(c, http.StatusOK, items, "")
}

// Create handles the category creation request.
func (h *CategoryHandler) Create(c echo.Context) error {
	var input categoryRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	category := &entity.Category{Name: input.Name, Description: input.Description}
	if err := h.uc.CreateCategory(c.Request().Context(), category); err != nil {
		return translateError(err)
	}

	return response.Success(c, http.StatusCreated, toCategoryResponse(category), "Category created")
}

// Update handles the category update request.
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var input categoryRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	category := &entity.Category{ID: id, Name: input.Name, Description: input.Description}
	if err := h.uc.UpdateCategory(c.Request().Context(), category); err != nil {
		return translateError(err)
	}

	return response.Success(c, http.StatusOK, toCategoryResponse(category), "Category updated")
}

// Delete handles the category deletion request. Subcategories and products
// under the category are removed with it.
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), id); err != nil {
		return translateError(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted")
}
