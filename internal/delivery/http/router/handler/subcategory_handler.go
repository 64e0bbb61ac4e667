package handler

import (
	"net/http"
	"time"

	"github.com/Dim-Aks/Bot-shop/internal/delivery/http/response"
	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
	"github.com/Dim-Aks/Bot-shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SubCategoryHandler holds dependencies for subcategory management handlers.
type SubCategoryHandler struct {
	uc usecase.CatalogUsecase
}

// NewSubCategoryHandler is the constructor for SubCategoryHandler, injected by Fx.
func NewSubCategoryHandler(uc usecase.CatalogUsecase) *SubCategoryHandler {
	return &SubCategoryHandler{uc: uc}
}

type subCategoryRequest struct {
	CategoryID  uint   `json:"category_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type subCategoryResponse struct {
	ID          uint      `json:"id"`
	CategoryID  uint      `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toSubCategoryResponse(subCategory *entity.SubCategory) subCategoryResponse {
	return subCategoryResponse{
		ID:          subCategory.ID,
		CategoryID:  subCategory.CategoryID,
		Name:        subCategory.Name,
		Description: subCategory.Description,
		CreatedAt:   subCategory.CreatedAt,
		UpdatedAt:   subCategory.UpdatedAt,
	}
}

// ListByCategory handles the subcategory listing request for one category.
func (h *SubCategoryHandler) ListByCategory(c echo.Context) error {
	categoryID, err := idParam(c)
	if err != nil {
		return err
	}

	subCategories, err := h.uc.ListSubCategories(c.Request().Context(), categoryID)
	if err != nil {
		return translateError(err)
	}

	items := make([]subCategoryResponse, 0, len(subCategories))
	for _, subCategory := range subCategories {
		items = append(items, toSubCategoryResponse(subCategory))
	}

	return response.Success(c, http.StatusOK, items, "")
}

// Create handles the subcategory creation request.
func (h *SubCategoryHandler) Create(c echo.Context) error {
	var input subCategoryRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subcategory input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	subCategory := &entity.SubCategory{
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
	}
	if err := h.uc.CreateSubCategory(c.Request().Context(), subCategory); err != nil {
		return translateError(err)
	}

	return response.Success(c, http.StatusCreated, toSubCategoryResponse(subCategory), "Subcategory created")
}

// Update handles the subcategory update request.
func (h *SubCategoryHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var input subCategoryRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subcategory input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	subCategory := &entity.SubCategory{
		ID:          id,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
	}
	if err := h.uc.UpdateSubCategory(c.Request().Context(), subCategory); err != nil {
		return translateError(err)
	}

	return response.Success(c, http.StatusOK, toSubCategoryResponse(subCategory), "Subcategory updated")
}

// Delete handles the subcategory deletion request.
func (h *SubCategoryHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteSubCategory(c.Request().Context(), id); err != nil {
		return translateError(err)
	}

	return response.Success(c, http.StatusOK, nil, "Subcategory deleted")
}
