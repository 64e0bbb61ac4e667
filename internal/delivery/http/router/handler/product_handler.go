package handler

import (
	"net/http"
	"time"

	"github.com/Dim-Aks/Bot-shop/internal/delivery/http/response"
	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
	"github.com/Dim-Aks/Bot-shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ProductHandler holds dependencies for product management handlers.
type ProductHandler struct {
	uc usecase.CatalogUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

type productRequest struct {
	CategoryID    uint            `json:"category_id" validate:"required"`
	SubCategoryID *uint           `json:"sub_category_id"`
	Name          string          `json:"name" validate:"required"`
	Description   string          `json:"description"`
	Photo         string          `json:"photo"`
	Price         decimal.Decimal `json:"price" validate:"required"`
}

type productResponse struct {
	ID            uint            `json:"id"`
	CategoryID    uint            `json:"category_id"`
	SubCategoryID *uint           `json:"sub_category_id,omitempty"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Photo         string          `json:"photo,omitempty"`
	Price         decimal.Decimal `json:"price"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func toProductResponse(product *entity.Product) productResponse {
	return productResponse{
		ID:            product.ID,
		CategoryID:    product.CategoryID,
		SubCategoryID: product.SubCategoryID,
		Name:          product.Name,
		Description:   product.Description,
		Photo:         product.Photo,
		Price:         product.Price,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

// List handles the full product listing request.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.uc.ListAllProducts(c.Request().Context())
	if err != nil {
		return translateError(err)
	}

	items := make([]productResponse, 0, len(products))
	for _, product := range products {
		items = append(items, toProductResponse(product))
	}

	return response.Success(c, http.StatusOK, items, "")
}

// Get handles the single product request.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return translateError(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "")
}

// Create handles the product creation request.
func (h *ProductHandler) Create(c echo.Context) error {
	var input productRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}
	if input.Price.IsNegative() {
		return response.BadRequest(c, "INVALID_PRICE", "Price must not be negative")
	}

	product := &entity.Product{
		CategoryID:    input.CategoryID,
		SubCategoryID: input.SubCategoryID,
		Name:          input.Name,
		Description:   input.Description,
		Photo:         input.Photo,
		Price:         input.Price,
	}
	if err := h.uc.CreateProduct(c.Request().Context(), product); err != nil {
		return translateError(err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product), "Product created")
}

// Update handles the product update request.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var input productRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}
	if input.Price.IsNegative() {
		return response.BadRequest(c, "INVALID_PRICE", "Price must not be negative")
	}

	product := &entity.Product{
		ID:            id,
		CategoryID:    input.CategoryID,
		SubCategoryID: input.SubCategoryID,
		Name:          input.Name,
		Description:   input.Description,
		Photo:         input.Photo,
		Price:         input.Price,
	}
	if err := h.uc.UpdateProduct(c.Request().Context(), product); err != nil {
		return translateError(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "Product updated")
}

// Delete handles the product deletion request. Cart lines referencing the
// product are removed with it.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return translateError(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted")
}
