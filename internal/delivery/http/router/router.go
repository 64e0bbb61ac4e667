// Package router contains routing setup for the admin HTTP delivery.
package router

import (
	"github.com/Dim-Aks/Bot-shop/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers to register, injected by Fx.
type RouterParams struct {
	fx.In

	CategoryHandler    *handler.CategoryHandler
	SubCategoryHandler *handler.SubCategoryHandler
	ProductHandler     *handler.ProductHandler
	UserHandler        *handler.UserHandler
	MailingHandler     *handler.MailingHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	categoryHandler    *handler.CategoryHandler
	subCategoryHandler *handler.SubCategoryHandler
	productHandler     *handler.ProductHandler
	userHandler        *handler.UserHandler
	mailingHandler     *handler.MailingHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		categoryHandler:    params.CategoryHandler,
		subCategoryHandler: params.SubCategoryHandler,
		productHandler:     params.ProductHandler,
		userHandler:        params.UserHandler,
		mailingHandler:     params.MailingHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	admin := e.Group("/admin")
	{
		admin.GET("/categories", r.categoryHandler.List)
		admin.POST("/categories", r.categoryHandler.Create)
		admin.PUT("/categories/:id", r.categoryHandler.Update)
		admin.DELETE("/categories/:id", r.categoryHandler.Delete)
		admin.GET("/categories/:id/subcategories", r.subCategoryHandler.ListByCategory)

		admin.POST("/subcategories", r.subCategoryHandler.Create)
		admin.PUT("/subcategories/:id", r.subCategoryHandler.Update)
		admin.DELETE("/subcategories/:id", r.subCategoryHandler.Delete)

		admin.GET("/products", r.productHandler.List)
		admin.GET("/products/:id", r.productHandler.Get)
		admin.POST("/products", r.productHandler.Create)
		admin.PUT("/products/:id", r.productHandler.Update)
		admin.DELETE("/products/:id", r.productHandler.Delete)

		admin.GET("/users", r.userHandler.List)
		admin.GET("/users/:id", r.userHandler.Get)
		admin.GET("/users/:id/cart", r.userHandler.Cart)
		admin.DELETE("/users/:id/cart/:lineID", r.userHandler.RemoveCartLine)
		admin.PATCH("/users/:id/active", r.userHandler.SetActive)

		admin.GET("/mailings", r.mailingHandler.List)
		admin.GET("/mailings/:id", r.mailingHandler.Get)
		admin.POST("/mailings", r.mailingHandler.Create)
		admin.PUT("/mailings/:id", r.mailingHandler.Update)
		admin.DELETE("/mailings/:id", r.mailingHandler.Delete)
		admin.POST("/mailings/:id/send", r.mailingHandler.Send)
	}
}
