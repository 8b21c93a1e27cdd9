package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/auth"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	SupplierUC *usecase.SupplierUseCase
	ProductUC  *usecase.ProductUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
	AuthPolicy config.AuthConfig
}

// Router registra las rutas de la API. La protección por Bearer token es una
// política explícita por grupo (AUTH_PROTECTED_GROUPS); /auth siempre es
// público. Las rutas estáticas van antes que :id para que no queden
// sombreadas.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)

	guard := func(group string) []fiber.Handler {
		if deps.AuthPolicy.RequiresToken(group) {
			return []fiber.Handler{AuthMiddleware(deps.JWTSecret)}
		}
		return nil
	}

	// Categories
	categories := app.Group("/categories", guard("categories")...)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/cadastrar", categoryHandler.Create)
	categories.Get("/categorias/listagem", categoryHandler.List)
	categories.Get("/categorias/nomes", categoryHandler.ListNames)
	categories.Put("/editar/:id", categoryHandler.Update)
	categories.Delete("/delete/:id", categoryHandler.Delete)
	categories.Get("/:id", categoryHandler.GetByID)

	// Suppliers
	suppliers := app.Group("/suppliers", guard("suppliers")...)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/cadastrar", supplierHandler.Create)
	suppliers.Get("/fornecedores/listagem", supplierHandler.List)
	suppliers.Put("/editar/:id", supplierHandler.Update)
	suppliers.Delete("/delete/:id", supplierHandler.Delete)
	suppliers.Get("/:id", supplierHandler.GetByID)

	// Products
	products := app.Group("/products", guard("products")...)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/cadastrar", productHandler.Create)
	products.Get("/produtos/listagem", productHandler.List)
	products.Get("/produtos/relatorio", productHandler.Report)
	products.Put("/editar/:id", productHandler.Update)
	products.Delete("/delete/:id", productHandler.Delete)
	products.Get("/:id", productHandler.GetByID)
}
