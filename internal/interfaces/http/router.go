package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-manage/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC    *usecase.UserUseCase
	ProductUC *usecase.ProductUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Usuarios (público)
	userHandler := NewUserHandler(deps.UserUC)
	app.Post("/users", userHandler.Register)
	app.Post("/login", userHandler.Login)

	// Products (protegido, requiere Bearer Token)
	products := app.Group("/products", AuthMiddleware(deps.JWTSecret))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:pk", productHandler.UpdateQuantity)
}
