package routes

import (
	productController "phonemania-api/controllers/products"

	"github.com/gofiber/fiber/v2"
)

// ProductsRoutes are unauthenticated, matching the reference behavior.
func ProductsRoutes(app *fiber.App) {
	app.Get("/api/products", productController.GetAllProducts)

	app.Get("/api/products/:id", productController.GetProduct)

	app.Post("/api/products", productController.AddProduct)

	app.Put("/api/products/:id", productController.UpdateProduct)

	app.Delete("/api/products/:id", productController.DeleteProduct)
}
