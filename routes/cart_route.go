package routes

import (
	cartController "phonemania-api/controllers/cart"
	"phonemania-api/middlewares"

	"github.com/gofiber/fiber/v2"
)

func CartRoutes(app *fiber.App) {
	app.Get("/api/cart", middlewares.AuthMiddleware, cartController.GetCart)

	app.Post("/api/cart/add", middlewares.AuthMiddleware, cartController.AddToCart)

	app.Put("/api/cart/update/:productId", middlewares.AuthMiddleware, cartController.UpdateCartItem)

	app.Delete("/api/cart/remove/:productId", middlewares.AuthMiddleware, cartController.RemoveFromCart)

	app.Delete("/api/cart/clear", middlewares.AuthMiddleware, cartController.ClearCart)
}
