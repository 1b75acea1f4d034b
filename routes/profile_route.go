package routes

import (
	profileController "phonemania-api/controllers/profile"
	"phonemania-api/middlewares"

	"github.com/gofiber/fiber/v2"
)

func ProfileRoutes(app *fiber.App) {
	app.Get("/api/profile", middlewares.AuthMiddleware, profileController.GetProfile)
	app.Put("/api/profile", middlewares.AuthMiddleware, profileController.UpdateProfile)
}
