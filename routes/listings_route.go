package routes

import (
	listingController "phonemania-api/controllers/listings"
	"phonemania-api/middlewares"

	"github.com/gofiber/fiber/v2"
)

func ListingsRoutes(app *fiber.App) {
	app.Get("/api/listings/my-listings", middlewares.AuthMiddleware, listingController.GetMyListings)

	app.Get("/api/listings", listingController.GetAllListings)

	app.Post("/api/listings", middlewares.AuthMiddleware, listingController.CreateListing)

	app.Put("/api/listings/:id", middlewares.AuthMiddleware, listingController.UpdateListing)

	app.Delete("/api/listings/:id", middlewares.AuthMiddleware, listingController.DeleteListing)
}
