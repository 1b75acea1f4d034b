package main

import (
	"phonemania-api/configs"
	"phonemania-api/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type, Authorization",
	}))

	configs.DB()

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString("API is working")
	})

	routes.AuthRoutes(app)
	routes.ProductsRoutes(app)
	routes.CartRoutes(app)
	routes.ProfileRoutes(app)
	routes.ListingsRoutes(app)

	app.Listen(":" + configs.EnvPort())
}
