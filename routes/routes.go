package routes

import (
	"app/handlers"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application. Every route is
// public; middleware.Authenticate exists but is not attached anywhere.
func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	app.Post("/register", h.HandleRegister)
	app.Get("/users", h.HandleGetUsers)
	app.Post("/login", h.HandleLogin)

	app.Post("/basic", h.HandleCreateBasic)
	app.Get("/basic", h.HandleListBasics)
	app.Get("/basic/:id", h.HandleGetBasicByID)
	app.Put("/basic/:id", h.HandleUpdateBasic)
	app.Delete("/basic/:id", h.HandleDeleteBasic)
}
