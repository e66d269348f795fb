package webserver

import (
	"github.com/gofiber/fiber/v2"
)

func routes(app *fiber.App, controllers Controllers) {
	// Every request goes through session reading and then the access
	// decision engine; the engine may short-circuit with a redirect or a
	// static reply before any of the routes below are considered.
	app.Use(controllers.ReadSessionMiddleware)
	app.Use(controllers.AccessControlMiddleware)

	app.Get("/login", controllers.Auth.Login)
	app.Post("/login", controllers.Auth.SignIn)
	app.Get("/logout", controllers.Auth.SignOut)
	app.Get("/register", controllers.Pages.Register)

	app.Post("/api/auth/signup", controllers.Account.SignUp)
	app.Post("/api/invite-code/create", controllers.RequirePrivilegedMiddleware, controllers.Invites.Create)
	app.Post("/api/invite-code/validate", controllers.Invites.Validate)

	app.Get("/", controllers.Pages.Index)
	app.Get("/about", controllers.Pages.About)
	app.Get("/chat", controllers.Pages.Chat)
}
