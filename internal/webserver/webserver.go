package webserver

import (
	"io/fs"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/cortheos/cortheos/internal/webserver/infrastructure"
)

// New builds a new Fiber application and sets up the required routes
func New(cfg Config, controllers Controllers) *fiber.App {
	views, err := fs.Sub(viewsFS, "views")
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		Views:                 infrastructure.TemplateEngine(views),
		DisableStartupMessage: true,
		ErrorHandler:          controllers.ErrorHandler,
	})

	routes(app, controllers)

	return app
}
