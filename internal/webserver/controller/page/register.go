package page

import (
	"github.com/gofiber/fiber/v2"
)

// Register shows the invite-code signup form.
func (p *Controller) Register(c *fiber.Ctx) error {
	return c.Render("auth/register", fiber.Map{
		"Title": "Register",
	}, "layout")
}
