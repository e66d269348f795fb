package auth

import (
	"github.com/gofiber/fiber/v2"
)

// Login shows the sign-in form.
func (a *Controller) Login(c *fiber.Ctx) error {
	return c.Render("auth/login", fiber.Map{
		"Title":    "Login",
		"ReturnTo": c.Query("returnTo"),
	}, "layout")
}
