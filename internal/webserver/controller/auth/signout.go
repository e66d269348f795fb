package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SignOut removes the user's session cookie and sends them back to the
// public entry point.
func (a *Controller) SignOut(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "session",
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		Secure:   false,
		HTTPOnly: true,
	})

	return c.Redirect("/")
}
