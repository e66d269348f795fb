package page

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cortheos/cortheos/internal/webserver/model"
)

// Chat renders the chat application shell. The chat-model cookie is a
// display preference only and is never trusted for anything security
// relevant.
func (p *Controller) Chat(c *fiber.Ctx) error {
	session, _ := c.Locals("Session").(model.Session)

	return c.Render("chat", fiber.Map{
		"Title":     "Chat",
		"Session":   session,
		"ChatModel": c.Cookies("chat-model", "default"),
	}, "layout")
}
