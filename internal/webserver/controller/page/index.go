package page

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cortheos/cortheos/internal/webserver/access"
)

// Index serves the marketing landing page on the apex domain and plain
// localhost, and the chat application root on the chat subdomain. Reaching
// the chat variant without a session is impossible: the access middleware
// redirects those requests to login before this handler runs.
func (p *Controller) Index(c *fiber.Ctx) error {
	if domain, ok := c.Locals("DomainContext").(access.DomainContext); ok && domain.ChatSubdomain {
		return p.Chat(c)
	}

	return c.Render("index", fiber.Map{
		"Title": "Cortheos",
	}, "layout")
}

// About serves the public marketing about page.
func (p *Controller) About(c *fiber.Ctx) error {
	return c.Render("about", fiber.Map{
		"Title": "About",
	}, "layout")
}
