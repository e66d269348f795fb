package webserver

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"

	"github.com/cortheos/cortheos/internal/webserver/access"
	"github.com/cortheos/cortheos/internal/webserver/jwtclaimsreader"
	"github.com/cortheos/cortheos/internal/webserver/model"
)

// ReadSession decodes the session cookie, if any, and stores the claims in
// the request locals. Verification failures of every kind, missing cookie,
// bad signature or expired token, are all treated as "no session": whether
// that matters is the decision table's call, never an error.
func ReadSession(jwtSecret []byte) func(*fiber.Ctx) error {
	return jwtware.New(jwtware.Config{
		SigningKey:    jwtSecret,
		SigningMethod: "HS256",
		TokenLookup:   "cookie:session",
		SuccessHandler: func(c *fiber.Ctx) error {
			c.Locals("Session", jwtclaimsreader.SessionData(c))
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Next()
		},
	})
}

// AccessControl runs the access decision engine on every request before any
// handler gets to produce content.
func AccessControl() func(*fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		domain := access.ClassifyHostname(c.Hostname())
		c.Locals("DomainContext", domain)

		_, hasSession := c.Locals("Session").(model.Session)

		action := access.Decide(access.Request{
			Domain:     domain,
			Route:      access.ClassifyRoute(c.Path()),
			HasSession: hasSession,
			Path:       c.Path(),
			Query:      string(c.Request().URI().QueryString()),
			Scheme:     c.Protocol(),
			Hostname:   c.Hostname(),
		})

		switch action.Kind {
		case access.ActionRedirect:
			return c.Redirect(action.Target, action.Status)
		case access.ActionText:
			return c.Status(action.Status).SendString(action.Body)
		default:
			return c.Next()
		}
	}
}

// RequirePrivileged rejects callers whose session cannot mint invite codes.
func RequirePrivileged(c *fiber.Ctx) error {
	session, ok := c.Locals("Session").(model.Session)
	if !ok || !session.CanCreateInvites() {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	return c.Next()
}
