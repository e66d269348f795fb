package jwtclaimsreader

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/cortheos/cortheos/internal/webserver/model"
)

// SessionData extracts the session claims from the verified token stored in
// the request locals by the JWT middleware.
func SessionData(c *fiber.Ctx) model.Session {
	var session model.Session

	if t, ok := c.Locals("user").(*jwt.Token); ok {
		claims := t.Claims.(jwt.MapClaims)
		userDataMap, ok := claims["userdata"].(map[string]interface{})
		if !ok {
			return session
		}
		if value, ok := userDataMap["Uuid"].(string); ok {
			session.Uuid = value
		}
		if value, ok := userDataMap["Email"].(string); ok {
			session.Email = value
		}
		if value, ok := userDataMap["Role"].(string); ok {
			session.Role = value
		}
	}

	return session
}
