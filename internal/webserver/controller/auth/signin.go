package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/cortheos/cortheos/internal/webserver/model"
)

// SignIn checks the submitted credentials and gives the user a signed
// session cookie. Rejections are uniform: an unknown email and a wrong
// password are indistinguishable to the caller.
func (a *Controller) SignIn(c *fiber.Ctx) error {
	user, err := a.repository.FindByEmail(strings.ToLower(c.FormValue("email")))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	if user == nil || !user.CheckPassword(c.FormValue("password")) {
		return c.Status(fiber.StatusUnauthorized).Render("auth/login", fiber.Map{
			"Title": "Login",
			"Error": "Invalid email or password",
		}, "layout")
	}

	expiration := time.Now().Add(a.config.SessionTimeout)
	signedToken, err := GenerateToken(user, expiration, a.config.Secret)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	c.Cookie(SessionCookie(signedToken, expiration))

	// Only follow relative return targets so the login form can never be
	// used as an open redirect.
	if returnTo := c.FormValue("returnTo"); strings.HasPrefix(returnTo, "/") && !strings.HasPrefix(returnTo, "//") {
		return c.Redirect(returnTo)
	}

	return c.Redirect("/")
}

// GenerateToken signs the session claims for user, valid until expiration.
func GenerateToken(user *model.User, expiration time.Time, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userdata": model.Session{
			Uuid:  user.Uuid,
			Email: user.Email,
			Role:  user.Role,
		},
		"exp": jwt.NewNumericDate(expiration),
	})

	return token.SignedString(secret)
}

// SessionCookie wraps a signed token in the cookie presented on each request.
func SessionCookie(signedToken string, expiration time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     "session",
		Value:    signedToken,
		Path:     "/",
		Expires:  expiration,
		Secure:   false,
		HTTPOnly: true,
	}
}
